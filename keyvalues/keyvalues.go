package keyvalues

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the payload compression scheme.
type Compression uint8

const (
	// CompressionNone stores the payload as plain text.
	CompressionNone Compression = 0
	// CompressionLZ4 wraps the payload in an lz4 frame (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD wraps the payload in a zstd stream (better ratio).
	CompressionZSTD Compression = 2
)

// String returns a string representation of the Compression.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// Header layout: magic (4 bytes) + version (1) + compression (1).
var magic = []byte("KMWT")

const (
	formatVersion = 1
	headerSize    = 6
)

// Options contains configuration options for encoding.
type Options struct {
	// Codec encodes the weight mapping. Defaults to JSON.
	Codec Codec

	// Compression wraps the encoded payload. Defaults to none, keeping
	// the file greppable text.
	Compression Compression
}

// DefaultOptions contains the default encoding configuration.
var DefaultOptions = Options{
	Codec:       Default,
	Compression: CompressionNone,
}

// Encode serializes the name-to-weight mapping with a self-describing
// header.
func Encode(weights map[string]float64, optFns ...func(o *Options)) ([]byte, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Codec == nil {
		opts.Codec = Default
	}

	payload, err := opts.Codec.Marshal(weights)
	if err != nil {
		return nil, fmt.Errorf("encode weights: %w", err)
	}

	payload, err = compress(payload, opts.Compression)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, headerSize+len(payload))
	out = append(out, magic...)
	out = append(out, formatVersion, byte(opts.Compression))
	return append(out, payload...), nil
}

// Decode restores a name-to-weight mapping written by Encode. The
// compression scheme is read from the header, so any setting loads.
func Decode(data []byte, optFns ...func(o *Options)) (map[string]float64, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Codec == nil {
		opts.Codec = Default
	}

	if len(data) < headerSize || !bytes.Equal(data[:len(magic)], magic) {
		return nil, fmt.Errorf("not a weight file: bad header")
	}
	if v := data[4]; v != formatVersion {
		return nil, fmt.Errorf("unsupported weight file version %d", v)
	}

	payload, err := decompress(data[headerSize:], Compression(data[5]))
	if err != nil {
		return nil, err
	}

	weights := make(map[string]float64)
	if err := opts.Codec.Unmarshal(payload, &weights); err != nil {
		return nil, fmt.Errorf("decode weights: %w", err)
	}
	return weights, nil
}

func compress(payload []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressionNone:
		return payload, nil

	case CompressionLZ4:
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(payload); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("lz4 compress: %w", err)
		}
		return buf.Bytes(), nil

	case CompressionZSTD:
		enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, fmt.Errorf("zstd compress: %w", err)
		}
		defer enc.Close()
		return enc.EncodeAll(payload, nil), nil

	default:
		return nil, fmt.Errorf("unsupported compression: %s", c)
	}
}

func decompress(payload []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressionNone:
		return payload, nil

	case CompressionLZ4:
		out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(payload)))
		if err != nil {
			return nil, fmt.Errorf("lz4 decompress: %w", err)
		}
		return out, nil

	case CompressionZSTD:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		defer dec.Close()
		out, err := dec.DecodeAll(payload, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unsupported compression: %s", c)
	}
}
