package keyvalues

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWeights = map[string]float64{
	"SmileL":  0.75,
	"SmileR":  0.75,
	"BrowsUp": 0.2,
	"Blink":   0,
}

func TestEncodeDecode(t *testing.T) {
	for _, c := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		t.Run(c.String(), func(t *testing.T) {
			data, err := Encode(testWeights, func(o *Options) {
				o.Compression = c
			})
			require.NoError(t, err)

			got, err := Decode(data)
			require.NoError(t, err)
			assert.Equal(t, testWeights, got)
		})
	}

	t.Run("Empty", func(t *testing.T) {
		data, err := Encode(map[string]float64{})
		require.NoError(t, err)

		got, err := Decode(data)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("BadHeader", func(t *testing.T) {
		_, err := Decode([]byte("not a weight file"))
		assert.ErrorContains(t, err, "bad header")
	})

	t.Run("Truncated", func(t *testing.T) {
		_, err := Decode([]byte("KM"))
		assert.Error(t, err)
	})

	t.Run("UnknownCompression", func(t *testing.T) {
		data, err := Encode(testWeights)
		require.NoError(t, err)
		data[5] = 99

		_, err = Decode(data)
		assert.ErrorContains(t, err, "unsupported compression")
	})
}

func TestStores(t *testing.T) {
	t.Run("Memory", func(t *testing.T) {
		s := NewMemoryStore()

		require.NoError(t, Save(s, "pose.weights", testWeights))
		got, err := Load(s, "pose.weights")
		require.NoError(t, err)
		assert.Equal(t, testWeights, got)

		_, err = Load(s, "missing.weights")
		assert.Error(t, err)
	})

	t.Run("Local", func(t *testing.T) {
		s := NewLocalStore(t.TempDir())

		require.NoError(t, Save(s, "pose.weights", testWeights, func(o *Options) {
			o.Compression = CompressionZSTD
		}))

		got, err := Load(s, "pose.weights")
		require.NoError(t, err)
		assert.Equal(t, testWeights, got)
	})
}
