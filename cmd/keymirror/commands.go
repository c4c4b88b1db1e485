package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/spf13/cobra"

	"github.com/shapetools/keymirror"
	"github.com/shapetools/keymirror/internal/meshdoc"
	"github.com/shapetools/keymirror/keyvalues"
	"github.com/shapetools/keymirror/scene"
)

var (
	flagDirection string
	flagStrict    bool
	flagSelection string
	flagThreshold float64

	mirrorCmd = &cobra.Command{
		Use:   "mirror <scene.json> <target>",
		Short: "Mirror one morph target to the opposite side",
		Args:  cobra.ExactArgs(2),
		RunE:  runMirror,
	}

	mirrorAllCmd = &cobra.Command{
		Use:   "mirror-all <scene.json>",
		Short: "Mirror every morph target that lacks an opposite-side sibling",
		Args:  cobra.ExactArgs(1),
		RunE:  runMirrorAll,
	}

	forceMirrorCmd = &cobra.Command{
		Use:   "force-mirror <scene.json>",
		Short: "Overwrite one side of the geometry with the reflection of the other",
		Args:  cobra.ExactArgs(1),
		RunE:  runForceMirror,
	}

	filterCmd = &cobra.Command{
		Use:   "filter <scene.json>",
		Short: "Remove morph targets whose deformation stays below a threshold",
		Args:  cobra.ExactArgs(1),
		RunE:  runFilter,
	}

	saveWeightsCmd = &cobra.Command{
		Use:   "save-weights <scene.json> <weights-file>",
		Short: "Save morph target activation weights to a weight file",
		Args:  cobra.ExactArgs(2),
		RunE:  runSaveWeights,
	}

	loadWeightsCmd = &cobra.Command{
		Use:   "load-weights <scene.json> <weights-file>",
		Short: "Apply a saved weight file to same-named morph targets",
		Args:  cobra.ExactArgs(2),
		RunE:  runLoadWeights,
	}
)

func init() {
	forceMirrorCmd.Flags().StringVar(&flagDirection, "direction", "ltr", "authoritative side: ltr (left to right) or rtl")
	forceMirrorCmd.Flags().BoolVar(&flagStrict, "strict", false, "abort without mutating when any point stays unmatched")
	forceMirrorCmd.Flags().StringVar(&flagSelection, "selection", "", "comma-separated point indices to restrict the operation to")
	filterCmd.Flags().Float64Var(&flagThreshold, "threshold", 0.001, "minimum peak displacement a target must reach to survive")
}

// openScene loads the document and materializes mesh and targets.
func openScene(path string) (*meshdoc.Document, *scene.MemMesh, *scene.MemTargetSet, error) {
	doc, err := meshdoc.Load(path)
	if err != nil {
		return nil, nil, nil, err
	}
	mesh := doc.Mesh()
	targets, err := doc.TargetSet()
	if err != nil {
		return nil, nil, nil, err
	}
	return doc, mesh, targets, nil
}

// writeScene persists the mutated scene, honoring --out.
func writeScene(inPath string, mesh *scene.MemMesh, targets scene.TargetSet) error {
	path := inPath
	if outPath != "" {
		path = outPath
	}
	return meshdoc.FromScene(mesh, targets).Save(path)
}

func runMirror(cmd *cobra.Command, args []string) error {
	_, mesh, targets, err := openScene(args[0])
	if err != nil {
		return err
	}

	report, err := config.engine().MirrorTarget(mesh, targets, args[1])
	if err != nil {
		return err
	}

	fmt.Printf("created %s (%s, %d/%d matched)\n",
		report.TargetName, report.Direction, report.Matched, report.Processed)
	return writeScene(args[0], mesh, targets)
}

func runMirrorAll(cmd *cobra.Command, args []string) error {
	_, mesh, targets, err := openScene(args[0])
	if err != nil {
		return err
	}

	sum, err := config.engine().MirrorAllMissing(mesh, targets)
	if err != nil {
		return err
	}

	fmt.Printf("created %d, skipped %d, failed %d\n", sum.Created, sum.Skipped, sum.Failed)
	for _, name := range sum.CreatedNames {
		fmt.Println("  +", name)
	}
	return writeScene(args[0], mesh, targets)
}

func runForceMirror(cmd *cobra.Command, args []string) error {
	_, mesh, targets, err := openScene(args[0])
	if err != nil {
		return err
	}

	selection, err := parseSelection(flagSelection)
	if err != nil {
		return err
	}
	direction := keymirror.DirectionLeftToRight
	switch flagDirection {
	case "ltr":
	case "rtl":
		direction = keymirror.DirectionRightToLeft
	default:
		return fmt.Errorf("unknown direction %q (want ltr or rtl)", flagDirection)
	}

	groups := scene.NewMemGroupSet()
	report, err := config.engine().ForceMirror(mesh, groups, func(o *keymirror.ForceMirrorOptions) {
		o.Direction = direction
		o.Strict = flagStrict
		o.Selection = selection
	})
	if err != nil {
		return err
	}

	fmt.Printf("mirrored %d/%d points (%s), %d unmatched\n",
		report.Matched, report.Processed, report.Direction, report.Unmatched)
	for _, w := range report.Warnings {
		fmt.Println("  !", w)
	}
	return writeScene(args[0], mesh, targets)
}

func runFilter(cmd *cobra.Command, args []string) error {
	_, mesh, targets, err := openScene(args[0])
	if err != nil {
		return err
	}

	removed := config.engine().FilterInsignificant(targets, flagThreshold)
	fmt.Printf("removed %d targets\n", len(removed))
	for _, name := range removed {
		fmt.Println("  -", name)
	}
	return writeScene(args[0], mesh, targets)
}

func runSaveWeights(cmd *cobra.Command, args []string) error {
	_, _, targets, err := openScene(args[0])
	if err != nil {
		return err
	}

	session := keymirror.NewSession()
	session.Copy(targets)

	store := keyvalues.NewLocalStore(filepath.Dir(args[1]))
	if err := keyvalues.Save(store, filepath.Base(args[1]), session.Weights(), func(o *keyvalues.Options) {
		o.Compression = config.compression()
	}); err != nil {
		return err
	}

	fmt.Printf("saved %d weights to %s\n", session.Len(), args[1])
	return nil
}

func runLoadWeights(cmd *cobra.Command, args []string) error {
	_, mesh, targets, err := openScene(args[0])
	if err != nil {
		return err
	}

	weights, err := keyvalues.Load(keyvalues.NewLocalStore(filepath.Dir(args[1])), filepath.Base(args[1]))
	if err != nil {
		return err
	}

	session := keymirror.NewSession()
	session.SetWeights(weights)
	applied := session.Paste(targets)

	fmt.Printf("applied %d of %d weights\n", applied, len(weights))
	return writeScene(args[0], mesh, targets)
}

func parseSelection(s string) (*roaring.Bitmap, error) {
	if s == "" {
		return nil, nil
	}

	sel := roaring.New()
	for _, field := range strings.Split(s, ",") {
		i, err := strconv.ParseUint(strings.TrimSpace(field), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bad selection index %q: %w", field, err)
		}
		sel.Add(uint32(i))
	}
	return sel, nil
}
