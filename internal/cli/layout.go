package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/strata/pkg/errors"
	"github.com/matzehuels/strata/pkg/graph"
	"github.com/matzehuels/strata/pkg/graphio"
)

// layoutOverrides holds the command-line flags that override the layout
// settings embedded in the input graph.
type layoutOverrides struct {
	ranker  string
	align   string
	nodeSep float64
	edgeSep float64
	rankSep float64
}

// registerOverrideFlags adds the shared layout flags to cmd.
func registerOverrideFlags(cmd *cobra.Command, o *layoutOverrides) {
	cmd.Flags().StringVar(&o.ranker, "ranker", "", "ranking algorithm: network-simplex (default), tight-tree, longest-path, none")
	cmd.Flags().StringVar(&o.align, "align", "", "force a single alignment: ul, ur, dl, dr")
	cmd.Flags().Float64Var(&o.nodeSep, "nodesep", 0, "minimum horizontal gap between nodes")
	cmd.Flags().Float64Var(&o.edgeSep, "edgesep", 0, "minimum horizontal gap around edge label nodes")
	cmd.Flags().Float64Var(&o.rankSep, "ranksep", 0, "vertical gap between ranks")
}

// apply copies the flags the user actually set onto the graph config.
func (o *layoutOverrides) apply(cmd *cobra.Command, g *graph.Graph) error {
	if err := errors.ValidateRanker(o.ranker); err != nil {
		return err
	}
	if err := errors.ValidateAlign(o.align); err != nil {
		return err
	}

	cfg := *g.Config()
	if cmd.Flags().Changed("ranker") {
		cfg.Ranker = o.ranker
	}
	if cmd.Flags().Changed("align") {
		cfg.Align = o.align
	}
	if cmd.Flags().Changed("nodesep") {
		cfg.NodeSep = o.nodeSep
	}
	if cmd.Flags().Changed("edgesep") {
		cfg.EdgeSep = o.edgeSep
	}
	if cmd.Flags().Changed("ranksep") {
		cfg.RankSep = o.rankSep
	}
	g.SetConfig(cfg)
	return nil
}

// layoutCommand creates the layout command for computing node coordinates.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output    string
		noCache   bool
		overrides layoutOverrides
	)

	cmd := &cobra.Command{
		Use:   "layout [graph.json]",
		Short: "Compute node coordinates for a graph",
		Long: `Compute node coordinates for a graph.

The layout command takes a graph.json file, assigns every node a rank and
an (x, y) position, and writes a layout.json file that can be rendered
with the 'render' command.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), cmd, args[0], output, noCache, &overrides)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	registerOverrideFlags(cmd, &overrides)

	return cmd
}

// runLayout loads the graph, computes the layout, and writes the output.
func (c *CLI) runLayout(ctx context.Context, cmd *cobra.Command, input, output string, noCache bool, overrides *layoutOverrides) error {
	g, err := graphio.ImportJSON(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}
	if err := overrides.apply(cmd, g); err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	result, err := runner.Layout(ctx, g)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}
	if err := errors.ValidateOutputPath(outputPath); err != nil {
		return err
	}

	if err := graphio.ExportLayoutJSON(result.Layout, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(g.NodeCount(), g.EdgeCount(), result.CacheHit)
	printNewline()
	printNextStep("Render", appName+" render "+input)

	return nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
