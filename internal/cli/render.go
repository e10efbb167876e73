package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/strata/pkg/errors"
	"github.com/matzehuels/strata/pkg/graphio"
	"github.com/matzehuels/strata/pkg/render"
)

// renderCommand creates the render command for producing drawable output.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output    string
		format    string
		noCache   bool
		overrides layoutOverrides
	)

	cmd := &cobra.Command{
		Use:   "render [graph.json]",
		Short: "Render a graph as DOT, SVG, or layout JSON",
		Long: `Render a graph as DOT, SVG, or layout JSON.

The render command computes the layout for a graph.json file and emits
it in the requested format. DOT output pins every node to its computed
position; SVG output is produced by running that DOT through Graphviz.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateFormat(format); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cmd, args[0], output, format, noCache, &overrides)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg (default), dot, json")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	registerOverrideFlags(cmd, &overrides)

	return cmd
}

// runRender computes the layout and writes it in the requested format.
func (c *CLI) runRender(ctx context.Context, cmd *cobra.Command, input, output, format string, noCache bool, overrides *layoutOverrides) error {
	logger := c.Logger
	logger.Info("rendering", "input", input, "format", format)

	g, err := graphio.ImportJSON(input)
	if err != nil {
		return fmt.Errorf("load graph %s: %w", input, err)
	}
	logger.Debug("loaded graph", "nodes", g.NodeCount(), "edges", g.EdgeCount())
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

	data, err := formatLayout(ctx, result.Layout, format)
	if err != nil {
		return err
	}
	logger.Debug("generated output", "format", format, "bytes", len(data))

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + "." + format
	}
	if err := errors.ValidateOutputPath(outputPath); err != nil {
		return err
	}

	out, err := openOutput(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := out.Write(data); err != nil {
		return err
	}

	printSuccess("Render complete")
	printFile(outputPath)
	printStats(g.NodeCount(), g.EdgeCount(), result.CacheHit)

	return nil
}

// formatLayout encodes the layout in the requested output format.
func formatLayout(ctx context.Context, l graphio.Layout, format string) ([]byte, error) {
	switch format {
	case "json":
		return graphio.MarshalLayout(l)
	case "dot":
		return []byte(render.ToDOT(l)), nil
	case "svg":
		return render.RenderSVG(ctx, render.ToDOT(l))
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown format %q", format)
	}
}
