package cmd

import (
	"bytes"
	"fmt"
	"io"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/accel"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Build the BSP tree of a scene and display its statistics.
func DisplayStats(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}
	stats, err := sc.Stats()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	writeTreeStats(&buf, sc.Tree.Options(), stats)
	logger.Noticef("BSP statistics for %s\n%s", sc.Name, buf.String())
	return nil
}

func writeTreeStats(w io.Writer, options accel.Options, stats accel.Stats) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Statistic", "Value"})
	table.AppendBulk([][]string{
		{"Split axis", options.Axis.String()},
		{"Primitives", fmt.Sprintf("%d", stats.Primitives)},
		{"Unbounded primitives", fmt.Sprintf("%d", stats.Unbounded)},
		{"Nodes", fmt.Sprintf("%d", stats.Nodes)},
		{"Leaves", fmt.Sprintf("%d (%d empty)", stats.Leaves, stats.EmptyLeaves)},
		{"Depth", fmt.Sprintf("%d of %d", stats.MaxDepth, stats.DepthLimit)},
		{"References", fmt.Sprintf("%d", stats.References)},
		{"Average leaf size", fmt.Sprintf("%.2f", stats.AverageLeafSize)},
		{"Duplication factor", fmt.Sprintf("%.2f", stats.DuplicationFactor)},
	})
	table.SetFooter([]string{"Build time", stats.BuildTime.String()})
	table.Render()
}
