package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/renderer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// RenderFlags configure the render command
var RenderFlags = append([]cli.Flag{
	cli.IntFlag{
		Name:  "width",
		Value: 400,
		Usage: "frame width",
	},
	cli.IntFlag{
		Name:  "height",
		Value: 300,
		Usage: "frame height",
	},
	cli.IntFlag{
		Name:  "spp",
		Value: 1,
		Usage: "samples per pixel",
	},
	cli.IntFlag{
		Name:  "workers",
		Usage: "number of render goroutines, 0 for one per cpu",
	},
	cli.IntFlag{
		Name:  "tile-size",
		Value: 32,
		Usage: "edge length of the tiles handed to workers",
	},
	cli.StringFlag{
		Name:  "out, o",
		Usage: "image filename (.png or .bmp), output/<scene>.png when empty",
	},
}, SceneFlags...)

// Render a still frame of a builtin scene.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}

	r, err := renderer.NewRenderer(sc, renderer.Config{
		Width:           ctx.Int("width"),
		Height:          ctx.Int("height"),
		TileSize:        ctx.Int("tile-size"),
		Workers:         ctx.Int("workers"),
		SamplesPerPixel: ctx.Int("spp"),
	})
	if err != nil {
		return err
	}

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	img, stats, err := r.Render(renderCtx)
	if err != nil {
		return fmt.Errorf("render interrupted: %w", err)
	}

	out := ctx.String("out")
	if out == "" {
		out = filepath.Join("output", sc.Name+".png")
	}
	if err := renderer.WriteImage(out, img); err != nil {
		return err
	}

	var buf bytes.Buffer
	writeRenderStats(&buf, r.Config(), stats)
	logger.Noticef("frame statistics\n%s", buf.String())
	logger.Noticef("wrote %s", out)
	return nil
}

func writeRenderStats(w io.Writer, config renderer.Config, stats renderer.RenderStats) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Resolution", "Workers", "Tiles", "Samples", "Hits", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", config.Width, config.Height),
		fmt.Sprintf("%d", config.Workers),
		fmt.Sprintf("%d", stats.Tiles),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%02.1f %%", 100*stats.HitRatio()),
		stats.Duration.String(),
	})
	table.Render()
}
