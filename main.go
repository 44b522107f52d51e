package main

import (
	"os"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/cmd"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "rt"
	app.Usage = "ray trace CSG and mesh scenes through a BSP tree"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a builtin scene",
			Description: `
Build the selected scene, partition it with a BSP tree and render one frame
with eye-light shading. The output format follows the file extension.`,
			Flags:  cmd.RenderFlags,
			Action: cmd.RenderFrame,
		},
		{
			Name:   "stats",
			Usage:  "build the BSP tree of a scene and display its statistics",
			Flags:  cmd.SceneFlags,
			Action: cmd.DisplayStats,
		},
		{
			Name:   "list-scenes",
			Usage:  "list builtin scenes",
			Action: cmd.ListScenes,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
