package cmd

import (
	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/accel"
	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/scene"
	"github.com/urfave/cli"
)

// SceneFlags are shared by the commands that build a scene
var SceneFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "scene, s",
		Value: "csg-primitives",
		Usage: "builtin scene to load (see list-scenes)",
	},
	cli.StringFlag{
		Name:  "mesh",
		Usage: "obj or ply file for the acceleration scene",
	},
	cli.IntFlag{
		Name:  "sdf-cells",
		Value: 64,
		Usage: "marching cubes resolution for the sdf-mesh scene",
	},
	cli.IntFlag{
		Name:  "max-depth",
		Usage: "maximum BSP depth, 0 selects 8 + 1.3 ln(n)",
	},
	cli.IntFlag{
		Name:  "min-prims",
		Value: accel.DefaultMinPrimitives,
		Usage: "primitive count below which a BSP node becomes a leaf",
	},
	cli.StringFlag{
		Name:  "axis",
		Value: accel.Cyclic.String(),
		Usage: "BSP split axis policy: cyclic or longest",
	},
}

// loadScene builds the scene selected by the scene flags
func loadScene(ctx *cli.Context) (*scene.Scene, error) {
	axis, err := accel.ParseSplitAxis(ctx.String("axis"))
	if err != nil {
		return nil, err
	}

	return scene.New(ctx.String("scene"), scene.Options{
		MeshPath: ctx.String("mesh"),
		SDFCells: ctx.Int("sdf-cells"),
		Accel: accel.Options{
			MaxDepth:      ctx.Int("max-depth"),
			MinPrimitives: ctx.Int("min-prims"),
			Axis:          axis,
		},
	})
}
