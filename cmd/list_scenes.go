package cmd

import (
	"bytes"
	"io"

	"github.com/misch/Rendering-Algorithms-2014-Skeleton/pkg/scene"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// List the builtin scenes.
func ListScenes(ctx *cli.Context) error {
	var buf bytes.Buffer
	writeSceneList(&buf, scene.ListGroups())
	logger.Noticef("builtin scenes\n%s", buf.String())
	return nil
}

func writeSceneList(w io.Writer, groups []scene.SceneGroup) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Group", "Scene", "Description"})
	for _, group := range groups {
		for _, info := range group.Scenes {
			table.Append([]string{group.Name, info.ID, info.Description})
		}
	}
	table.Render()
}
