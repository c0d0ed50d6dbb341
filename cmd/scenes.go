package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// ListScenes prints a table of the built-in scene presets
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Name", "Surfaces", "Lights", "Max depth"})

	for _, name := range scene.Names() {
		// Resolution is irrelevant for counting scene contents
		sc, err := scene.ByName(name, 1, 1, 1)
		if err != nil {
			return err
		}
		table.Append([]string{
			sc.Name,
			fmt.Sprintf("%d", len(sc.Surfaces())),
			fmt.Sprintf("%d", len(sc.Lights())),
			fmt.Sprintf("%d", sc.MaxDepth),
		})
	}

	table.Render()
	fmt.Fprint(os.Stdout, buf.String())
	return nil
}
