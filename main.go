package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-whitted-raytracer"
	app.Usage = "render scenes using recursive ray tracing"
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
			Name:        "render",
			Usage:       "render a scene preset to a PNG file",
			Description: `Render a single frame of a built-in scene preset and write it to disk.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "default",
					Usage: "scene preset name (see the scenes command)",
				},
				cli.IntFlag{
					Name:  "width",
					Value: 800,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 600,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "subdivisions",
					Value: 2,
					Usage: "anti-aliasing grid subdivisions per pixel axis",
				},
				cli.IntFlag{
					Name:  "depth",
					Value: 0,
					Usage: "max recursion depth; 0 keeps the scene default",
				},
				cli.Float64Flag{
					Name:  "min-weight",
					Value: 1e-3,
					Usage: "minimum ray weight before termination",
				},
				cli.StringFlag{
					Name:  "tone-mapper",
					Value: "reinhard",
					Usage: "tone mapper: reinhard, exposure or aces",
				},
				cli.Float64Flag{
					Name:  "exposure",
					Value: 1.0,
					Usage: "exposure for tone-mapping",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "parallel render workers; 0 uses all cpu cores",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list available scene presets",
			Action: cmd.ListScenes,
		},
		{
			Name:  "serve",
			Usage: "start the web render server",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "port, p",
					Value: 8080,
					Usage: "http listen port",
				},
			},
			Action: cmd.Serve,
		},
	}

	app.Run(os.Args)
}
