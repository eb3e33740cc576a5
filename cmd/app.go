package cmd

import (
	"github.com/urfave/cli"
)

func init() {
	// -v is the verbosity flag, so the version flag keeps only its long name
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}
}

// NewApp creates the command line application.
func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "go-raytracer"
	app.Usage = "render sphere scenes using Monte Carlo path tracing"
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
			Usage: "render a scene to an image file",
			Description: `
Render a built-in scene or a JSON scene file. Camera and sampling settings come
from the scene; any flag set to a non-zero value overrides them.

The output format is chosen from the file extension: .ppm writes a plain-text
P3 image, .png/.jpg/.gif/.tif/.bmp write raster images. Use "-" to write PPM
to standard output.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "default",
					Usage: "built-in scene name or path to a .json scene file",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "image width in pixels (0 = scene default)",
				},
				cli.Float64Flag{
					Name:  "aspect",
					Usage: "image aspect ratio, width over height (0 = scene default)",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel (0 = scene default)",
				},
				cli.IntFlag{
					Name:  "depth",
					Usage: "maximum ray segments per path (scene default when unset, 0 renders black)",
				},
				cli.Float64Flag{
					Name:  "vfov",
					Usage: "vertical field of view in degrees (0 = scene default)",
				},
				cli.Float64Flag{
					Name:  "aperture",
					Usage: "defocus angle in degrees (0 = scene default)",
				},
				cli.Float64Flag{
					Name:  "focus",
					Usage: "focus distance (0 = scene default)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Usage: "random seed (0 = seed from the clock)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "render.ppm",
					Usage: "image filename for the rendered frame",
				},
				cli.IntFlag{
					Name:  "scale",
					Value: 1,
					Usage: "integer upscale factor for raster output formats",
				},
				cli.IntFlag{
					Name:  "quality",
					Value: 95,
					Usage: "JPEG quality (1-100)",
				},
			},
			Action: RenderFrame,
		},
		{
			Name:  "scenes",
			Usage: "list built-in scenes and scene files",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "dir",
					Value: "scenes",
					Usage: "directory to scan for .json scene files",
				},
			},
			Action: ListScenes,
		},
		{
			Name:      "scene-info",
			Usage:     "show the camera, sampling and shape count of a scene",
			ArgsUsage: "scene_name_or_file",
			Action:    ShowSceneInfo,
		},
	}

	return app
}
