package cmd

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/thomas-lane/go-raytracer/pkg/core"
	"github.com/thomas-lane/go-raytracer/pkg/renderer"
	"github.com/thomas-lane/go-raytracer/pkg/scene"
	"github.com/urfave/cli"
)

// List the built-in scenes and the scene files found in the scene directory.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	scenes, err := scene.ListAllScenes(ctx.String("dir"))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Scene", "Name", "Group", "Description"})
	for _, info := range scenes {
		table.Append([]string{info.ID, info.DisplayName, info.Group, info.Description})
	}
	table.Render()

	_, err = fmt.Fprint(ctx.App.Writer, buf.String())
	return err
}

// Display scene info.
func ShowSceneInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene name or file argument")
	}

	sampler := core.NewSeededSampler(1)
	sc, err := scene.Load(ctx.Args().First(), sampler)
	if err != nil {
		return err
	}

	rt, err := sc.NewRaytracer(sampler)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(ctx.App.Writer, formatSceneInfo(sc, rt.Camera()))
	return err
}

func formatSceneInfo(sc *scene.Scene, cam *renderer.Camera) string {
	camera := cam.Config()

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeader([]string{"Setting", "Value"})
	table.AppendBulk([][]string{
		{"Scene", sc.Name},
		{"Shapes", fmt.Sprintf("%d", sc.GetPrimitiveCount())},
		{"Resolution", fmt.Sprintf("%dx%d", cam.Width(), cam.Height())},
		{"Vertical FOV", fmt.Sprintf("%g", camera.VFov)},
		{"Look from", camera.LookFrom.String()},
		{"Look at", camera.LookAt.String()},
		{"Defocus angle", fmt.Sprintf("%g", camera.DefocusAngle)},
		{"Focus distance", fmt.Sprintf("%g", camera.FocusDistance)},
		{"Samples per pixel", fmt.Sprintf("%d", sc.SamplingConfig.SamplesPerPixel)},
		{"Max depth", fmt.Sprintf("%d", sc.SamplingConfig.MaxDepth)},
	})
	table.Render()

	return buf.String()
}
