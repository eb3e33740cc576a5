package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/thomas-lane/go-raytracer/pkg/core"
	"github.com/thomas-lane/go-raytracer/pkg/log"
	"github.com/thomas-lane/go-raytracer/pkg/output"
	"github.com/thomas-lane/go-raytracer/pkg/renderer"
	"github.com/thomas-lane/go-raytracer/pkg/scene"
	"github.com/urfave/cli"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	cameraOverrides := renderer.CameraConfig{
		Width:         ctx.Int("width"),
		AspectRatio:   ctx.Float64("aspect"),
		VFov:          ctx.Float64("vfov"),
		DefocusAngle:  ctx.Float64("aperture"),
		FocusDistance: ctx.Float64("focus"),
	}
	samplingOverrides := renderer.SamplingConfig{
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("depth"),
	}
	outFile := ctx.String("out")

	// Scene layout and rendering share one random stream
	sampler := core.NewSeededSampler(ctx.Int64("seed"))

	sc, err := scene.Load(ctx.String("scene"), sampler, cameraOverrides)
	if err != nil {
		return err
	}
	sc.SamplingConfig = renderer.MergeSamplingConfig(sc.SamplingConfig, samplingOverrides)
	if ctx.IsSet("depth") {
		sc.SamplingConfig.MaxDepth = ctx.Int("depth")
	}

	rt, err := sc.NewRaytracer(sampler)
	if err != nil {
		return err
	}
	if log.IsEnabled(log.Info) {
		rt.SetProgressFunc(progressLogger())
	}

	camera := rt.Camera()
	logger.Noticef("rendering scene %q at %dx%d, %d spp", sc.Name, camera.Width(), camera.Height(), sc.SamplingConfig.SamplesPerPixel)

	fb, stats := rt.Render()

	if outFile == "-" {
		if err := output.WritePPM(os.Stdout, fb); err != nil {
			return fmt.Errorf("could not write image to stdout: %w", err)
		}
	} else {
		opts := output.Options{
			Scale:       ctx.Int("scale"),
			JPEGQuality: ctx.Int("quality"),
		}
		if err := output.WriteFile(outFile, fb, opts); err != nil {
			return err
		}
		logger.Noticef("saved frame to %s", outFile)
	}

	// Display stats
	displayRenderStats(stats)

	return nil
}

// progressLogger reports progress at info level every tenth of the frame
func progressLogger() renderer.ProgressFunc {
	lastDecile := 0
	return func(remaining, total int) {
		decile := (total - remaining) * 10 / total
		if decile > lastDecile {
			lastDecile = decile
			logger.Infof("%d%% complete (%d scanlines remaining)", decile*10, remaining)
		}
	}
}

func formatRenderStats(stats renderer.RenderStats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Pixels", "Samples", "Rays traced", "Escaped", "Absorbed", "Rays/sec"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%d", stats.RaysTraced),
		fmt.Sprintf("%d", stats.EscapedPaths),
		fmt.Sprintf("%d", stats.AbsorbedPaths),
		fmt.Sprintf("%.0f", stats.RaysPerSecond()),
	})
	table.SetFooter([]string{"", "", "", "", "TOTAL", stats.Duration.String()})

	table.Render()
	return buf.String()
}

func displayRenderStats(stats renderer.RenderStats) {
	logger.Noticef("frame statistics\n%s", formatRenderStats(stats))
}
