package cmd

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/urfave/cli"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// RenderFrame renders a single frame of a preset scene to a PNG file
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := scene.ByName(
		ctx.String("scene"),
		ctx.Int("width"),
		ctx.Int("height"),
		ctx.Int("subdivisions"),
	)
	if err != nil {
		return err
	}

	// Transport overrides
	if depth := ctx.Int("depth"); depth > 0 {
		sc.MaxDepth = depth
	}
	if minWeight := ctx.Float64("min-weight"); ctx.IsSet("min-weight") {
		sc.MinWeight = minWeight
	}

	mapper, err := renderer.NewToneMapper(ctx.String("tone-mapper"), ctx.Float64("exposure"))
	if err != nil {
		return err
	}

	opts := renderer.DefaultOptions()
	opts.NumWorkers = ctx.Int("workers")

	r := renderer.New(sc, sc.Tracer(), opts)
	film, stats, err := r.Render(context.Background())
	if err != nil {
		return err
	}

	outFile := ctx.String("out")
	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if err = png.Encode(f, film.ToRGBA(mapper)); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s", outFile)

	displayFrameStats(sc, stats)
	return nil
}

func displayFrameStats(sc *scene.Scene, stats renderer.RenderStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Resolution", "Samples/pixel", "Rays", "Tiles", "Workers", "Render time"})
	table.Append([]string{
		sc.Name,
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.SamplesPerPixel),
		fmt.Sprintf("%d", stats.TotalSamples),
		fmt.Sprintf("%d", stats.Tiles),
		fmt.Sprintf("%d", stats.Workers),
		stats.Elapsed.String(),
	})
	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())

	if cpuName, cores, totalRAM, err := hostInfo(); err == nil {
		logger.Infof("host: %s, %d logical cores, %d GB ram", cpuName, cores, totalRAM)
	}
}

// hostInfo reports the CPU model, logical core count and total memory in GB
func hostInfo() (string, int, uint64, error) {
	cpuInfo, err := cpu.Info()
	if err != nil {
		return "", 0, 0, err
	}
	if len(cpuInfo) == 0 {
		return "", 0, 0, fmt.Errorf("no CPU information available")
	}

	cores, err := cpu.Counts(true)
	if err != nil {
		return "", 0, 0, err
	}

	memInfo, err := mem.VirtualMemory()
	if err != nil {
		return "", 0, 0, err
	}

	return cpuInfo[0].ModelName, cores, memInfo.Total / (1024 * 1024 * 1024), nil
}
