package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/esimov/canny"
	"github.com/esimov/canny/utils"
)

var (
	// Flags
	source      = flag.String("in", "", "Source image, directory or URL")
	destination = flag.String("out", "", "Destination image or directory")
	workers     = flag.Int("workers", canny.DefaultWorkers, "Number of workers per stage")
	high        = flag.Int("high", canny.DefaultHighThreshold, "Hysteresis high threshold")
	low         = flag.Int("low", canny.DefaultLowThreshold, "Hysteresis low threshold")
	overlay     = flag.Bool("overlay", false, "Draw the edges over the source image")
	configFile  = flag.String("config", "", "YAML configuration file")
	debug       = flag.Bool("debug", false, "Log every pipeline stage")
)

// Supported image files.
var extensions = []string{".jpg", ".jpeg", ".png", ".bmp"}

type job struct {
	in, out string
}

func main() {
	flag.Parse()

	if len(*source) == 0 || len(*destination) == 0 {
		log.Fatal("Usage: canny -in input.jpg -out out.png")
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Unable to load config: %v", err)
	}
	logger := utils.NewLogger(os.Stderr, cfg.Debug)
	p := cfg.Processor(&logger)

	jobs, cleanup, err := collectJobs(*source, *destination)
	if err != nil {
		log.Fatal(err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	for _, j := range jobs {
		s := utils.NewSpinner()
		s.Start("Detecting edges...")
		start := time.Now()
		pl, err := process(ctx, p, j)
		s.Stop()

		if err != nil {
			fmt.Printf("\n%sError converting image: %s: %v%s\n", utils.ErrorColor, j.in, err, utils.DefaultColor)
			if ctx.Err() != nil {
				os.Exit(1)
			}
			continue
		}
		fmt.Printf("\nGenerated in: %s%s%s\n", utils.SuccessColor, utils.FormatTime(time.Since(start)), utils.DefaultColor)
		fmt.Printf("Total number of %s%d%s edge pixels detected out of %s%d%s pixels\n",
			utils.SuccessColor, len(pl.EdgePoints()), utils.DefaultColor,
			utils.SuccessColor, pl.Width()*pl.Height(), utils.DefaultColor)
		fmt.Printf("Saved as: %s %s✓%s\n\n", path.Base(j.out), utils.SuccessColor, utils.DefaultColor)
	}
}

// loadConfig reads the optional configuration file and applies the flags
// set explicitly on the command line on top of it.
func loadConfig() (*canny.Config, error) {
	cfg := &canny.Config{
		Workers:       *workers,
		HighThreshold: *high,
		LowThreshold:  *low,
	}
	if *configFile != "" {
		f, err := os.Open(*configFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		if cfg, err = canny.LoadConfig(f); err != nil {
			return nil, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "workers":
			cfg.Workers = *workers
		case "high":
			cfg.HighThreshold = *high
		case "low":
			cfg.LowThreshold = *low
		case "debug":
			cfg.Debug = *debug
		}
	})
	return cfg, nil
}

// collectJobs maps every source image to its destination path.
func collectJobs(src, dst string) ([]job, func(), error) {
	cleanup := func() {}

	if utils.IsURL(src) {
		f, err := utils.DownloadImage(src)
		if err != nil {
			return nil, cleanup, err
		}
		f.Close()
		return []job{{in: f.Name(), out: dst}}, func() { os.Remove(f.Name()) }, nil
	}

	fs, err := os.Stat(src)
	if err != nil {
		return nil, cleanup, fmt.Errorf("unable to open source: %w", err)
	}

	switch mode := fs.Mode(); {
	case mode.IsDir():
		files, err := os.ReadDir(src)
		if err != nil {
			return nil, cleanup, fmt.Errorf("unable to read dir: %w", err)
		}

		// Check if the image destination is a directory or a file.
		d, err := os.Stat(dst)
		if err != nil {
			return nil, cleanup, fmt.Errorf("unable to get dir stats: %w", err)
		}
		if d.Mode().IsRegular() {
			return nil, cleanup, fmt.Errorf("please specify a directory as destination")
		}

		var jobs []job
		for _, f := range files {
			ext := strings.ToLower(filepath.Ext(f.Name()))
			for _, iex := range extensions {
				if ext == iex {
					name := strings.TrimSuffix(f.Name(), filepath.Ext(f.Name()))
					jobs = append(jobs, job{
						in:  filepath.Join(src, f.Name()),
						out: filepath.Join(dst, name+".png"),
					})
				}
			}
		}
		return jobs, cleanup, nil
	case mode.IsRegular():
		return []job{{in: src, out: dst}}, cleanup, nil
	}
	return nil, cleanup, fmt.Errorf("unsupported source: %s", src)
}

func process(ctx context.Context, p *canny.Processor, j job) (*canny.Pipeline, error) {
	file, err := os.Open(j.in)
	if err != nil {
		return nil, fmt.Errorf("unable to open source file: %w", err)
	}
	defer file.Close()

	src, err := canny.DecodeImage(file)
	if err != nil {
		return nil, err
	}

	var sink canny.ImageSink = canny.FileSink{Path: j.out}
	if *overlay {
		sink = canny.OverlaySink{Path: j.out, Background: src.Image()}
	}
	return p.Process(ctx, src, sink)
}
