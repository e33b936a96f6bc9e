package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/canvas"
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// Config holds the parsed command line options
type Config struct {
	Scene   string
	Width   int
	Height  int
	Workers int
	Format  string
	Output  string
	List    bool
	Help    bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, renderer.NewDefaultLogger()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags parses command line arguments into a Config
func parseFlags(args []string, output io.Writer) (Config, *flag.FlagSet, error) {
	var config Config
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&config.Scene, "scene", "default", "Scene to render (see -list)")
	fs.IntVar(&config.Width, "width", 0, "Image width in pixels (0 = scene default)")
	fs.IntVar(&config.Height, "height", 0, "Image height in pixels (0 = scene default)")
	fs.IntVar(&config.Workers, "workers", 0, "Number of parallel workers (0 = CPU count)")
	fs.StringVar(&config.Format, "format", canvas.FormatPNG, "Output format: "+strings.Join(canvas.Formats, ", "))
	fs.StringVar(&config.Output, "output", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	fs.BoolVar(&config.List, "list", false, "List available scenes")
	fs.BoolVar(&config.Help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return config, fs, err
	}
	config.Format = strings.ToLower(config.Format)
	return config, fs, nil
}

// run executes the CLI and returns the first error encountered
func run(ctx context.Context, args []string, stdout io.Writer, logger core.Logger) error {
	config, fs, err := parseFlags(args, stdout)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	if config.Help {
		showHelp(fs, stdout)
		return nil
	}
	if config.List {
		listScenes(stdout)
		return nil
	}

	logger.Printf("Starting Phong Raytracer...\n")

	selectedScene, err := createScene(config.Scene, config.Width, config.Height)
	if err != nil {
		return err
	}
	logger.Printf("Using %s scene (%d objects, %d lights)...\n",
		selectedScene.Name, len(selectedScene.World.Objects), len(selectedScene.World.Lights))

	filename := config.Output
	if filename == "" {
		filename = outputPath(selectedScene.Name, config.Format, time.Now())
	}
	format := config.Format
	if config.Output != "" {
		if ext := strings.TrimPrefix(filepath.Ext(filename), "."); ext != "" {
			format = ext
		}
	}

	renderConfig := renderer.DefaultRenderConfig()
	renderConfig.NumWorkers = config.Workers
	raytracer := renderer.NewRaytracer(selectedScene.World, selectedScene.Camera, renderConfig, logger)

	img, stats, err := raytracer.Render(ctx, nil)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("render interrupted")
		}
		return err
	}

	logger.Printf("Rendered %d pixels in %d tiles with %d workers (average luminance %.3f)\n",
		stats.TotalPixels, stats.TotalTiles, stats.NumWorkers, stats.AverageLuminance)

	var sink canvas.Sink = canvas.FileSink{Path: filename, Format: format}
	if err := sink.Write(img.Width(), img.Height(), img.Pixels()); err != nil {
		return fmt.Errorf("error saving render: %w", err)
	}

	logger.Printf("Render saved as %s\n", filename)
	return nil
}

// createScene creates a scene by name with optional size overrides
func createScene(sceneType string, width, height int) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("scene name must not be empty")
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("image size must not be negative, got %dx%d", width, height)
	}
	return scene.Lookup(sceneType, scene.CameraConfig{Width: width, Height: height})
}

// outputPath returns output/<scene>/render_<timestamp>.<format>
func outputPath(sceneName, format string, now time.Time) string {
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneName, fmt.Sprintf("render_%s.%s", timestamp, format))
}

// showHelp prints usage information
func showHelp(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Phong Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	listScenes(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output will be saved to output/<scene>/render_<timestamp>.<format>")
}

// listScenes prints the built-in scenes
func listScenes(w io.Writer) {
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-12s - %s\n", info.ID, info.Description)
	}
}
