package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alde/asciify/internal/worker"
	"github.com/alde/asciify/pkg/ascii"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	outputDir      string
	themeName      string
	detailed       bool
	fullResolution bool
	width          int
	workerCount    int
	verbose        bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [images...]",
	Short: "Convert images to ASCII art files",
	Long: `Convert one or more images to ASCII art. Each input produces a plain-text
rendering and a self-contained HTML viewer, written next to the input (or
into --output-dir) as <name>.txt and <name>.html.

Examples:
  asciify convert photo.jpg
  asciify convert photo.jpg --theme light --detailed
  asciify convert *.png --output-dir art/ --width 120 --workers 4`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "Directory for output files (default: next to each input)")
	convertCmd.Flags().StringVar(&themeName, "theme", "dark", "Color theme for the HTML viewer (dark, light)")
	convertCmd.Flags().BoolVar(&detailed, "detailed", false, "Use the detailed 70-glyph character ramp")
	convertCmd.Flags().BoolVar(&fullResolution, "full-resolution", false, "Skip resizing; one character per source pixel")
	convertCmd.Flags().IntVar(&width, "width", ascii.DefaultWidth, "Target width in character columns")
	convertCmd.Flags().IntVar(&workerCount, "workers", 0, "Number of worker goroutines (0 = one per CPU)")
	convertCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// convertJob converts one input file. Each job is processed by exactly one
// worker, so the result fields need no locking.
type convertJob struct {
	inputPath string
	txtPath   string
	htmlPath  string
	options   ascii.Options

	stats ascii.Stats
}

func (j *convertJob) ID() string {
	return j.inputPath
}

func (j *convertJob) Process(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := os.ReadFile(j.inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	result, err := ascii.New(j.options).Convert(data)
	if err != nil {
		return err
	}

	if err := os.WriteFile(j.txtPath, []byte(result.Text), 0644); err != nil {
		return fmt.Errorf("failed to write text output: %w", err)
	}
	if err := os.WriteFile(j.htmlPath, []byte(result.HTML), 0644); err != nil {
		return fmt.Errorf("failed to write HTML output: %w", err)
	}

	j.stats = result.Stats
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	for _, inputPath := range args {
		if _, err := os.Stat(inputPath); os.IsNotExist(err) {
			return fmt.Errorf("input file does not exist: %s", inputPath)
		}
	}

	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	opts, err := conversionOptions(width)
	if err != nil {
		return err
	}

	startTime := time.Now()

	jobs := make([]*convertJob, 0, len(args))
	for _, inputPath := range args {
		dir := outputDir
		if dir == "" {
			dir = filepath.Dir(inputPath)
		}
		base := filepath.Base(inputPath)
		stem := strings.TrimSuffix(base, filepath.Ext(base))

		jobs = append(jobs, &convertJob{
			inputPath: inputPath,
			txtPath:   filepath.Join(dir, stem+".txt"),
			htmlPath:  filepath.Join(dir, stem+".html"),
			options:   opts,
		})
	}

	pool := worker.NewPool(workerCount)
	pool.Start()

	if verbose {
		fmt.Printf("Converting %d file(s) using %d worker goroutines\n", len(jobs), pool.WorkerCount())
	}

	go func() {
		for _, job := range jobs {
			pool.Submit(job)
		}
		pool.Stop()
	}()

	failures := 0
	for result := range pool.Results() {
		if result.Error != nil {
			failures++
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", result.JobID, result.Error)
		} else if verbose {
			fmt.Printf("Converted %s\n", result.JobID)
		}
	}

	displaySummary(jobs, failures, time.Since(startTime))

	if failures > 0 {
		return fmt.Errorf("%d of %d conversions failed", failures, len(jobs))
	}
	return nil
}

// conversionOptions resolves the shared theme and ramp flags into converter
// options at the given character-column width.
func conversionOptions(width int) (ascii.Options, error) {
	theme, err := ascii.GetTheme(themeName)
	if err != nil {
		return ascii.Options{}, err
	}

	rampName := "simple"
	if detailed {
		rampName = "detailed"
	}
	ramp, err := ascii.GetRamp(rampName)
	if err != nil {
		return ascii.Options{}, err
	}

	return ascii.Options{
		Width:          width,
		FullResolution: fullResolution,
		Theme:          theme,
		Ramp:           ramp,
	}, nil
}

// displaySummary shows the batch conversion results
func displaySummary(jobs []*convertJob, failures int, elapsed time.Duration) {
	var inputBytes, outputBytes uint64
	for _, job := range jobs {
		inputBytes += job.stats.InputSize
		outputBytes += job.stats.TextSize + job.stats.HTMLSize
	}

	fmt.Printf("\nConversion completed\n")
	fmt.Printf("================================================================\n")
	fmt.Printf("Files:      %d converted, %d failed\n", len(jobs)-failures, failures)
	fmt.Printf("Input:      %s\n", humanize.Bytes(inputBytes))
	fmt.Printf("Output:     %s (text + HTML)\n", humanize.Bytes(outputBytes))
	fmt.Printf("Processing: %v\n", elapsed.Round(time.Millisecond))
	fmt.Printf("================================================================\n")
}
