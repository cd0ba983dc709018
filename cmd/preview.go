package cmd

import (
	"fmt"
	"os"

	"github.com/alde/asciify/pkg/ascii"
	"github.com/spf13/cobra"
)

var previewWidth int

var previewCmd = &cobra.Command{
	Use:   "preview [image]",
	Short: "Render an image as ASCII art on stdout",
	Long: `Render an image as ASCII art directly in the terminal. Uses the same
mapping as convert, defaulting to a width that fits common terminals.

Examples:
  asciify preview photo.jpg
  asciify preview photo.jpg --width 80 --detailed`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().IntVar(&previewWidth, "width", 100, "Target width in character columns")
	previewCmd.Flags().StringVar(&themeName, "theme", "dark", "Ramp direction (dark for dark terminals, light for light)")
	previewCmd.Flags().BoolVar(&detailed, "detailed", false, "Use the detailed 70-glyph character ramp")
}

func runPreview(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	opts, err := conversionOptions(previewWidth)
	if err != nil {
		return err
	}

	result, err := ascii.New(opts).Convert(data)
	if err != nil {
		return err
	}

	fmt.Print(result.Text)
	return nil
}
