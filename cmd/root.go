package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "asciify",
	Short: "Convert raster images into ASCII art",
	Long: `Asciify converts raster images (JPEG, PNG, GIF, BMP, WebP, TIFF) into
ASCII-art renderings, emitted as plain text and as a self-contained HTML
viewer that scales the art to the browser window.

Run it as a one-shot converter on files, preview art directly in the
terminal, or serve a web upload form.`,
	Version: "0.1.0",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
