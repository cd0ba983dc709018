package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/alde/asciify/pkg/api"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	serveHost string
	servePort int
	logFile   string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web upload form and conversion endpoint",
	Long: `Serve a web form for uploading images and converting them to ASCII art.
The listening port can also be set through the PORT environment variable.

Examples:
  asciify serve
  asciify serve --port 9000 --log-file /var/log/asciify.log`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "Host interface to bind")
	serveCmd.Flags().IntVar(&servePort, "port", defaultPort(), "Port to listen on")
	serveCmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file with rotation instead of stderr")
}

// defaultPort reads the PORT environment variable, the only configuration
// the server takes from the environment.
func defaultPort() int {
	if value := os.Getenv("PORT"); value != "" {
		if port, err := strconv.Atoi(value); err == nil {
			return port
		}
	}
	return 8080
}

func runServe(cmd *cobra.Command, args []string) error {
	if logFile != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // MB
			MaxBackups: 2,
			MaxAge:     28, // days
			Compress:   true,
		})
		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	}

	addr := fmt.Sprintf("%s:%d", serveHost, servePort)
	log.Printf("Starting server at http://%s", addr)

	server := api.NewServer()
	return server.Start(addr)
}
