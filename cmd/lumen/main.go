package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╦  ╦ ╦╔╦╗╔═╗╔╗╔
  ║  ║ ║║║║║╣ ║║║
  ╩═╝╚═╝╩ ╩╚═╝╝╚╝
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "lumen",
		Short: "Server-driven UI runtime for Go",
		Long: `Lumen runs model/view/update applications on the server and
drives a thin JavaScript client over WebSocket.

  • Immutable view trees with scoped styling
  • Mailbox-based event dispatch
  • Frame-scheduled reconciliation
  • Prometheus metrics and OpenTelemetry tracing`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		initCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the Lumen ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
