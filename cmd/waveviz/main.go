// Waveviz converts hexadecimal bus payloads into simulated electrical
// waveforms for offline inspection.
//
// It models a J1939/CAN-style frame as an ordered sequence of bit-fields,
// maps a hex payload onto per-bit logic levels, and renders the resulting
// time/voltage waveform as a terminal trace, a plot file, or JSON over a
// websocket for browser-based viewers.
//
// Usage:
//
//	waveviz [command] [flags]
//
// Running without arguments launches the interactive wizard.
// See 'waveviz --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MasonDill/waveform-visualizer/internal/logging"
	"github.com/MasonDill/waveform-visualizer/internal/version"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "waveviz",
	Short: "Bus frame waveform visualizer",
	Long: `A utility for visualizing J1939/CAN-style bus frames as electrical waveforms.

Give it a hex payload and a probe configuration and it produces the
time/voltage waveform a probe on that bus line would measure. The
transform is pure and deterministic: no bus timing, arbitration, CRC
computation or hardware I/O is involved.

If no command is specified, the interactive wizard will launch automatically.`,
	Version: version.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.InitializeFromEnv()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: run wizard when no subcommand provided
		return runWizard(cmd, args)
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(frameCmd)
	rootCmd.AddCommand(fieldsCmd)
	rootCmd.AddCommand(payloadsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("waveviz %s\n", version.Full())
	},
}
