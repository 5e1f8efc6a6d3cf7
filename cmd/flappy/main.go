// flappy is a Flappy Bird-style game for the terminal.
//
// Usage:
//
//	flappy                   - Play (same as 'flappy play')
//	flappy play              - Play the game
//	flappy skins             - List the available skins
//	flappy config            - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--config <path>     - Load configuration from a YAML file
//	--log-file <path>   - Write logs to a file (default: discarded)
//	--debug             - Log at debug level
//	--mute              - Start with sound muted
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagConfig  string
	flagLogFile string
	flagDebug   bool
	flagMute    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - keep the bird in the air",
	Long: `Flappy is a terminal take on the classic one-button game: tap to flap,
slip through the gaps and don't touch anything.

Available commands:
  play     - Play the game (default)
  skins    - Show the available skins
  config   - Print the effective configuration

Examples:
  flappy
  flappy --fps 30 --mute
  flappy play --config ./my-flappy.yaml
  flappy config > ~/.arcade/configs/flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with sound muted")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(skinsCmd)
	rootCmd.AddCommand(configCmd)
}
