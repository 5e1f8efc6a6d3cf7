package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start the game in the skin menu.

Controls:
  Space/Up/W - Flap (resumes from the menu, restarts after game over)
  Esc/P      - Pause and open the skin menu
  1-5, Enter - Pick a skin and start a new run
  R          - Restart after game over
  +/-        - Volume up/down
  M          - Mute
  Q/Ctrl+C   - Quit

Examples:
  flappy play
  flappy play --mute
  flappy play --config ./my-flappy.yaml --log-file flappy.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play() error {
	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Get terminal size; the last row is the help footer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rc := core.DefaultConfig()
	rc.ScreenW, rc.ScreenH = width, height
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}

	worldW := float64(width) * cfg.Display.CellWidth
	worldH := float64(max(height-1, 1)) * cfg.Display.CellHeight
	session, err := flappy.NewSession(cfg, worldW, worldH, nil)
	if err != nil {
		return fmt.Errorf("terminal %dx%d: %w", width, height, err)
	}

	sounds := startAudio(cfg.Audio, logger)
	defer sounds.Cleanup()

	logger.Info("starting", "cols", width, "rows", height, "fps", rc.TickRate)
	if err := tui.Run(session, sounds, logger, rc); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	logger.Info("bye")
	return nil
}

// startAudio opens the audio device. Failure is not fatal: the game runs
// silently and the problem is reported on stderr and in the log.
func startAudio(cfg config.AudioConfig, logger *log.Logger) *audio.SoundManager {
	sounds := audio.NewSoundManager(cfg)
	sounds.SetMuted(flagMute)
	if err := sounds.Initialize(); err != nil {
		logger.Warn("audio unavailable", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: audio unavailable, playing silently: %v\n", err)
		return nil
	}
	return sounds
}
