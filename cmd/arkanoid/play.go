package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arkanoid/internal/config"
	"github.com/vovakirdan/arkanoid/internal/game"
	"github.com/vovakirdan/arkanoid/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a round.

The round opens paused; press P to start. Losing the ball off the
bottom edge costs a life, clearing every brick wins the round.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// A missing theme degrades the display, it does not stop the game.
	theme, err := config.LoadTheme(flagTheme)
	if err != nil {
		log.Warn("theme load failure, using built-in theme", "err", err)
		theme = config.DefaultTheme()
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	g := game.New(cfg)

	if err := tui.Run(g, cfg, theme, width, height, flagFPS); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
