// arkanoid is a terminal Arkanoid: break the brick wall with the ball,
// keep the ball off the floor with the paddle.
//
// Usage:
//
//	arkanoid             - Play (same as "arkanoid play")
//	arkanoid play        - Play
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--config <path>   - Custom game config YAML
//	--theme <path>    - Custom theme YAML
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagFPS    int
	flagConfig string
	flagTheme  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid",
	Short: "Arkanoid - break bricks in your terminal",
	Long: `Arkanoid is a terminal rendition of the classic brick breaker.

Controls:
  Left/A     - Move paddle left
  Right/D    - Move paddle right
  P          - Pause/unpause
  R          - Restart
  Q/Esc      - Quit

Examples:
  arkanoid
  arkanoid play --fps 30
  arkanoid play --config ./my-arkanoid.yaml --theme ./my-theme.yaml`,
	RunE: runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Path to custom theme YAML")

	rootCmd.AddCommand(playCmd)
}
