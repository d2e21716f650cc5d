// colorsnake is a terminal color-collection game: steer a snake around a
// wraparound board and eat only the balls of the announced color.
//
// Usage:
//
//	colorsnake play          - Play in this terminal
//	colorsnake serve         - Start SSH server for remote play
//	colorsnake journal       - Show the event journal
//	colorsnake config        - Print the effective configuration
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set journal path (default: ~/.colorsnake/journal.db)
//	--config <path>       - Load a custom config YAML
//	--difficulty <preset> - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorsnake/internal/config"
	"github.com/vovakirdan/colorsnake/internal/games/colorsnake"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colorsnake",
	Short: "Color Snake - eat the balls of the announced color",
	Long: `Color Snake is a terminal game for practicing colors. The snake
travels a board that wraps at every edge. Eat a ball of the announced color
to grow and score; any other color shrinks the snake.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  journal  - Show journaled game events
  config   - Print the effective configuration

Examples:
  colorsnake play
  colorsnake play --difficulty easy
  colorsnake serve --ssh :2222
  colorsnake journal --limit 50`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.colorsnake/journal.db", "Path to event journal database (empty disables journaling)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(journalCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the config file and applies the difficulty preset.
func loadConfig() (config.ColorSnakeConfig, error) {
	cfg, err := config.LoadColorSnake(flagConfig)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyColorSnakePreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadSettings returns engine settings for the current flags.
func loadSettings() (colorsnake.Settings, error) {
	cfg, err := loadConfig()
	if err != nil {
		return colorsnake.Settings{}, err
	}
	return colorsnake.SettingsFromConfig(cfg)
}
