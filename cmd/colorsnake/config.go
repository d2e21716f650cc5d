package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorsnake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would use, after the config file
search and the difficulty preset, as YAML.

Search order:
  --config path
  ~/.colorsnake/configs/colorsnake.yaml
  ./configs/colorsnake.yaml
  built-in defaults

Examples:
  colorsnake config
  colorsnake config --difficulty hard > ~/.colorsnake/configs/colorsnake.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
