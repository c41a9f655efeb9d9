package cli

import (
	"github.com/pankajredekar/namecraft/internal/config"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "namecraft",
	Short: "Category-driven name generator",
	Long:  "NameCraft manages a nested catalog of naming categories and name lists, and generates names by sampling them",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "path to namecraft.yml")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}
