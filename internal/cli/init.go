package cli

import (
	"os"

	"github.com/pankajredekar/namecraft/internal/config"
	"github.com/pankajredekar/namecraft/internal/utils"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a NameCraft workspace",
	Long:  "Creates a namecraft.yml configuration file and the local store",
	Run: func(cmd *cobra.Command, args []string) {
		if utils.FileExists(configPath) {
			utils.PrintWarning("%s already exists", configPath)
			return
		}

		cfg := config.Default()
		if url, _ := cmd.Flags().GetString("database-url"); url != "" {
			cfg.DatabaseURL = url
		}

		if err := cfg.Save(configPath); err != nil {
			utils.PrintError("Failed to write config file: %v", err)
			os.Exit(1)
		}

		// Reload so relative sqlite paths resolve against the config location
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			utils.PrintError("Failed to load config: %v", err)
			os.Exit(1)
		}
		if _, err := openStore(loaded); err != nil {
			utils.PrintError("%v", err)
			os.Exit(1)
		}

		utils.PrintSuccess("Initialized NameCraft workspace")
		utils.PrintInfo("Created %s", configPath)
		utils.PrintInfo("Store table %s ready", loaded.StoreTable)
	},
}

func init() {
	initCmd.Flags().String("database-url", "", "database URL (default sqlite://namecraft.db)")
	rootCmd.AddCommand(initCmd)
}
