package cli

import (
	"errors"
	"os"

	"github.com/pankajredekar/namecraft/internal/generator"
	"github.com/pankajredekar/namecraft/internal/utils"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate names",
	Long:    "Draws names at random from a category's name lists, or from the general pool when --category is omitted",
	Run: func(cmd *cobra.Command, args []string) {
		svc, cfg := openService()

		categoryID, _ := cmd.Flags().GetString("category")
		prefix, _ := cmd.Flags().GetString("prefix")
		count := cfg.GenerateCount
		if cmd.Flags().Changed("count") {
			count, _ = cmd.Flags().GetInt("count")
		}

		names, err := svc.Generate(categoryID, prefix, count)
		if errors.Is(err, generator.ErrNegativeCount) {
			utils.PrintError("--count must not be negative")
			os.Exit(1)
		}
		if err != nil {
			fail("Failed to generate names", err)
		}
		printNames(cmd.OutOrStdout(), names)
	},
}

func init() {
	generateCmd.Flags().String("category", "", "category id (empty for the general pool)")
	generateCmd.Flags().String("prefix", "", "text prepended to every name")
	generateCmd.Flags().Int("count", generator.DefaultCount, "number of names")
	rootCmd.AddCommand(generateCmd)
}
