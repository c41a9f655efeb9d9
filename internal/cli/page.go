package cli

import (
	"github.com/pankajredekar/namecraft/internal/utils"
	"github.com/spf13/cobra"
)

var pageCmd = &cobra.Command{
	Use:   "page [CATEGORY_ID]",
	Short: "Render a catalog page",
	Long:  "Renders the homepage, or the page of the given category, as plain text",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openService()

		categoryID := ""
		if len(args) == 1 {
			categoryID = args[0]
		}
		p, ok, err := svc.Page(categoryID)
		if err != nil {
			fail("Failed to build page", err)
		}
		if !ok {
			utils.PrintWarning("Category %s not found", categoryID)
			return
		}
		settings, err := svc.Settings()
		if err != nil {
			fail("Failed to load settings", err)
		}
		printPage(cmd.OutOrStdout(), settings.SiteTitle, p)
	},
}

func init() {
	rootCmd.AddCommand(pageCmd)
}
