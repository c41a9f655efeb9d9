package cli

import (
	"fmt"
	"io"

	"github.com/pankajredekar/namecraft/internal/catalog"
	"github.com/pankajredekar/namecraft/internal/utils"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report integrity problems in the stored catalog",
	Long:  "Reports duplicate category ids and name lists or seo texts that point at missing categories. Nothing is repaired.",
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openService()
		rep, err := svc.Check()
		if err != nil {
			fail("Failed to check catalog", err)
		}
		if printReport(cmd.OutOrStdout(), rep) {
			utils.PrintSuccess("Catalog is consistent")
		}
	},
}

// printReport writes the findings and reports whether there were none
func printReport(w io.Writer, rep catalog.Report) bool {
	fmt.Fprintf(w, "%d categories\n", rep.Categories)
	clean := true
	if rep.DuplicateIDs != nil {
		clean = false
		fmt.Fprintf(w, "duplicate ids: %v\n", rep.DuplicateIDs)
	}
	for _, l := range rep.OrphanNameLists {
		clean = false
		fmt.Fprintf(w, "name list %s (%s) points at missing category %s\n", l.Name, l.ID, l.CategoryID)
	}
	for _, t := range rep.OrphanSeoTexts {
		clean = false
		fmt.Fprintf(w, "seo text %s (%s) points at missing category %s\n", t.Title, t.ID, t.CategoryID)
	}
	return clean
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
