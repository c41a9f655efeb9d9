package cli

import (
	"github.com/pankajredekar/namecraft/internal/catalog"
	"github.com/pankajredekar/namecraft/internal/models"
	"github.com/pankajredekar/namecraft/internal/registry"
	"github.com/pankajredekar/namecraft/internal/tree"
	"github.com/pankajredekar/namecraft/internal/utils"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Manage name lists",
}

var listAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a name list",
	Long:  "Adds a name list to a category, or to the general pool when --category is omitted",
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openService()

		in := catalog.NameListInput{}
		in.Name, _ = cmd.Flags().GetString("name")
		in.CategoryID, _ = cmd.Flags().GetString("category")
		names, _, err := readNames(cmd)
		if err != nil {
			fail("Failed to read names", err)
		}
		in.Names = names

		warnUnknownCategory(svc, in.CategoryID)
		l, err := svc.AddNameList(in)
		if err != nil {
			fail("Failed to add name list", err)
		}
		utils.PrintSuccess("Added name list %s (%s) with %d names", l.Name, l.ID, len(l.Names))
	},
}

var listUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update a name list",
	Long:  "Updates a name list. Names given via --names-file or --entry replace the existing names.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openService()
		id := args[0]

		patch, err := nameListPatch(cmd)
		if err != nil {
			fail("Failed to read names", err)
		}
		if patch.CategoryID == nil && patch.Name == nil && patch.Names == nil {
			utils.PrintWarning("No fields to update")
			return
		}
		if patch.CategoryID != nil {
			warnUnknownCategory(svc, *patch.CategoryID)
		}

		ok, err := svc.UpdateNameList(id, patch)
		if err != nil {
			fail("Failed to update name list", err)
		}
		if !ok {
			utils.PrintWarning("Name list %s not found", id)
			return
		}
		utils.PrintSuccess("Updated name list %s", id)
	},
}

var listDeleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm"},
	Short:   "Delete a name list",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openService()
		ok, err := svc.RemoveNameList(args[0])
		if err != nil {
			fail("Failed to delete name list", err)
		}
		if !ok {
			utils.PrintWarning("Name list %s not found", args[0])
			return
		}
		utils.PrintSuccess("Deleted name list %s", args[0])
	},
}

var listShowCmd = &cobra.Command{
	Use:     "show",
	Aliases: []string{"ls"},
	Short:   "Show name lists",
	Long:    "Shows the name lists of a category, the general pool when --category is omitted, or every list with --all",
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openService()
		forest, err := svc.Categories()
		if err != nil {
			fail("Failed to load categories", err)
		}

		var lists []models.NameList
		if all, _ := cmd.Flags().GetBool("all"); all {
			lists, err = svc.NameLists()
		} else {
			categoryID, _ := cmd.Flags().GetString("category")
			lists, err = svc.ListsFor(categoryID)
		}
		if err != nil {
			fail("Failed to load name lists", err)
		}
		printNameLists(cmd.OutOrStdout(), forest, lists)
	},
}

// nameListPatch collects the name list flags that were set
func nameListPatch(cmd *cobra.Command) (registry.NameListPatch, error) {
	patch := registry.NameListPatch{
		CategoryID: changedString(cmd, "category"),
		Name:       changedString(cmd, "name"),
	}
	names, ok, err := readNames(cmd)
	if err != nil {
		return patch, err
	}
	if ok {
		patch.Names = names
	}
	return patch, nil
}

// warnUnknownCategory flags references that will not resolve. They are
// stored anyway.
func warnUnknownCategory(svc *catalog.Service, id string) {
	if id == "" {
		return
	}
	forest, err := svc.Categories()
	if err != nil {
		fail("Failed to load categories", err)
	}
	if _, ok := tree.Find(forest, id); !ok {
		utils.PrintWarning("Category %s does not exist; the reference is kept as is", id)
	}
}

func init() {
	listAddCmd.Flags().String("name", "", "list name")
	listAddCmd.Flags().String("category", "", "owning category id (empty for the general pool)")
	addNamesFlags(listAddCmd)

	listUpdateCmd.Flags().String("name", "", "list name")
	listUpdateCmd.Flags().String("category", "", "owning category id (empty for the general pool)")
	addNamesFlags(listUpdateCmd)

	listShowCmd.Flags().String("category", "", "category id (empty for the general pool)")
	listShowCmd.Flags().Bool("all", false, "show every name list")

	listCmd.AddCommand(listAddCmd, listUpdateCmd, listDeleteCmd, listShowCmd)
	rootCmd.AddCommand(listCmd)
}
