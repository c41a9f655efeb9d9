package cli

import (
	"os"

	"github.com/pankajredekar/namecraft/internal/catalog"
	"github.com/pankajredekar/namecraft/internal/dataurl"
	"github.com/pankajredekar/namecraft/internal/utils"
	"github.com/spf13/cobra"
)

var categoryCmd = &cobra.Command{
	Use:     "category",
	Aliases: []string{"cat"},
	Short:   "Manage the category tree",
}

var categoryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a category",
	Long:  "Adds a top-level category, or a subcategory when --parent is given",
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openService()

		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			utils.PrintError("--name is required")
			os.Exit(1)
		}
		parent, _ := cmd.Flags().GetString("parent")

		in := catalog.CategoryInput{Name: name}
		in.Description, _ = cmd.Flags().GetString("description")
		in.SeoTitle, _ = cmd.Flags().GetString("seo-title")
		in.SeoDescription, _ = cmd.Flags().GetString("seo-description")
		in.SeoKeywords, _ = cmd.Flags().GetString("seo-keywords")
		if image, _ := cmd.Flags().GetString("image"); image != "" {
			url, err := dataurl.EncodeFile(image)
			if err != nil {
				fail("Failed to read image", err)
			}
			in.ImageURL = url
		}

		c, ok, err := svc.AddCategory(parent, in)
		if err != nil {
			fail("Failed to add category", err)
		}
		if !ok {
			utils.PrintWarning("Parent category %s not found, nothing added", parent)
			return
		}
		utils.PrintSuccess("Added category %s (%s)", c.Name, c.ID)
	},
}

var categoryUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update a category's fields",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openService()
		id := args[0]

		patch := categoryPatch(cmd)
		if clearImage, _ := cmd.Flags().GetBool("clear-image"); clearImage {
			empty := ""
			patch.ImageURL = &empty
		} else if image, _ := cmd.Flags().GetString("image"); image != "" {
			url, err := dataurl.EncodeFile(image)
			if err != nil {
				fail("Failed to read image", err)
			}
			patch.ImageURL = &url
		}
		if patch.Empty() {
			utils.PrintWarning("No fields to update")
			return
		}

		ok, err := svc.UpdateCategory(id, patch)
		if err != nil {
			fail("Failed to update category", err)
		}
		if !ok {
			utils.PrintWarning("Category %s not found", id)
			return
		}
		utils.PrintSuccess("Updated category %s", id)
	},
}

var categoryDeleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm"},
	Short:   "Delete a category and its subcategories",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openService()
		id := args[0]

		removed, ok, err := svc.DeleteCategory(id)
		if err != nil {
			fail("Failed to delete category", err)
		}
		if !ok {
			utils.PrintWarning("Category %s not found", id)
			return
		}
		utils.PrintSuccess("Deleted %d categor%s", len(removed), plural(len(removed), "y", "ies"))
		for _, r := range removed[1:] {
			utils.PrintInfo("  also removed %s", r)
		}
	},
}

var categoryListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "tree"},
	Short:   "Print the category tree",
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openService()
		forest, err := svc.Categories()
		if err != nil {
			fail("Failed to load categories", err)
		}
		printTree(cmd.OutOrStdout(), forest)
	},
}

var categoryShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show a category",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openService()
		c, ok, err := svc.Category(args[0])
		if err != nil {
			fail("Failed to load categories", err)
		}
		if !ok {
			utils.PrintWarning("Category %s not found", args[0])
			return
		}
		printCategory(cmd.OutOrStdout(), c)
	},
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func init() {
	addCategoryFieldFlags(categoryAddCmd)
	categoryAddCmd.Flags().String("parent", "", "parent category id")

	addCategoryFieldFlags(categoryUpdateCmd)
	categoryUpdateCmd.Flags().Bool("clear-image", false, "remove the category image")

	categoryCmd.AddCommand(categoryAddCmd, categoryUpdateCmd, categoryDeleteCmd, categoryListCmd, categoryShowCmd)
	rootCmd.AddCommand(categoryCmd)
}
