package cli

import (
	"os"

	"github.com/pankajredekar/namecraft/internal/catalog"
	"github.com/pankajredekar/namecraft/internal/models"
	"github.com/pankajredekar/namecraft/internal/registry"
	"github.com/pankajredekar/namecraft/internal/utils"
	"github.com/spf13/cobra"
)

var seoCmd = &cobra.Command{
	Use:   "seo",
	Short: "Manage SEO text blocks",
}

var seoAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an SEO text block",
	Long:  "Adds an SEO text block to a category page, or to the homepage when --category is omitted",
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openService()

		in := catalog.SeoTextInput{}
		in.Title, _ = cmd.Flags().GetString("title")
		in.CategoryID, _ = cmd.Flags().GetString("category")
		position, _ := cmd.Flags().GetString("position")
		in.Position = models.Position(position)
		in.Content, _ = cmd.Flags().GetString("content")
		if cmd.Flags().Changed("content-file") {
			path, _ := cmd.Flags().GetString("content-file")
			content, err := readText(cmd, path)
			if err != nil {
				fail("Failed to read content", err)
			}
			in.Content = content
		}

		warnUnknownCategory(svc, in.CategoryID)
		t, err := svc.AddSeoText(in)
		if err != nil {
			fail("Failed to add seo text", err)
		}
		utils.PrintSuccess("Added seo text %s (%s, %s)", t.Title, t.ID, t.Position)
	},
}

var seoUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update an SEO text block",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openService()
		id := args[0]

		patch, err := seoTextPatch(cmd)
		if err != nil {
			utils.PrintError("%v", err)
			os.Exit(1)
		}
		if patch.CategoryID == nil && patch.Title == nil && patch.Content == nil && patch.Position == nil {
			utils.PrintWarning("No fields to update")
			return
		}
		if patch.CategoryID != nil {
			warnUnknownCategory(svc, *patch.CategoryID)
		}

		ok, err := svc.UpdateSeoText(id, patch)
		if err != nil {
			fail("Failed to update seo text", err)
		}
		if !ok {
			utils.PrintWarning("Seo text %s not found", id)
			return
		}
		utils.PrintSuccess("Updated seo text %s", id)
	},
}

var seoDeleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm"},
	Short:   "Delete an SEO text block",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openService()
		ok, err := svc.RemoveSeoText(args[0])
		if err != nil {
			fail("Failed to delete seo text", err)
		}
		if !ok {
			utils.PrintWarning("Seo text %s not found", args[0])
			return
		}
		utils.PrintSuccess("Deleted seo text %s", args[0])
	},
}

var seoListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List SEO text blocks",
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openService()
		forest, err := svc.Categories()
		if err != nil {
			fail("Failed to load categories", err)
		}
		texts, err := svc.SeoTexts()
		if err != nil {
			fail("Failed to load seo texts", err)
		}
		printSeoTexts(cmd.OutOrStdout(), forest, texts)
	},
}

// seoTextPatch collects the seo text flags that were set
func seoTextPatch(cmd *cobra.Command) (registry.SeoTextPatch, error) {
	patch := registry.SeoTextPatch{
		CategoryID: changedString(cmd, "category"),
		Title:      changedString(cmd, "title"),
		Content:    changedString(cmd, "content"),
	}
	if cmd.Flags().Changed("content-file") {
		path, _ := cmd.Flags().GetString("content-file")
		content, err := readText(cmd, path)
		if err != nil {
			return patch, err
		}
		patch.Content = &content
	}
	if raw := changedString(cmd, "position"); raw != nil {
		p, ok := models.ParsePosition(*raw)
		if !ok {
			return patch, catalog.ErrInvalidPosition
		}
		patch.Position = &p
	}
	return patch, nil
}

func addSeoFlags(cmd *cobra.Command) {
	cmd.Flags().String("title", "", "block title")
	cmd.Flags().String("category", "", "category id (empty for the homepage)")
	cmd.Flags().String("position", string(models.PositionBeforeFooter), "before-footer or after-header")
	cmd.Flags().String("content", "", "rich-text content")
	cmd.Flags().String("content-file", "", "read content from a file ('-' for stdin)")
}

func init() {
	addSeoFlags(seoAddCmd)
	addSeoFlags(seoUpdateCmd)

	seoCmd.AddCommand(seoAddCmd, seoUpdateCmd, seoDeleteCmd, seoListCmd)
	rootCmd.AddCommand(seoCmd)
}
