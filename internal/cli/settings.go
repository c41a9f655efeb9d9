package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/pankajredekar/namecraft/internal/catalog"
	"github.com/pankajredekar/namecraft/internal/models"
	"github.com/pankajredekar/namecraft/internal/utils"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage site settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show site settings",
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openService()
		s, err := svc.Settings()
		if err != nil {
			fail("Failed to load settings", err)
		}
		printSettings(cmd.OutOrStdout(), s)
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update site settings",
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openService()

		patch := settingsPatch(cmd)
		changed := !patch.Empty()
		if changed {
			if err := svc.UpdateSettings(patch); err != nil {
				fail("Failed to update settings", err)
			}
		}

		if clearLogo, _ := cmd.Flags().GetBool("clear-logo"); clearLogo {
			if err := svc.ClearLogo(); err != nil {
				fail("Failed to clear logo", err)
			}
			changed = true
		} else if logo, _ := cmd.Flags().GetString("logo"); logo != "" {
			if err := svc.SetLogo(logo); err != nil {
				fail("Failed to set logo", err)
			}
			changed = true
		}

		if !changed {
			utils.PrintWarning("No settings to update")
			return
		}
		utils.PrintSuccess("Updated settings")
	},
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Manage header menu items",
}

var menuAddCmd = &cobra.Command{
	Use:   "add LABEL URL",
	Short: "Add a menu item",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openService()
		item, err := svc.AddMenuItem(args[0], args[1])
		if err != nil {
			fail("Failed to add menu item", err)
		}
		utils.PrintSuccess("Added menu item %s (%s)", item.Label, item.ID)
	},
}

var menuUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Update a menu item",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openService()
		patch := catalog.MenuItemPatch{
			Label: changedString(cmd, "label"),
			URL:   changedString(cmd, "url"),
		}
		if patch.Label == nil && patch.URL == nil {
			utils.PrintWarning("No fields to update")
			return
		}
		ok, err := svc.UpdateMenuItem(args[0], patch)
		if err != nil {
			fail("Failed to update menu item", err)
		}
		if !ok {
			utils.PrintWarning("Menu item %s not found", args[0])
			return
		}
		utils.PrintSuccess("Updated menu item %s", args[0])
	},
}

var menuDeleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm"},
	Short:   "Delete a menu item",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		svc, _ := openService()
		ok, err := svc.RemoveMenuItem(args[0])
		if err != nil {
			fail("Failed to delete menu item", err)
		}
		if !ok {
			utils.PrintWarning("Menu item %s not found", args[0])
			return
		}
		utils.PrintSuccess("Deleted menu item %s", args[0])
	},
}

// settingsPatch collects the settings flags that were set
func settingsPatch(cmd *cobra.Command) catalog.SettingsPatch {
	patch := catalog.SettingsPatch{
		SiteTitle:          changedString(cmd, "site-title"),
		HomeSeoTitle:       changedString(cmd, "home-seo-title"),
		HomeSeoDescription: changedString(cmd, "home-seo-description"),
		HomeSeoKeywords:    changedString(cmd, "home-seo-keywords"),
		MinLength:          changedInt(cmd, "min-length"),
		MaxLength:          changedInt(cmd, "max-length"),
	}
	if cmd.Flags().Changed("prefix") {
		v, _ := cmd.Flags().GetStringSlice("prefix")
		patch.CustomPrefixes = append([]string{}, v...)
	}
	if cmd.Flags().Changed("suffix") {
		v, _ := cmd.Flags().GetStringSlice("suffix")
		patch.CustomSuffixes = append([]string{}, v...)
	}
	return patch
}

func printSettings(w io.Writer, s models.AdminSettings) {
	logo := "(none, site title shown)"
	if s.LogoURL != "" {
		logo = utils.Truncate(s.LogoURL, 48)
	}
	fmt.Fprintf(w, "Site title:            %s\n", s.SiteTitle)
	fmt.Fprintf(w, "Logo:                  %s\n", logo)
	fmt.Fprintf(w, "Home SEO title:        %s\n", s.HomeSeoTitle)
	fmt.Fprintf(w, "Home SEO description:  %s\n", s.HomeSeoDescription)
	fmt.Fprintf(w, "Home SEO keywords:     %s\n", s.HomeSeoKeywords)
	rules := s.NameGenerationRules
	fmt.Fprintf(w, "Name length:           %d-%d\n", rules.MinLength, rules.MaxLength)
	fmt.Fprintf(w, "Custom prefixes:       %s\n", strings.Join(rules.CustomPrefixes, ", "))
	fmt.Fprintf(w, "Custom suffixes:       %s\n", strings.Join(rules.CustomSuffixes, ", "))
	fmt.Fprintln(w, "Menu:")
	if len(s.MenuItems) == 0 {
		fmt.Fprintln(w, "  (empty)")
	}
	for _, m := range s.MenuItems {
		fmt.Fprintf(w, "  %s -> %s %s\n", m.Label, m.URL, utils.Dim(m.ID))
	}
}

func init() {
	f := settingsSetCmd.Flags()
	f.String("site-title", "", "site title")
	f.String("home-seo-title", "", "homepage SEO title")
	f.String("home-seo-description", "", "homepage SEO description")
	f.String("home-seo-keywords", "", "homepage SEO keywords")
	f.Int("min-length", 0, "minimum name length (stored only)")
	f.Int("max-length", 0, "maximum name length (stored only)")
	f.StringSlice("prefix", nil, "custom prefixes (stored only)")
	f.StringSlice("suffix", nil, "custom suffixes (stored only)")
	f.String("logo", "", "path to a logo image")
	f.Bool("clear-logo", false, "remove the logo")

	menuUpdateCmd.Flags().String("label", "", "menu label")
	menuUpdateCmd.Flags().String("url", "", "menu link")

	menuCmd.AddCommand(menuAddCmd, menuUpdateCmd, menuDeleteCmd)
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd, menuCmd)
	rootCmd.AddCommand(settingsCmd)
}
