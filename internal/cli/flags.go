package cli

import (
	"fmt"
	"os"

	"github.com/pankajredekar/namecraft/internal/registry"
	"github.com/pankajredekar/namecraft/internal/tree"
	"github.com/spf13/cobra"
)

// changedString returns the flag value only when the operator set it
func changedString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

// changedInt returns the flag value only when the operator set it
func changedInt(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}

func addCategoryFieldFlags(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "category name")
	cmd.Flags().String("description", "", "category description")
	cmd.Flags().String("seo-title", "", "SEO title")
	cmd.Flags().String("seo-description", "", "SEO description")
	cmd.Flags().String("seo-keywords", "", "comma-separated SEO keywords")
	cmd.Flags().String("image", "", "path to an image file")
}

// categoryPatch collects the category field flags that were set
func categoryPatch(cmd *cobra.Command) tree.Patch {
	return tree.Patch{
		Name:           changedString(cmd, "name"),
		Description:    changedString(cmd, "description"),
		SeoTitle:       changedString(cmd, "seo-title"),
		SeoDescription: changedString(cmd, "seo-description"),
		SeoKeywords:    changedString(cmd, "seo-keywords"),
	}
}

func addNamesFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("entry", nil, "a name to include (repeatable)")
	cmd.Flags().String("names-file", "", "file with one name per line ('-' for stdin)")
}

// readNames collects names from --names-file and --entry. ok is false when
// neither flag was given.
func readNames(cmd *cobra.Command) (names []string, ok bool, err error) {
	names = []string{}
	if cmd.Flags().Changed("names-file") {
		path, _ := cmd.Flags().GetString("names-file")
		var data []byte
		if path == "-" {
			data, err = readAll(cmd.InOrStdin())
		} else {
			data, err = os.ReadFile(path)
		}
		if err != nil {
			return nil, false, fmt.Errorf("failed to read names: %w", err)
		}
		names = append(names, registry.ParseNames(string(data))...)
		ok = true
	}
	if cmd.Flags().Changed("entry") {
		entries, _ := cmd.Flags().GetStringArray("entry")
		for _, e := range entries {
			names = append(names, registry.ParseNames(e)...)
		}
		ok = true
	}
	return names, ok, nil
}

// readText returns the contents of path, or stdin for "-"
func readText(cmd *cobra.Command, path string) (string, error) {
	if path == "-" {
		data, err := readAll(cmd.InOrStdin())
		return string(data), err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
