package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/pankajredekar/namecraft/internal/catalog"
	"github.com/pankajredekar/namecraft/internal/models"
	"github.com/pankajredekar/namecraft/internal/tree"
	"github.com/pankajredekar/namecraft/internal/utils"
)

func readAll(r io.Reader) ([]byte, error) {
	return io.ReadAll(r)
}

// printTree writes one indented line per category in pre-order
func printTree(w io.Writer, forest []models.Category) {
	entries := tree.Flatten(forest)
	if len(entries) == 0 {
		fmt.Fprintln(w, "(no categories)")
		return
	}
	for _, e := range entries {
		marker := "▸"
		if e.Category.IsSubcategory {
			marker = "•"
		}
		fmt.Fprintf(w, "%s%s %s %s\n", utils.Indent(e.Depth), marker, e.Category.Name, utils.Dim(e.Category.ID))
	}
}

func printCategory(w io.Writer, c models.Category) {
	fmt.Fprintf(w, "ID:              %s\n", c.ID)
	fmt.Fprintf(w, "Name:            %s\n", c.Name)
	fmt.Fprintf(w, "Description:     %s\n", c.Description)
	fmt.Fprintf(w, "Image:           %s\n", utils.Truncate(c.ImageURL, 48))
	fmt.Fprintf(w, "SEO title:       %s\n", c.SeoTitle)
	fmt.Fprintf(w, "SEO description: %s\n", c.SeoDescription)
	fmt.Fprintf(w, "SEO keywords:    %s\n", c.SeoKeywords)
	fmt.Fprintf(w, "Subcategory:     %v\n", c.IsSubcategory)
	fmt.Fprintf(w, "Children:        %d\n", len(c.Subcategories))
}

// categoryLabel names a category reference, tolerating dangling ids
func categoryLabel(forest []models.Category, id, empty string) string {
	if id == "" {
		return empty
	}
	if c, ok := tree.Find(forest, id); ok {
		return c.Name
	}
	return id + " (missing)"
}

func printNameLists(w io.Writer, forest []models.Category, lists []models.NameList) {
	if len(lists) == 0 {
		fmt.Fprintln(w, "(no name lists)")
		return
	}
	for _, l := range lists {
		fmt.Fprintf(w, "%s %s [%s] %d names\n", l.Name, utils.Dim(l.ID), categoryLabel(forest, l.CategoryID, "General"), len(l.Names))
		if verbose {
			for _, n := range l.Names {
				fmt.Fprintf(w, "  %s\n", n)
			}
		}
	}
}

func printSeoTexts(w io.Writer, forest []models.Category, texts []models.SeoText) {
	if len(texts) == 0 {
		fmt.Fprintln(w, "(no seo texts)")
		return
	}
	for _, t := range texts {
		fmt.Fprintf(w, "%s %s [%s, %s] %s\n", t.Title, utils.Dim(t.ID), categoryLabel(forest, t.CategoryID, "Homepage"), t.Position, utils.Truncate(t.Content, 40))
	}
}

func printNames(w io.Writer, names []string) {
	for i, n := range names {
		fmt.Fprintf(w, "%d. %s\n", i+1, n)
	}
}

func printSeoBlock(w io.Writer, t *models.SeoText) {
	if t == nil {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "## %s\n", t.Title)
	fmt.Fprintln(w, t.Content)
}

func printPage(w io.Writer, siteTitle string, p catalog.Page) {
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "%s | %s\n", siteTitle, p.Title)
	fmt.Fprintln(w, strings.Repeat("=", 60))
	if p.Description != "" {
		fmt.Fprintf(w, "description: %s\n", p.Description)
	}
	if p.Keywords != "" {
		fmt.Fprintf(w, "keywords:    %s\n", p.Keywords)
	}
	if p.Category != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "# %s\n", p.Category.Name)
		if p.Category.Description != "" {
			fmt.Fprintln(w, p.Category.Description)
		}
	}

	printSeoBlock(w, p.AfterHeader)

	if p.ShowGenerator {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Generator: %d list(s)\n", len(p.GeneratorLists))
	}
	if len(p.Children) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Categories:")
		for _, c := range p.Children {
			fmt.Fprintf(w, "  ▸ %s %s\n", c.Name, utils.Dim(c.ID))
			for _, sub := range c.Subcategories {
				fmt.Fprintf(w, "      %s\n", sub.Name)
			}
		}
	}

	printSeoBlock(w, p.BeforeFooter)
}
