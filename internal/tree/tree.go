// Package tree implements the category forest operations. Every mutation
// returns a new forest and leaves its input untouched, so callers can save
// the whole value back to the store.
package tree

import (
	"fmt"

	"github.com/pankajredekar/namecraft/internal/models"
)

// Patch carries the fields of an id-addressed partial update. Nil fields are
// left unchanged. ID, Subcategories and IsSubcategory are not patchable.
type Patch struct {
	Name           *string
	Description    *string
	ImageURL       *string
	SeoTitle       *string
	SeoDescription *string
	SeoKeywords    *string
}

// Empty reports whether the patch changes nothing
func (p Patch) Empty() bool {
	return p.Name == nil && p.Description == nil && p.ImageURL == nil &&
		p.SeoTitle == nil && p.SeoDescription == nil && p.SeoKeywords == nil
}

func (p Patch) apply(c *models.Category) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.ImageURL != nil {
		c.ImageURL = *p.ImageURL
	}
	if p.SeoTitle != nil {
		c.SeoTitle = *p.SeoTitle
	}
	if p.SeoDescription != nil {
		c.SeoDescription = *p.SeoDescription
	}
	if p.SeoKeywords != nil {
		c.SeoKeywords = *p.SeoKeywords
	}
}

// Find returns the first category with the given id in pre-order.
// The returned category is a copy.
func Find(forest []models.Category, id string) (models.Category, bool) {
	if c := findPtr(forest, id); c != nil {
		return Clone([]models.Category{*c})[0], true
	}
	return models.Category{}, false
}

func findPtr(forest []models.Category, id string) *models.Category {
	for i := range forest {
		if forest[i].ID == id {
			return &forest[i]
		}
		if found := findPtr(forest[i].Subcategories, id); found != nil {
			return found
		}
	}
	return nil
}

// Insert appends c to the roots when parentID is empty, otherwise to the
// subcategories of the matching parent at any depth. IsSubcategory is set
// from parentID. The forest is returned unchanged with ok=false when the
// parent does not resolve or when an id of c is already in use.
func Insert(forest []models.Category, parentID string, c models.Category) ([]models.Category, bool) {
	node := Clone([]models.Category{c})[0]
	node.IsSubcategory = parentID != ""

	for _, id := range subtreeIDs(node) {
		if findPtr(forest, id) != nil {
			return forest, false
		}
	}

	if parentID == "" {
		out := Clone(forest)
		return append(out, node), true
	}

	if findPtr(forest, parentID) == nil {
		return forest, false
	}
	out := Clone(forest)
	parent := findPtr(out, parentID)
	parent.Subcategories = append(parent.Subcategories, node)
	return out, true
}

// Update merges patch into the first category matching id. No-op when id is
// not found.
func Update(forest []models.Category, id string, patch Patch) ([]models.Category, bool) {
	if findPtr(forest, id) == nil {
		return forest, false
	}
	out := Clone(forest)
	patch.apply(findPtr(out, id))
	return out, true
}

// Delete removes every node with the given id together with its subtree.
func Delete(forest []models.Category, id string) ([]models.Category, bool) {
	if findPtr(forest, id) == nil {
		return forest, false
	}
	return prune(forest, id), true
}

func prune(list []models.Category, id string) []models.Category {
	out := make([]models.Category, 0, len(list))
	for _, c := range list {
		if c.ID == id {
			continue
		}
		c.Subcategories = prune(c.Subcategories, id)
		out = append(out, c)
	}
	return out
}

// Clone returns a deep copy of the forest. Nil subcategory slices become
// empty slices.
func Clone(forest []models.Category) []models.Category {
	out := make([]models.Category, len(forest))
	for i, c := range forest {
		out[i] = c
		out[i].Subcategories = Clone(c.Subcategories)
	}
	return out
}

// Entry is one row of a flattened forest
type Entry struct {
	Category models.Category
	ParentID string
	Depth    int
}

// Flatten lists every category in pre-order with its depth. Subcategories
// are not copied into the entries.
func Flatten(forest []models.Category) []Entry {
	var out []Entry
	flatten(forest, "", 0, &out)
	return out
}

func flatten(list []models.Category, parentID string, depth int, out *[]Entry) {
	for _, c := range list {
		row := c
		row.Subcategories = nil
		*out = append(*out, Entry{Category: row, ParentID: parentID, Depth: depth})
		flatten(c.Subcategories, c.ID, depth+1, out)
	}
}

// Descendants returns the ids below the first node matching id, in
// pre-order. The node itself is not included.
func Descendants(forest []models.Category, id string) []string {
	c := findPtr(forest, id)
	if c == nil {
		return nil
	}
	return subtreeIDs(*c)[1:]
}

func subtreeIDs(c models.Category) []string {
	ids := []string{c.ID}
	for _, sub := range c.Subcategories {
		ids = append(ids, subtreeIDs(sub)...)
	}
	return ids
}

// Count returns the total number of nodes in the forest
func Count(forest []models.Category) int {
	n := 0
	for _, c := range forest {
		n += 1 + Count(c.Subcategories)
	}
	return n
}

// Validate reports ids that occur more than once across the forest
func Validate(forest []models.Category) error {
	seen := make(map[string]bool)
	var dups []string
	for _, e := range Flatten(forest) {
		if seen[e.Category.ID] {
			dups = append(dups, e.Category.ID)
			continue
		}
		seen[e.Category.ID] = true
	}
	if len(dups) > 0 {
		return fmt.Errorf("duplicate category ids: %v", dups)
	}
	return nil
}
