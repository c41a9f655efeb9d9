package registry

import (
	"strings"

	"github.com/pankajredekar/namecraft/internal/models"
	"github.com/pankajredekar/namecraft/internal/tree"
)

// NameListPatch carries the fields of a partial name list update
type NameListPatch struct {
	CategoryID *string
	Name       *string
	Names      []string // nil leaves names unchanged
}

// SeoTextPatch carries the fields of a partial seo text update
type SeoTextPatch struct {
	CategoryID *string
	Title      *string
	Content    *string
	Position   *models.Position
}

// Registry holds the flat name list and seo text collections. Category
// membership is a soft reference evaluated at query time.
type Registry struct {
	nameLists []models.NameList
	seoTexts  []models.SeoText
}

// NewRegistry creates a registry over copies of the given collections
func NewRegistry(lists []models.NameList, texts []models.SeoText) *Registry {
	r := &Registry{
		nameLists: make([]models.NameList, 0, len(lists)),
		seoTexts:  make([]models.SeoText, 0, len(texts)),
	}
	for _, l := range lists {
		r.nameLists = append(r.nameLists, copyList(l))
	}
	r.seoTexts = append(r.seoTexts, texts...)
	return r
}

func copyList(l models.NameList) models.NameList {
	l.Names = append([]string{}, l.Names...)
	return l
}

// NameLists returns all name lists in insertion order
func (r *Registry) NameLists() []models.NameList {
	out := make([]models.NameList, len(r.nameLists))
	for i, l := range r.nameLists {
		out[i] = copyList(l)
	}
	return out
}

// NameList returns the name list with the given id
func (r *Registry) NameList(id string) (models.NameList, bool) {
	for _, l := range r.nameLists {
		if l.ID == id {
			return copyList(l), true
		}
	}
	return models.NameList{}, false
}

// AddNameList appends a name list
func (r *Registry) AddNameList(l models.NameList) {
	r.nameLists = append(r.nameLists, copyList(l))
}

// UpdateNameList merges patch into the list with the given id. Returns false
// when no list matches.
func (r *Registry) UpdateNameList(id string, patch NameListPatch) bool {
	for i := range r.nameLists {
		if r.nameLists[i].ID != id {
			continue
		}
		l := &r.nameLists[i]
		if patch.CategoryID != nil {
			l.CategoryID = *patch.CategoryID
		}
		if patch.Name != nil {
			l.Name = *patch.Name
		}
		if patch.Names != nil {
			l.Names = append([]string{}, patch.Names...)
		}
		return true
	}
	return false
}

// RemoveNameList removes the list with the given id
func (r *Registry) RemoveNameList(id string) bool {
	for i, l := range r.nameLists {
		if l.ID == id {
			r.nameLists = append(r.nameLists[:i:i], r.nameLists[i+1:]...)
			return true
		}
	}
	return false
}

// ListsFor returns the lists whose CategoryID equals categoryID exactly.
// An empty categoryID selects the general pool. Parent lists are not
// inherited by subcategories.
func (r *Registry) ListsFor(categoryID string) []models.NameList {
	var out []models.NameList
	for _, l := range r.nameLists {
		if l.CategoryID == categoryID {
			out = append(out, copyList(l))
		}
	}
	return out
}

// SeoTexts returns all seo texts in insertion order
func (r *Registry) SeoTexts() []models.SeoText {
	return append([]models.SeoText{}, r.seoTexts...)
}

// AddSeoText appends a seo text
func (r *Registry) AddSeoText(s models.SeoText) {
	r.seoTexts = append(r.seoTexts, s)
}

// UpdateSeoText merges patch into the text with the given id
func (r *Registry) UpdateSeoText(id string, patch SeoTextPatch) bool {
	for i := range r.seoTexts {
		if r.seoTexts[i].ID != id {
			continue
		}
		s := &r.seoTexts[i]
		if patch.CategoryID != nil {
			s.CategoryID = *patch.CategoryID
		}
		if patch.Title != nil {
			s.Title = *patch.Title
		}
		if patch.Content != nil {
			s.Content = *patch.Content
		}
		if patch.Position != nil {
			s.Position = *patch.Position
		}
		return true
	}
	return false
}

// RemoveSeoText removes the text with the given id
func (r *Registry) RemoveSeoText(id string) bool {
	for i, s := range r.seoTexts {
		if s.ID == id {
			r.seoTexts = append(r.seoTexts[:i:i], r.seoTexts[i+1:]...)
			return true
		}
	}
	return false
}

// SeoTextFor returns the first text for the category and position. Only
// one text per pair is rendered, so later entries never win.
func (r *Registry) SeoTextFor(categoryID string, position models.Position) (models.SeoText, bool) {
	for _, s := range r.seoTexts {
		if s.CategoryID == categoryID && s.Position == position {
			return s, true
		}
	}
	return models.SeoText{}, false
}

// Orphans lists the name lists and seo texts whose non-empty CategoryID
// does not resolve in the forest.
func (r *Registry) Orphans(forest []models.Category) ([]models.NameList, []models.SeoText) {
	known := make(map[string]bool)
	for _, e := range tree.Flatten(forest) {
		known[e.Category.ID] = true
	}

	var lists []models.NameList
	for _, l := range r.nameLists {
		if l.CategoryID != "" && !known[l.CategoryID] {
			lists = append(lists, copyList(l))
		}
	}
	var texts []models.SeoText
	for _, s := range r.seoTexts {
		if s.CategoryID != "" && !known[s.CategoryID] {
			texts = append(texts, s)
		}
	}
	return lists, texts
}

// ParseNames splits text into one name per line, dropping blank lines
func ParseNames(text string) []string {
	names := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		names = append(names, line)
	}
	return names
}
