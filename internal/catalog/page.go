package catalog

import (
	"github.com/pankajredekar/namecraft/internal/models"
	"github.com/pankajredekar/namecraft/internal/registry"
	"github.com/pankajredekar/namecraft/internal/tree"
)

// Page is what a category page (or the homepage, when Category is nil)
// shows. Subcategory pages show the generator; other pages list their
// child categories.
type Page struct {
	Category       *models.Category
	Title          string
	Description    string
	Keywords       string
	AfterHeader    *models.SeoText
	BeforeFooter   *models.SeoText
	Children       []models.Category
	ShowGenerator  bool
	GeneratorLists []models.NameList
}

// Page assembles the page for categoryID. An empty id builds the homepage.
// ok is false when the category does not exist.
func (s *Service) Page(categoryID string) (Page, bool, error) {
	forest, err := s.gateway.LoadCategories()
	if err != nil {
		return Page{}, false, err
	}
	lists, err := s.gateway.LoadNameLists()
	if err != nil {
		return Page{}, false, err
	}
	texts, err := s.gateway.LoadSeoTexts()
	if err != nil {
		return Page{}, false, err
	}
	r := registry.NewRegistry(lists, texts)

	var p Page
	if categoryID == "" {
		settings, err := s.gateway.LoadSettings()
		if err != nil {
			return Page{}, false, err
		}
		p.Title = settings.HomeSeoTitle
		p.Description = settings.HomeSeoDescription
		p.Keywords = settings.HomeSeoKeywords
		p.Children = forest
		p.ShowGenerator = true
	} else {
		c, ok := tree.Find(forest, categoryID)
		if !ok {
			return Page{}, false, nil
		}
		p.Category = &c
		p.Title = c.SeoTitle
		if p.Title == "" {
			p.Title = c.Name
		}
		p.Description = c.SeoDescription
		p.Keywords = c.SeoKeywords
		p.ShowGenerator = c.IsSubcategory
		if !c.IsSubcategory {
			p.Children = c.Subcategories
		}
	}

	if p.ShowGenerator {
		p.GeneratorLists = r.ListsFor(categoryID)
	}
	if t, ok := r.SeoTextFor(categoryID, models.PositionAfterHeader); ok {
		p.AfterHeader = &t
	}
	if t, ok := r.SeoTextFor(categoryID, models.PositionBeforeFooter); ok {
		p.BeforeFooter = &t
	}
	return p, true, nil
}

// Report lists integrity findings in the persisted data. Findings are
// informational; nothing is repaired.
type Report struct {
	Categories      int
	DuplicateIDs    error
	OrphanNameLists []models.NameList
	OrphanSeoTexts  []models.SeoText
}

// Check inspects the persisted data for duplicate ids and orphaned
// references
func (s *Service) Check() (Report, error) {
	forest, err := s.gateway.LoadCategories()
	if err != nil {
		return Report{}, err
	}
	lists, err := s.gateway.LoadNameLists()
	if err != nil {
		return Report{}, err
	}
	texts, err := s.gateway.LoadSeoTexts()
	if err != nil {
		return Report{}, err
	}

	rep := Report{
		Categories:   tree.Count(forest),
		DuplicateIDs: tree.Validate(forest),
	}
	rep.OrphanNameLists, rep.OrphanSeoTexts = registry.NewRegistry(lists, texts).Orphans(forest)
	return rep, nil
}
