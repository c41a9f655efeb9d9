// Package catalog runs every operator action against the persisted state.
// Each mutation loads the whole value for its key, applies the change in
// memory and writes the whole value back. There is no caching between
// calls.
package catalog

import (
	"errors"
	"fmt"

	"github.com/pankajredekar/namecraft/internal/dataurl"
	"github.com/pankajredekar/namecraft/internal/generator"
	"github.com/pankajredekar/namecraft/internal/ids"
	"github.com/pankajredekar/namecraft/internal/models"
	"github.com/pankajredekar/namecraft/internal/persistence"
	"github.com/pankajredekar/namecraft/internal/registry"
	"github.com/pankajredekar/namecraft/internal/tree"
)

// ErrInvalidPosition is returned for an unknown seo text position
var ErrInvalidPosition = errors.New("position must be before-footer or after-header")

// ImageEncoder turns an image file into a string for imageUrl/logoUrl
type ImageEncoder func(path string) (string, error)

// Service executes operator actions
type Service struct {
	gateway     *persistence.Gateway
	newID       ids.Generator
	generator   *generator.Generator
	encodeImage ImageEncoder
}

// NewService creates a service. Nil arguments take the defaults: UUID ids,
// the math/rand generator and data URL image encoding.
func NewService(gateway *persistence.Gateway, newID ids.Generator, gen *generator.Generator) *Service {
	if newID == nil {
		newID = ids.New
	}
	if gen == nil {
		gen = generator.NewGenerator(nil)
	}
	return &Service{
		gateway:     gateway,
		newID:       newID,
		generator:   gen,
		encodeImage: dataurl.EncodeFile,
	}
}

// SetImageEncoder replaces the image encoder
func (s *Service) SetImageEncoder(enc ImageEncoder) {
	if enc != nil {
		s.encodeImage = enc
	}
}

// CategoryInput holds the operator-supplied fields of a new category
type CategoryInput struct {
	Name           string
	Description    string
	ImageURL       string
	SeoTitle       string
	SeoDescription string
	SeoKeywords    string
}

// Categories returns the whole forest
func (s *Service) Categories() ([]models.Category, error) {
	return s.gateway.LoadCategories()
}

// Category returns the category with the given id
func (s *Service) Category(id string) (models.Category, bool, error) {
	forest, err := s.gateway.LoadCategories()
	if err != nil {
		return models.Category{}, false, err
	}
	c, ok := tree.Find(forest, id)
	return c, ok, nil
}

// AddCategory creates a category under parentID, or at the root when
// parentID is empty. ok is false and nothing is saved when the parent does
// not resolve.
func (s *Service) AddCategory(parentID string, in CategoryInput) (models.Category, bool, error) {
	forest, err := s.gateway.LoadCategories()
	if err != nil {
		return models.Category{}, false, err
	}

	c := models.Category{
		ID:             s.newID(),
		Name:           in.Name,
		Description:    in.Description,
		ImageURL:       in.ImageURL,
		SeoTitle:       in.SeoTitle,
		SeoDescription: in.SeoDescription,
		SeoKeywords:    in.SeoKeywords,
		Subcategories:  []models.Category{},
		IsSubcategory:  parentID != "",
	}

	forest, ok := tree.Insert(forest, parentID, c)
	if !ok {
		return c, false, nil
	}
	if err := s.gateway.SaveCategories(forest); err != nil {
		return c, false, err
	}
	return c, true, nil
}

// UpdateCategory applies patch to the category with the given id
func (s *Service) UpdateCategory(id string, patch tree.Patch) (bool, error) {
	forest, err := s.gateway.LoadCategories()
	if err != nil {
		return false, err
	}
	forest, ok := tree.Update(forest, id, patch)
	if !ok {
		return false, nil
	}
	return true, s.gateway.SaveCategories(forest)
}

// DeleteCategory removes the category and its subtree. Name lists and seo
// texts that point at removed categories are kept.
func (s *Service) DeleteCategory(id string) (removed []string, ok bool, err error) {
	forest, err := s.gateway.LoadCategories()
	if err != nil {
		return nil, false, err
	}
	removed = append([]string{id}, tree.Descendants(forest, id)...)
	forest, ok = tree.Delete(forest, id)
	if !ok {
		return nil, false, nil
	}
	if err := s.gateway.SaveCategories(forest); err != nil {
		return nil, false, err
	}
	return removed, true, nil
}

// SetCategoryImage encodes the image at path into the category's imageUrl
func (s *Service) SetCategoryImage(id, path string) (bool, error) {
	url, err := s.encodeImage(path)
	if err != nil {
		return false, err
	}
	return s.UpdateCategory(id, tree.Patch{ImageURL: &url})
}

// ClearCategoryImage removes the category's image
func (s *Service) ClearCategoryImage(id string) (bool, error) {
	empty := ""
	return s.UpdateCategory(id, tree.Patch{ImageURL: &empty})
}

// NameListInput holds the fields of a new name list
type NameListInput struct {
	CategoryID string
	Name       string
	Names      []string
}

// NameLists returns every name list
func (s *Service) NameLists() ([]models.NameList, error) {
	return s.gateway.LoadNameLists()
}

// ListsFor returns the name lists scoped to categoryID, or the general
// pool when categoryID is empty
func (s *Service) ListsFor(categoryID string) ([]models.NameList, error) {
	lists, err := s.gateway.LoadNameLists()
	if err != nil {
		return nil, err
	}
	return registry.NewRegistry(lists, nil).ListsFor(categoryID), nil
}

// AddNameList appends a new name list
func (s *Service) AddNameList(in NameListInput) (models.NameList, error) {
	lists, err := s.gateway.LoadNameLists()
	if err != nil {
		return models.NameList{}, err
	}
	l := models.NameList{
		ID:         s.newID(),
		CategoryID: in.CategoryID,
		Name:       in.Name,
		Names:      append([]string{}, in.Names...),
	}
	r := registry.NewRegistry(lists, nil)
	r.AddNameList(l)
	if err := s.gateway.SaveNameLists(r.NameLists()); err != nil {
		return models.NameList{}, err
	}
	return l, nil
}

// UpdateNameList applies patch to the name list with the given id
func (s *Service) UpdateNameList(id string, patch registry.NameListPatch) (bool, error) {
	lists, err := s.gateway.LoadNameLists()
	if err != nil {
		return false, err
	}
	r := registry.NewRegistry(lists, nil)
	if !r.UpdateNameList(id, patch) {
		return false, nil
	}
	return true, s.gateway.SaveNameLists(r.NameLists())
}

// RemoveNameList deletes the name list with the given id
func (s *Service) RemoveNameList(id string) (bool, error) {
	lists, err := s.gateway.LoadNameLists()
	if err != nil {
		return false, err
	}
	r := registry.NewRegistry(lists, nil)
	if !r.RemoveNameList(id) {
		return false, nil
	}
	return true, s.gateway.SaveNameLists(r.NameLists())
}

// SeoTextInput holds the fields of a new seo text. An empty Position
// defaults to before-footer.
type SeoTextInput struct {
	CategoryID string
	Title      string
	Content    string
	Position   models.Position
}

// SeoTexts returns every seo text
func (s *Service) SeoTexts() ([]models.SeoText, error) {
	return s.gateway.LoadSeoTexts()
}

// AddSeoText appends a new seo text
func (s *Service) AddSeoText(in SeoTextInput) (models.SeoText, error) {
	if in.Position == "" {
		in.Position = models.PositionBeforeFooter
	}
	if !in.Position.Valid() {
		return models.SeoText{}, ErrInvalidPosition
	}
	texts, err := s.gateway.LoadSeoTexts()
	if err != nil {
		return models.SeoText{}, err
	}
	t := models.SeoText{
		ID:         s.newID(),
		CategoryID: in.CategoryID,
		Title:      in.Title,
		Content:    in.Content,
		Position:   in.Position,
	}
	r := registry.NewRegistry(nil, texts)
	r.AddSeoText(t)
	if err := s.gateway.SaveSeoTexts(r.SeoTexts()); err != nil {
		return models.SeoText{}, err
	}
	return t, nil
}

// UpdateSeoText applies patch to the seo text with the given id
func (s *Service) UpdateSeoText(id string, patch registry.SeoTextPatch) (bool, error) {
	if patch.Position != nil && !patch.Position.Valid() {
		return false, ErrInvalidPosition
	}
	texts, err := s.gateway.LoadSeoTexts()
	if err != nil {
		return false, err
	}
	r := registry.NewRegistry(nil, texts)
	if !r.UpdateSeoText(id, patch) {
		return false, nil
	}
	return true, s.gateway.SaveSeoTexts(r.SeoTexts())
}

// RemoveSeoText deletes the seo text with the given id
func (s *Service) RemoveSeoText(id string) (bool, error) {
	texts, err := s.gateway.LoadSeoTexts()
	if err != nil {
		return false, err
	}
	r := registry.NewRegistry(nil, texts)
	if !r.RemoveSeoText(id) {
		return false, nil
	}
	return true, s.gateway.SaveSeoTexts(r.SeoTexts())
}

// Generate draws count names from the lists scoped to categoryID (the
// general pool when empty). Settings are not consulted.
func (s *Service) Generate(categoryID, prefix string, count int) ([]string, error) {
	lists, err := s.ListsFor(categoryID)
	if err != nil {
		return nil, err
	}
	names, err := s.generator.Generate(lists, prefix, count)
	if err != nil {
		return nil, fmt.Errorf("failed to generate names: %w", err)
	}
	return names, nil
}
