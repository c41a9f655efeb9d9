package models

// Category is a node in the naming taxonomy. Subcategories are ordered and
// IsSubcategory is fixed at creation time.
type Category struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Description    string     `json:"description"`
	ImageURL       string     `json:"imageUrl,omitempty"`
	SeoTitle       string     `json:"seoTitle"`
	SeoDescription string     `json:"seoDescription"`
	SeoKeywords    string     `json:"seoKeywords"`
	Subcategories  []Category `json:"subcategories"`
	IsSubcategory  bool       `json:"isSubcategory"`
}

// NameList is a named collection of candidate names. An empty CategoryID
// places the list in the general pool.
type NameList struct {
	ID         string   `json:"id"`
	CategoryID string   `json:"categoryId"`
	Name       string   `json:"name"`
	Names      []string `json:"names"`
}

// Position is where a SeoText block is rendered on a page.
type Position string

const (
	PositionBeforeFooter Position = "before-footer"
	PositionAfterHeader  Position = "after-header"
)

// Valid reports whether p is one of the known positions
func (p Position) Valid() bool {
	return p == PositionBeforeFooter || p == PositionAfterHeader
}

// ParsePosition converts operator input to a Position
func ParsePosition(s string) (Position, bool) {
	p := Position(s)
	return p, p.Valid()
}

// SeoText is a positioned block of descriptive text. An empty CategoryID
// scopes it to the homepage.
type SeoText struct {
	ID         string   `json:"id"`
	CategoryID string   `json:"categoryId"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Position   Position `json:"position"`
}

// MenuItem is a header navigation link
type MenuItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// NameGenerationRules is persisted with the settings but the generator does
// not read it.
type NameGenerationRules struct {
	MinLength      int      `json:"minLength"`
	MaxLength      int      `json:"maxLength"`
	CustomPrefixes []string `json:"customPrefixes"`
	CustomSuffixes []string `json:"customSuffixes"`
}

// AdminSettings holds site-wide settings
type AdminSettings struct {
	SiteTitle           string              `json:"siteTitle"`
	LogoURL             string              `json:"logoUrl"`
	MenuItems           []MenuItem          `json:"menuItems"`
	HomeSeoTitle        string              `json:"homeSeoTitle"`
	HomeSeoDescription  string              `json:"homeSeoDescription"`
	HomeSeoKeywords     string              `json:"homeSeoKeywords"`
	Categories          []Category          `json:"categories"`
	NameGenerationRules NameGenerationRules `json:"nameGenerationRules"`
}

// DefaultSettings returns the settings used on first run
func DefaultSettings() AdminSettings {
	return AdminSettings{
		SiteTitle:          "NameCraft Generator",
		LogoURL:            "",
		MenuItems:          []MenuItem{},
		HomeSeoTitle:       "NameCraft - Generate Unique Names",
		HomeSeoDescription: "Generate unique and creative names for any purpose",
		HomeSeoKeywords:    "name generator, username generator, character names",
		Categories:         []Category{},
		NameGenerationRules: NameGenerationRules{
			MinLength:      3,
			MaxLength:      20,
			CustomPrefixes: []string{},
			CustomSuffixes: []string{},
		},
	}
}
