// Package persistence converts the category forest, the name list and seo
// text collections, and the admin settings to and from JSON text in the
// local key/value store. It is the only package that touches storage.
//
// Loads never fail because of the stored data itself: an absent key yields
// the empty default, and malformed values are decoded field by field with
// defaults for anything unreadable. Only storage errors are returned.
package persistence

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/pankajredekar/namecraft/internal/models"
	"github.com/pankajredekar/namecraft/internal/tree"
)

// Keys of the persisted values
const (
	KeyCategories    = "categories"
	KeyNameLists     = "nameLists"
	KeySeoTexts      = "seoTexts"
	KeyAdminSettings = "adminSettings"
)

// KV is the storage the gateway reads and writes whole values through
type KV interface {
	Get(key string) (string, bool, error)
	Put(key, value string) error
}

// Gateway loads and saves the persisted values
type Gateway struct {
	kv     KV
	logger *slog.Logger
}

// NewGateway creates a gateway. A nil logger uses slog.Default().
func NewGateway(kv KV, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{kv: kv, logger: logger}
}

// Save writes value under key
func (g *Gateway) Save(key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := g.kv.Put(key, string(data)); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// Load returns the raw JSON stored under key, or nil when absent
func (g *Gateway) Load(key string) (json.RawMessage, error) {
	value, ok, err := g.kv.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if !ok {
		return nil, nil
	}
	raw := bytes.TrimSpace([]byte(value))
	if len(raw) == 0 {
		return nil, nil
	}
	return raw, nil
}

func (g *Gateway) report(d *decoder) {
	if len(d.problems) == 0 {
		return
	}
	g.logger.Warn("stored value partially defaulted",
		"key", d.key,
		"problems", len(d.problems),
		"first", d.problems[0],
	)
	for _, p := range d.problems {
		g.logger.Debug("stored value problem", "key", d.key, "detail", p)
	}
}

// LoadCategories returns the persisted forest, or an empty forest
func (g *Gateway) LoadCategories() ([]models.Category, error) {
	raw, err := g.Load(KeyCategories)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []models.Category{}, nil
	}
	d := &decoder{key: KeyCategories}
	forest := d.categories(raw, KeyCategories)
	g.report(d)
	return forest, nil
}

// SaveCategories writes the whole forest
func (g *Gateway) SaveCategories(forest []models.Category) error {
	return g.Save(KeyCategories, tree.Clone(forest))
}

// LoadNameLists returns the persisted name lists, or an empty collection
func (g *Gateway) LoadNameLists() ([]models.NameList, error) {
	raw, err := g.Load(KeyNameLists)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []models.NameList{}, nil
	}
	d := &decoder{key: KeyNameLists}
	lists := d.nameLists(raw)
	g.report(d)
	return lists, nil
}

// SaveNameLists writes the whole name list collection
func (g *Gateway) SaveNameLists(lists []models.NameList) error {
	out := make([]models.NameList, len(lists))
	for i, l := range lists {
		out[i] = l
		if out[i].Names == nil {
			out[i].Names = []string{}
		}
	}
	return g.Save(KeyNameLists, out)
}

// LoadSeoTexts returns the persisted seo texts, or an empty collection
func (g *Gateway) LoadSeoTexts() ([]models.SeoText, error) {
	raw, err := g.Load(KeySeoTexts)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []models.SeoText{}, nil
	}
	d := &decoder{key: KeySeoTexts}
	texts := d.seoTexts(raw)
	g.report(d)
	return texts, nil
}

// SaveSeoTexts writes the whole seo text collection
func (g *Gateway) SaveSeoTexts(texts []models.SeoText) error {
	if texts == nil {
		texts = []models.SeoText{}
	}
	return g.Save(KeySeoTexts, texts)
}

// LoadSettings returns the persisted settings, or the defaults
func (g *Gateway) LoadSettings() (models.AdminSettings, error) {
	raw, err := g.Load(KeyAdminSettings)
	if err != nil {
		return models.AdminSettings{}, err
	}
	if raw == nil {
		return models.DefaultSettings(), nil
	}
	d := &decoder{key: KeyAdminSettings}
	s := d.settings(raw)
	g.report(d)
	return s, nil
}

// SaveSettings writes the whole settings object
func (g *Gateway) SaveSettings(s models.AdminSettings) error {
	if s.MenuItems == nil {
		s.MenuItems = []models.MenuItem{}
	}
	s.Categories = tree.Clone(s.Categories)
	rules := &s.NameGenerationRules
	if rules.CustomPrefixes == nil {
		rules.CustomPrefixes = []string{}
	}
	if rules.CustomSuffixes == nil {
		rules.CustomSuffixes = []string{}
	}
	return g.Save(KeyAdminSettings, s)
}
