package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/pankajredekar/namecraft/internal/models"
)

// decoder reads persisted JSON field by field. A field of the wrong type
// takes its default and is recorded as a problem; absent fields default
// silently so data written by an older schema still loads.
type decoder struct {
	key      string
	problems []string
}

type object map[string]json.RawMessage

func (d *decoder) problemf(format string, args ...interface{}) {
	d.problems = append(d.problems, fmt.Sprintf(format, args...))
}

func (d *decoder) array(raw json.RawMessage, path string) []json.RawMessage {
	if isNull(raw) {
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		d.problemf("%s: expected array", path)
		return nil
	}
	return items
}

func (d *decoder) object(raw json.RawMessage, path string) (object, bool) {
	var o object
	if err := json.Unmarshal(raw, &o); err != nil || o == nil {
		d.problemf("%s: expected object", path)
		return nil, false
	}
	return o, true
}

func (d *decoder) str(o object, field, path, def string) string {
	raw, ok := o[field]
	if !ok || isNull(raw) {
		return def
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		d.problemf("%s.%s: expected string", path, field)
		return def
	}
	return s
}

func (d *decoder) boolean(o object, field, path string) bool {
	raw, ok := o[field]
	if !ok || isNull(raw) {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		d.problemf("%s.%s: expected boolean", path, field)
		return false
	}
	return b
}

func (d *decoder) integer(o object, field, path string, def int) int {
	raw, ok := o[field]
	if !ok || isNull(raw) {
		return def
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		d.problemf("%s.%s: expected integer", path, field)
		return def
	}
	return n
}

// strings reads a string array, skipping elements that are not strings
func (d *decoder) strings(o object, field, path string) []string {
	out := []string{}
	raw, ok := o[field]
	if !ok {
		return out
	}
	for i, item := range d.array(raw, path+"."+field) {
		var s string
		if isNull(item) || json.Unmarshal(item, &s) != nil {
			d.problemf("%s.%s[%d]: expected string", path, field, i)
			continue
		}
		out = append(out, s)
	}
	return out
}

func (d *decoder) categories(raw json.RawMessage, path string) []models.Category {
	out := []models.Category{}
	for i, item := range d.array(raw, path) {
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		o, ok := d.object(item, itemPath)
		if !ok {
			continue
		}
		out = append(out, models.Category{
			ID:             d.str(o, "id", itemPath, ""),
			Name:           d.str(o, "name", itemPath, ""),
			Description:    d.str(o, "description", itemPath, ""),
			ImageURL:       d.str(o, "imageUrl", itemPath, ""),
			SeoTitle:       d.str(o, "seoTitle", itemPath, ""),
			SeoDescription: d.str(o, "seoDescription", itemPath, ""),
			SeoKeywords:    d.str(o, "seoKeywords", itemPath, ""),
			Subcategories:  d.categories(o["subcategories"], itemPath+".subcategories"),
			IsSubcategory:  d.boolean(o, "isSubcategory", itemPath),
		})
	}
	return out
}

func (d *decoder) nameLists(raw json.RawMessage) []models.NameList {
	out := []models.NameList{}
	for i, item := range d.array(raw, d.key) {
		path := fmt.Sprintf("%s[%d]", d.key, i)
		o, ok := d.object(item, path)
		if !ok {
			continue
		}
		out = append(out, models.NameList{
			ID:         d.str(o, "id", path, ""),
			CategoryID: d.str(o, "categoryId", path, ""),
			Name:       d.str(o, "name", path, ""),
			Names:      d.strings(o, "names", path),
		})
	}
	return out
}

func (d *decoder) seoTexts(raw json.RawMessage) []models.SeoText {
	out := []models.SeoText{}
	for i, item := range d.array(raw, d.key) {
		path := fmt.Sprintf("%s[%d]", d.key, i)
		o, ok := d.object(item, path)
		if !ok {
			continue
		}
		pos, valid := models.ParsePosition(d.str(o, "position", path, string(models.PositionBeforeFooter)))
		if !valid {
			d.problemf("%s.position: unknown position %q", path, pos)
			pos = models.PositionBeforeFooter
		}
		out = append(out, models.SeoText{
			ID:         d.str(o, "id", path, ""),
			CategoryID: d.str(o, "categoryId", path, ""),
			Title:      d.str(o, "title", path, ""),
			Content:    d.str(o, "content", path, ""),
			Position:   pos,
		})
	}
	return out
}

func (d *decoder) settings(raw json.RawMessage) models.AdminSettings {
	s := models.DefaultSettings()
	o, ok := d.object(raw, d.key)
	if !ok {
		return s
	}
	path := d.key

	s.SiteTitle = d.str(o, "siteTitle", path, s.SiteTitle)
	s.LogoURL = d.str(o, "logoUrl", path, s.LogoURL)
	s.HomeSeoTitle = d.str(o, "homeSeoTitle", path, s.HomeSeoTitle)
	s.HomeSeoDescription = d.str(o, "homeSeoDescription", path, s.HomeSeoDescription)
	s.HomeSeoKeywords = d.str(o, "homeSeoKeywords", path, s.HomeSeoKeywords)

	if raw, ok := o["menuItems"]; ok {
		s.MenuItems = []models.MenuItem{}
		for i, item := range d.array(raw, path+".menuItems") {
			itemPath := fmt.Sprintf("%s.menuItems[%d]", path, i)
			mo, ok := d.object(item, itemPath)
			if !ok {
				continue
			}
			s.MenuItems = append(s.MenuItems, models.MenuItem{
				ID:    d.str(mo, "id", itemPath, ""),
				Label: d.str(mo, "label", itemPath, ""),
				URL:   d.str(mo, "url", itemPath, ""),
			})
		}
	}

	if raw, ok := o["categories"]; ok {
		s.Categories = d.categories(raw, path+".categories")
	}

	if raw, ok := o["nameGenerationRules"]; ok && !isNull(raw) {
		rulesPath := path + ".nameGenerationRules"
		if ro, ok := d.object(raw, rulesPath); ok {
			rules := &s.NameGenerationRules
			rules.MinLength = d.integer(ro, "minLength", rulesPath, rules.MinLength)
			rules.MaxLength = d.integer(ro, "maxLength", rulesPath, rules.MaxLength)
			if _, ok := ro["customPrefixes"]; ok {
				rules.CustomPrefixes = d.strings(ro, "customPrefixes", rulesPath)
			}
			if _, ok := ro["customSuffixes"]; ok {
				rules.CustomSuffixes = d.strings(ro, "customSuffixes", rulesPath)
			}
		}
	}

	return s
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}
