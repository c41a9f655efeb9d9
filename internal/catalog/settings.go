package catalog

import (
	"github.com/pankajredekar/namecraft/internal/models"
)

// SettingsPatch carries a partial settings update. Nil fields are left
// unchanged.
type SettingsPatch struct {
	SiteTitle          *string
	HomeSeoTitle       *string
	HomeSeoDescription *string
	HomeSeoKeywords    *string
	MinLength          *int
	MaxLength          *int
	CustomPrefixes     []string
	CustomSuffixes     []string
}

// Empty reports whether the patch changes nothing
func (p SettingsPatch) Empty() bool {
	return p.SiteTitle == nil && p.HomeSeoTitle == nil && p.HomeSeoDescription == nil &&
		p.HomeSeoKeywords == nil && p.MinLength == nil && p.MaxLength == nil &&
		p.CustomPrefixes == nil && p.CustomSuffixes == nil
}

// MenuItemPatch carries a partial menu item update
type MenuItemPatch struct {
	Label *string
	URL   *string
}

// Settings returns the persisted settings or the defaults
func (s *Service) Settings() (models.AdminSettings, error) {
	return s.gateway.LoadSettings()
}

func (s *Service) modifySettings(fn func(*models.AdminSettings) bool) (bool, error) {
	settings, err := s.gateway.LoadSettings()
	if err != nil {
		return false, err
	}
	if !fn(&settings) {
		return false, nil
	}
	return true, s.gateway.SaveSettings(settings)
}

// UpdateSettings applies patch to the settings
func (s *Service) UpdateSettings(patch SettingsPatch) error {
	_, err := s.modifySettings(func(st *models.AdminSettings) bool {
		if patch.SiteTitle != nil {
			st.SiteTitle = *patch.SiteTitle
		}
		if patch.HomeSeoTitle != nil {
			st.HomeSeoTitle = *patch.HomeSeoTitle
		}
		if patch.HomeSeoDescription != nil {
			st.HomeSeoDescription = *patch.HomeSeoDescription
		}
		if patch.HomeSeoKeywords != nil {
			st.HomeSeoKeywords = *patch.HomeSeoKeywords
		}
		// Stored only; generation ignores these rules.
		rules := &st.NameGenerationRules
		if patch.MinLength != nil {
			rules.MinLength = *patch.MinLength
		}
		if patch.MaxLength != nil {
			rules.MaxLength = *patch.MaxLength
		}
		if patch.CustomPrefixes != nil {
			rules.CustomPrefixes = append([]string{}, patch.CustomPrefixes...)
		}
		if patch.CustomSuffixes != nil {
			rules.CustomSuffixes = append([]string{}, patch.CustomSuffixes...)
		}
		return true
	})
	return err
}

// SetLogo encodes the image at path into logoUrl
func (s *Service) SetLogo(path string) error {
	url, err := s.encodeImage(path)
	if err != nil {
		return err
	}
	_, err = s.modifySettings(func(st *models.AdminSettings) bool {
		st.LogoURL = url
		return true
	})
	return err
}

// ClearLogo removes the logo so the site title is shown instead
func (s *Service) ClearLogo() error {
	_, err := s.modifySettings(func(st *models.AdminSettings) bool {
		st.LogoURL = ""
		return true
	})
	return err
}

// AddMenuItem appends a header link
func (s *Service) AddMenuItem(label, url string) (models.MenuItem, error) {
	item := models.MenuItem{ID: s.newID(), Label: label, URL: url}
	_, err := s.modifySettings(func(st *models.AdminSettings) bool {
		st.MenuItems = append(st.MenuItems, item)
		return true
	})
	if err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

// UpdateMenuItem applies patch to the menu item with the given id
func (s *Service) UpdateMenuItem(id string, patch MenuItemPatch) (bool, error) {
	return s.modifySettings(func(st *models.AdminSettings) bool {
		for i := range st.MenuItems {
			if st.MenuItems[i].ID != id {
				continue
			}
			if patch.Label != nil {
				st.MenuItems[i].Label = *patch.Label
			}
			if patch.URL != nil {
				st.MenuItems[i].URL = *patch.URL
			}
			return true
		}
		return false
	})
}

// RemoveMenuItem deletes the menu item with the given id
func (s *Service) RemoveMenuItem(id string) (bool, error) {
	return s.modifySettings(func(st *models.AdminSettings) bool {
		for i, item := range st.MenuItems {
			if item.ID == id {
				st.MenuItems = append(st.MenuItems[:i:i], st.MenuItems[i+1:]...)
				return true
			}
		}
		return false
	})
}
