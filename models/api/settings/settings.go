package settingsapimodels

import "github.com/pkg/errors"

type AppSettingsView struct {
	Theme         string `json:"theme"` //light/dark/system
	MenuCollapsed bool   `json:"menu_collapsed"`
}

type AppSettingsUpdate struct {
	Theme         string `json:"theme,omitempty"`
	MenuCollapsed *bool  `json:"menu_collapsed,omitempty"`
}

func (u AppSettingsUpdate) Validate() error {
	switch u.Theme {
	case "", "light", "dark", "system":
		return nil
	}
	return errors.Errorf("unknown theme value: %s", u.Theme)
}
