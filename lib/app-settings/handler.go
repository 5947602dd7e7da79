package appsettings

import (
	"strconv"

	"onboarding-checklist-backend/db"
	appsettingsstore "onboarding-checklist-backend/lib/app-settings/store"
	initchecker "onboarding-checklist-backend/lib/utils/init-checker"
	settingsapimodels "onboarding-checklist-backend/models/api/settings"
)

const (
	themeCode         = "ui.theme"
	menuCollapsedCode = "ui.menu_collapsed"

	defaultTheme = "system"
)

type Provider interface {
	Get() (settingsapimodels.AppSettingsView, error)
	Update(upd settingsapimodels.AppSettingsUpdate) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: appsettingsstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store appsettingsstore.Provider
}

// Get returns the persisted admin UI preferences, falling back to defaults
// when a value was never set.
func (i impl) Get() (settingsapimodels.AppSettingsView, error) {
	theme, err := i.store.GetValueByCode(themeCode)
	if err != nil {
		return settingsapimodels.AppSettingsView{}, err
	}
	if theme == "" {
		theme = defaultTheme
	}
	collapsedValue, err := i.store.GetValueByCode(menuCollapsedCode)
	if err != nil {
		return settingsapimodels.AppSettingsView{}, err
	}
	collapsed, _ := strconv.ParseBool(collapsedValue)
	return settingsapimodels.AppSettingsView{
		Theme:         theme,
		MenuCollapsed: collapsed,
	}, nil
}

func (i impl) Update(upd settingsapimodels.AppSettingsUpdate) error {
	if upd.Theme != "" {
		if err := i.store.Set(themeCode, upd.Theme); err != nil {
			return err
		}
	}
	if upd.MenuCollapsed != nil {
		if err := i.store.Set(menuCollapsedCode, strconv.FormatBool(*upd.MenuCollapsed)); err != nil {
			return err
		}
	}
	return nil
}
