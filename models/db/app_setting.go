package dbmodels

// AppSetting is one admin UI preference (theme, menu state) persisted
// as key/value. Browser-session concerns stay on the client.
type AppSetting struct {
	BaseModel
	Code  string `gorm:"type:varchar(100);uniqueIndex"`
	Value string `gorm:"type:text"`
}
