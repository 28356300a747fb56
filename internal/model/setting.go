package model

// Setting is a site-wide key/value configuration row — maps to table settings.
// Holds console content such as the site title, contact details and the
// footer text edited from the settings page.
type Setting struct {
	SettingID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"setting_id"`
	Key       string `gorm:"type:varchar(100);not null;uniqueIndex"         json:"key"`
	Value     string `gorm:"type:text"                                      json:"value"`
	BaseModel
}

func (Setting) TableName() string { return "settings" }
