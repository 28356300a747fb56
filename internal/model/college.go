package model

// College represents an academic college — maps to table colleges.
type College struct {
	CollegeID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"college_id"`
	Name        string `gorm:"type:varchar(150);not null"                     json:"name"`
	Dean        string `gorm:"type:varchar(100)"                              json:"dean"`
	Description string `gorm:"type:varchar(500)"                              json:"description,omitempty"`
	BaseModel

	Buildings []Building `gorm:"foreignKey:CollegeID" json:"buildings,omitempty"`
}

func (College) TableName() string { return "colleges" }
