package model

// Building represents a campus building — maps to table buildings.
//
// Capacity is the declared total-room capacity used to bound occupancy
// percentages on the dashboard; it is independent of the number of room
// rows actually registered under the building.
type Building struct {
	BuildingID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"building_id"`
	CollegeID  string `gorm:"type:uuid;not null"                             json:"college_id"`
	Name       string `gorm:"type:varchar(150);not null"                     json:"name"`
	Location   string `gorm:"type:varchar(200)"                              json:"location,omitempty"`
	Capacity   int    `gorm:"not null;default:0"                             json:"capacity"`
	BaseModel

	College *College `gorm:"foreignKey:CollegeID;references:CollegeID" json:"college,omitempty"`
	Rooms   []Room   `gorm:"foreignKey:BuildingID"                     json:"rooms,omitempty"`
}

func (Building) TableName() string { return "buildings" }
