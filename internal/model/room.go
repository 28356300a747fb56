package model

// Room represents a bookable room — maps to table rooms.
type Room struct {
	RoomID      string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"room_id"`
	BuildingID  string `gorm:"type:uuid;not null"                             json:"building_id"`
	Name        string `gorm:"type:varchar(100);not null"                     json:"name"`
	Capacity    int    `gorm:"not null;default:0"                             json:"capacity"`
	Type        string `gorm:"type:varchar(50)"                               json:"type,omitempty"` // lecture | laboratory | office
	Description string `gorm:"type:varchar(300)"                              json:"description,omitempty"`
	BaseModel

	Building *Building `gorm:"foreignKey:BuildingID;references:BuildingID" json:"building,omitempty"`
	Bookings []Booking `gorm:"foreignKey:RoomID"                           json:"bookings,omitempty"`
}

func (Room) TableName() string { return "rooms" }
