package dto

// CreateCollegeRequest / UpdateCollegeRequest share one shape.
type CollegeRequest struct {
	Name        string `json:"name" binding:"required,max=150"`
	Dean        string `json:"dean" binding:"max=100"`
	Description string `json:"description" binding:"max=500"`
}

type BuildingRequest struct {
	CollegeID string `json:"college_id" binding:"required,uuid"`
	Name      string `json:"name" binding:"required,max=150"`
	Location  string `json:"location" binding:"max=200"`
	Capacity  int    `json:"capacity" binding:"gte=0"`
}

type RoomRequest struct {
	BuildingID  string `json:"building_id" binding:"required,uuid"`
	Name        string `json:"name" binding:"required,max=100"`
	Capacity    int    `json:"capacity" binding:"gte=0"`
	Type        string `json:"type" binding:"omitempty,oneof=lecture laboratory office"`
	Description string `json:"description" binding:"max=300"`
}

type SettingRequest struct {
	Key   string `json:"key" binding:"required,max=100"`
	Value string `json:"value" binding:"required"`
}
