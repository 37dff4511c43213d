package models

// OutfieldAttributes is the rating set for a player whose role is outfield.
// Exactly one of OutfieldAttributes or GoalkeeperAttributes exists per player.
type OutfieldAttributes struct {
	PlayerID  int64 `json:"player_id" gorm:"primaryKey"`
	Pace      int   `json:"pace"`
	Shooting  int   `json:"shooting"`
	Passing   int   `json:"passing"`
	Dribbling int   `json:"dribbling"`
	Defending int   `json:"defending"`
	Physical  int   `json:"physical"`
}

// TableName returns the table name for OutfieldAttributes
func (OutfieldAttributes) TableName() string {
	return "outfield_attributes"
}
