package models

// GoalkeeperAttributes is the rating set for a player whose role is goalkeeper.
type GoalkeeperAttributes struct {
	PlayerID    int64 `json:"player_id" gorm:"primaryKey"`
	Reflexes    int   `json:"reflexes"`
	Diving      int   `json:"diving"`
	Handling    int   `json:"handling"`
	Positioning int   `json:"positioning"`
	Speed       int   `json:"speed"`
}

// TableName returns the table name for GoalkeeperAttributes
func (GoalkeeperAttributes) TableName() string {
	return "goalkeeper_attributes"
}
