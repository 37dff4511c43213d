package models

// Club represents a club a player can be contracted to.
// NationalityID is the club's home country, not an ownership relation.
type Club struct {
	ID            int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	NationalityID *int64 `json:"nationality_id,omitempty" gorm:"index"`
	LeagueName    string `json:"league_name" gorm:"size:255"`
	ClubName      string `json:"club_name" gorm:"size:255;not null;index"`

	// Relationships
	Nationality *Nationality `json:"nationality,omitempty" gorm:"foreignKey:NationalityID"`
}

// TableName returns the table name for Club
func (Club) TableName() string {
	return "clubs"
}
