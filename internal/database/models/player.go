package models

import (
	"time"
)

// PlayerRole classifies a player as outfield or goalkeeper. The role is fixed
// at creation and selects which attribute table holds the player's ratings.
type PlayerRole string

const (
	PlayerRoleOutfield   PlayerRole = "outfield"
	PlayerRoleGoalkeeper PlayerRole = "goalkeeper"
)

// Valid reports whether the role is one of the two known kinds
func (r PlayerRole) Valid() bool {
	return r == PlayerRoleOutfield || r == PlayerRoleGoalkeeper
}

// Player is the shared identity for both outfield players and goalkeepers.
// CurrentClubID mirrors the club of the player's open contract period; the
// transfer coordinator is the only writer allowed to move it.
type Player struct {
	ID            int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	Name          string     `json:"name" gorm:"size:255;not null;index"`
	DateOfBirth   *time.Time `json:"date_of_birth,omitempty"`
	OverallRating int        `json:"overall_rating"`
	MarketValue   int64      `json:"market_value"`
	NationalityID *int64     `json:"nationality_id,omitempty" gorm:"index"`
	CurrentClubID *int64     `json:"current_club_id,omitempty" gorm:"index"`
	Role          PlayerRole `json:"role" gorm:"type:varchar(20);not null"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// Relationships
	Nationality *Nationality          `json:"nationality,omitempty" gorm:"foreignKey:NationalityID"`
	CurrentClub *Club                 `json:"current_club,omitempty" gorm:"foreignKey:CurrentClubID"`
	Outfield    *OutfieldAttributes   `json:"outfield,omitempty" gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE"`
	Goalkeeper  *GoalkeeperAttributes `json:"goalkeeper,omitempty" gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE"`
	Contracts   []ContractPeriod      `json:"contracts,omitempty" gorm:"foreignKey:PlayerID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Player
func (Player) TableName() string {
	return "players"
}
