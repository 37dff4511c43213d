package models

import (
	"time"
)

// ContractPeriod is one club-assignment period in the append-mostly ledger.
// EndDate == nil, or an EndDate that has not yet passed, marks the period as
// open; a player has at most one open period at any time. The (player, club)
// pair is unique, so re-signing with the same club requires closing and
// reopening rather than a second concurrent row.
type ContractPeriod struct {
	ID            int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	PlayerID      int64      `json:"player_id" gorm:"not null;uniqueIndex:idx_contract_player_club"`
	ClubID        int64      `json:"club_id" gorm:"not null;uniqueIndex:idx_contract_player_club"`
	StartDate     time.Time  `json:"start_date" gorm:"not null"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	ReleaseClause int64      `json:"release_clause"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// Relationships
	Club *Club `json:"club,omitempty" gorm:"foreignKey:ClubID"`
}

// TableName returns the table name for ContractPeriod
func (ContractPeriod) TableName() string {
	return "contract_periods"
}

// IsOpen reports whether the period is the player's active club assignment
// as of the given date
func (c *ContractPeriod) IsOpen(asOf time.Time) bool {
	return c.EndDate == nil || !c.EndDate.Before(asOf)
}
