package testutils

import (
	"time"

	"player-roster-backend/internal/database/models"
)

// NationalityFactory provides methods to create test Nationality data
type NationalityFactory struct{}

// NewNationalityFactory creates a new NationalityFactory
func NewNationalityFactory() *NationalityFactory {
	return &NationalityFactory{}
}

// Create creates a test Nationality with default values
func (f *NationalityFactory) Create() *models.Nationality {
	return &models.Nationality{
		Name: "Testland",
	}
}

// WithName sets a custom name for the nationality
func (f *NationalityFactory) WithName(name string) *models.Nationality {
	n := f.Create()
	n.Name = name
	return n
}

// ClubFactory provides methods to create test Club data
type ClubFactory struct{}

// NewClubFactory creates a new ClubFactory
func NewClubFactory() *ClubFactory {
	return &ClubFactory{}
}

// Create creates a test Club with default values
func (f *ClubFactory) Create() *models.Club {
	return &models.Club{
		LeagueName: "Test League",
		ClubName:   "Test FC",
	}
}

// WithName sets a custom club name
func (f *ClubFactory) WithName(name string) *models.Club {
	club := f.Create()
	club.ClubName = name
	return club
}

// WithNationality sets the nationality for the club
func (f *ClubFactory) WithNationality(nationalityID int64) *models.Club {
	club := f.Create()
	club.NationalityID = &nationalityID
	return club
}

// PlayerFactory provides methods to create test Player data
type PlayerFactory struct{}

// NewPlayerFactory creates a new PlayerFactory
func NewPlayerFactory() *PlayerFactory {
	return &PlayerFactory{}
}

// Create creates a test outfield Player with default values
func (f *PlayerFactory) Create() *models.Player {
	dob := time.Date(2000, 1, 15, 0, 0, 0, 0, time.UTC)
	return &models.Player{
		Name:          "Test Player",
		DateOfBirth:   &dob,
		OverallRating: 75,
		MarketValue:   1_000_000,
		Role:          models.PlayerRoleOutfield,
	}
}

// Goalkeeper creates a test goalkeeper Player
func (f *PlayerFactory) Goalkeeper() *models.Player {
	p := f.Create()
	p.Name = "Test Keeper"
	p.Role = models.PlayerRoleGoalkeeper
	return p
}

// WithName sets a custom name for the player
func (f *PlayerFactory) WithName(name string) *models.Player {
	p := f.Create()
	p.Name = name
	return p
}

// WithClub sets the player's current club
func (f *PlayerFactory) WithClub(clubID int64) *models.Player {
	p := f.Create()
	p.CurrentClubID = &clubID
	return p
}

// OutfieldAttributes creates a default outfield attribute row for the player
func (f *PlayerFactory) OutfieldAttributes(playerID int64) *models.OutfieldAttributes {
	return &models.OutfieldAttributes{
		PlayerID:  playerID,
		Pace:      80,
		Shooting:  70,
		Passing:   72,
		Dribbling: 74,
		Defending: 55,
		Physical:  68,
	}
}

// GoalkeeperAttributes creates a default goalkeeper attribute row for the player
func (f *PlayerFactory) GoalkeeperAttributes(playerID int64) *models.GoalkeeperAttributes {
	return &models.GoalkeeperAttributes{
		PlayerID:    playerID,
		Reflexes:    82,
		Diving:      79,
		Handling:    76,
		Positioning: 80,
		Speed:       50,
	}
}

// ContractFactory provides methods to create test contract periods
type ContractFactory struct{}

// NewContractFactory creates a new ContractFactory
func NewContractFactory() *ContractFactory {
	return &ContractFactory{}
}

// Open creates an open contract period starting at the given date
func (f *ContractFactory) Open(playerID, clubID int64, start time.Time) *models.ContractPeriod {
	return &models.ContractPeriod{
		PlayerID:      playerID,
		ClubID:        clubID,
		StartDate:     start,
		ReleaseClause: 5_000_000,
	}
}

// Closed creates a contract period closed at the given end date
func (f *ContractFactory) Closed(playerID, clubID int64, start, end time.Time) *models.ContractPeriod {
	c := f.Open(playerID, clubID, start)
	c.EndDate = &end
	return c
}

// FactorySet provides access to all factories
type FactorySet struct {
	Nationality *NationalityFactory
	Club        *ClubFactory
	Player      *PlayerFactory
	Contract    *ContractFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Nationality: NewNationalityFactory(),
		Club:        NewClubFactory(),
		Player:      NewPlayerFactory(),
		Contract:    NewContractFactory(),
	}
}
