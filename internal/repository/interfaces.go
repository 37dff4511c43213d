package repository

import (
	"time"

	"player-roster-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// PlayerRepositoryInterface defines the persistence operations for players
type PlayerRepositoryInterface interface {
	Create(player *models.Player) error
	GetByID(id int64) (*models.Player, error)
	List(limit, offset int) ([]models.Player, int64, error)
	Update(player *models.Player) error
	Delete(id int64) error
	Search(filter PlayerSearchFilter) ([]models.Player, error)
	GetByCurrentClub(clubID int64) ([]models.Player, error)
}

// AttributeRepositoryInterface defines the persistence operations for the two
// role-specific attribute tables
type AttributeRepositoryInterface interface {
	GetOutfield(playerID int64) (*models.OutfieldAttributes, error)
	GetGoalkeeper(playerID int64) (*models.GoalkeeperAttributes, error)
	CreateOutfield(attrs *models.OutfieldAttributes) error
	CreateGoalkeeper(attrs *models.GoalkeeperAttributes) error
	SaveOutfield(attrs *models.OutfieldAttributes) error
	SaveGoalkeeper(attrs *models.GoalkeeperAttributes) error
}

// ContractRepositoryInterface defines the persistence operations for the
// contract ledger
type ContractRepositoryInterface interface {
	Create(contract *models.ContractPeriod) error
	OpenByPlayer(playerID int64, asOf time.Time) ([]models.ContractPeriod, error)
	History(playerID int64) ([]models.ContractPeriod, error)
	List(limit, offset int) ([]models.ContractPeriod, int64, error)
	ExistsForPair(playerID, clubID int64) (bool, error)
	CloseOpen(playerID int64, asOf time.Time) (int64, error)
	CloseForClub(playerID, clubID int64, asOf time.Time) (int64, error)
}

// ClubRepositoryInterface defines the persistence operations for clubs
type ClubRepositoryInterface interface {
	GetByID(id int64) (*models.Club, error)
	List(filter ClubFilter, limit, offset int) ([]models.Club, int64, error)
}

// NationalityRepositoryInterface defines the persistence operations for nationalities
type NationalityRepositoryInterface interface {
	GetByID(id int64) (*models.Nationality, error)
	List() ([]models.Nationality, error)
}

// UserRepositoryInterface defines the persistence operations for API users
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	List() ([]models.User, error)
}
