package service

import (
	"time"

	"player-roster-backend/internal/database/models"
	"player-roster-backend/internal/repository"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// PlayerServiceInterface defines the interface for player service
type PlayerServiceInterface interface {
	Create(req *CreatePlayerRequest) (*PlayerProfile, error)
	Get(id int64) (*models.Player, error)
	List(page, pageSize int) (*PlayerListResponse, error)
	Update(id int64, req *UpdatePlayerRequest) (*PlayerProfile, error)
	Delete(id int64) error
}

// AttributeServiceInterface defines the interface for the attribute resolver
type AttributeServiceInterface interface {
	Resolve(playerID int64) (*PlayerProfile, error)
}

// ContractServiceInterface defines the interface for the contract ledger
type ContractServiceInterface interface {
	OpenContracts(playerID int64) ([]ContractResponse, error)
	History(playerID int64) ([]ContractResponse, error)
	List(page, pageSize int) (*ContractListResponse, error)
	Close(playerID, clubID int64, asOf time.Time) error
	Open(playerID, clubID int64, start time.Time, end *time.Time, releaseClause int64) (*ContractResponse, error)
}

// TransferServiceInterface defines the interface for the transfer coordinator
type TransferServiceInterface interface {
	Transfer(req *TransferRequest) (*TransferResponse, error)
	CreateInitialContract(req *InitialContractRequest) (*TransferResponse, error)
}

// SearchServiceInterface defines the interface for roster search
type SearchServiceInterface interface {
	Search(req *SearchRequest) ([]PlayerSummary, error)
}

// RosterServiceInterface defines the interface for club roster views
type RosterServiceInterface interface {
	GetClubRoster(clubID int64) (*ClubRosterResponse, error)
}

// ClubServiceInterface defines the interface for club service
type ClubServiceInterface interface {
	Get(id int64) (*models.Club, error)
	List(filter repository.ClubFilter, page, pageSize int) (*ClubListResponse, error)
}

// NationalityServiceInterface defines the interface for nationality service
type NationalityServiceInterface interface {
	Get(id int64) (*models.Nationality, error)
	List() ([]models.Nationality, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	List() ([]UserResponse, error)
}
