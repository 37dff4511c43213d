package service

import (
	"errors"
	"time"

	"player-roster-backend/internal/database/models"
	apperrors "player-roster-backend/internal/errors"
	"player-roster-backend/internal/repository"

	"gorm.io/gorm"
)

// RosterEntry is one player at a club with its resolved attribute view and
// open contract period
type RosterEntry struct {
	Player       PlayerProfile     `json:"player"`
	OpenContract *ContractResponse `json:"open_contract,omitempty"`
}

// ClubRosterResponse represents a club roster
type ClubRosterResponse struct {
	Club    models.Club   `json:"club"`
	Players []RosterEntry `json:"players"`
}

// RosterService joins identity, attribute, and ledger state into per-club
// roster views
type RosterService struct {
	clubs     repository.ClubRepositoryInterface
	players   repository.PlayerRepositoryInterface
	attrs     repository.AttributeRepositoryInterface
	contracts repository.ContractRepositoryInterface
	now       func() time.Time
}

// NewRosterService creates a new roster service
func NewRosterService(clubs repository.ClubRepositoryInterface, players repository.PlayerRepositoryInterface, attrs repository.AttributeRepositoryInterface, contracts repository.ContractRepositoryInterface) *RosterService {
	return &RosterService{
		clubs:     clubs,
		players:   players,
		attrs:     attrs,
		contracts: contracts,
		now:       time.Now,
	}
}

// GetClubRoster returns every player currently assigned to the club, with
// resolved attributes and the open contract period
func (s *RosterService) GetClubRoster(clubID int64) (*ClubRosterResponse, error) {
	club, err := s.clubs.GetByID(clubID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClubNotFound
		}
		return nil, apperrors.NewStorageError("get club", err)
	}

	players, err := s.players.GetByCurrentClub(clubID)
	if err != nil {
		return nil, apperrors.NewStorageError("list club players", err)
	}

	resolver := NewAttributeService(s.players, s.attrs)
	today := DateOnly(s.now())

	entries := make([]RosterEntry, 0, len(players))
	for i := range players {
		profile, err := resolver.Resolve(players[i].ID)
		if err != nil {
			// AttributeMismatch here is a data fault on one row; it fails the
			// whole view rather than dropping the player silently.
			return nil, err
		}

		entry := RosterEntry{Player: *profile}

		open, err := s.contracts.OpenByPlayer(players[i].ID, today)
		if err != nil {
			return nil, apperrors.NewStorageError("list open contracts", err)
		}
		if len(open) > 0 {
			contract := open[0]
			endStr := ""
			resp := ContractResponse{
				ID:            contract.ID,
				PlayerID:      contract.PlayerID,
				ClubID:        contract.ClubID,
				StartDate:     contract.StartDate.Format(time.DateOnly),
				ReleaseClause: contract.ReleaseClause,
				Open:          true,
			}
			if contract.EndDate != nil {
				endStr = contract.EndDate.Format(time.DateOnly)
				resp.EndDate = &endStr
			}
			entry.OpenContract = &resp
		}

		entries = append(entries, entry)
	}

	return &ClubRosterResponse{
		Club:    *club,
		Players: entries,
	}, nil
}
