package service

import (
	"errors"
	"time"

	"player-roster-backend/internal/database/models"
	apperrors "player-roster-backend/internal/errors"
	"player-roster-backend/internal/repository"

	"gorm.io/gorm"
)

// PlayerProfile is the resolved view of a player: identity plus exactly one
// of the two attribute sets. Callers must branch on Role; the unmatched
// attribute pointer is always nil.
type PlayerProfile struct {
	ID            int64                        `json:"id"`
	Name          string                       `json:"name"`
	DateOfBirth   *string                      `json:"date_of_birth,omitempty"`
	OverallRating int                          `json:"overall_rating"`
	MarketValue   int64                        `json:"market_value"`
	NationalityID *int64                       `json:"nationality_id,omitempty"`
	CurrentClubID *int64                       `json:"current_club_id,omitempty"`
	Role          models.PlayerRole            `json:"role"`
	Outfield      *models.OutfieldAttributes   `json:"outfield,omitempty"`
	Goalkeeper    *models.GoalkeeperAttributes `json:"goalkeeper,omitempty"`
}

// AttributeService resolves a player identity to its role-specific view
type AttributeService struct {
	players repository.PlayerRepositoryInterface
	attrs   repository.AttributeRepositoryInterface
}

// NewAttributeService creates a new attribute service
func NewAttributeService(players repository.PlayerRepositoryInterface, attrs repository.AttributeRepositoryInterface) *AttributeService {
	return &AttributeService{
		players: players,
		attrs:   attrs,
	}
}

// Resolve determines the player's variant from attribute-row presence. The
// goalkeeper table is probed first; absence implies outfield. Presence must
// agree with the stored role flag, and exactly one row must exist; any other
// combination is a data-integrity fault surfaced as AttributeMismatch, never
// silently resolved.
func (s *AttributeService) Resolve(playerID int64) (*PlayerProfile, error) {
	player, err := s.players.GetByID(playerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, apperrors.NewStorageError("get player", err)
	}

	goalkeeper, err := s.attrs.GetGoalkeeper(playerID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewStorageError("get goalkeeper attributes", err)
	}
	outfield, err := s.attrs.GetOutfield(playerID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewStorageError("get outfield attributes", err)
	}

	if (goalkeeper == nil) == (outfield == nil) {
		// both or neither
		return nil, apperrors.ErrAttributeMismatch
	}

	profile := s.toProfile(player)
	if goalkeeper != nil {
		if player.Role != models.PlayerRoleGoalkeeper {
			return nil, apperrors.ErrAttributeMismatch
		}
		profile.Role = models.PlayerRoleGoalkeeper
		profile.Goalkeeper = goalkeeper
		return profile, nil
	}

	if player.Role != models.PlayerRoleOutfield {
		return nil, apperrors.ErrAttributeMismatch
	}
	profile.Role = models.PlayerRoleOutfield
	profile.Outfield = outfield
	return profile, nil
}

func (s *AttributeService) toProfile(player *models.Player) *PlayerProfile {
	profile := &PlayerProfile{
		ID:            player.ID,
		Name:          player.Name,
		OverallRating: player.OverallRating,
		MarketValue:   player.MarketValue,
		NationalityID: player.NationalityID,
		CurrentClubID: player.CurrentClubID,
	}
	if player.DateOfBirth != nil {
		dob := player.DateOfBirth.Format(time.DateOnly)
		profile.DateOfBirth = &dob
	}
	return profile
}
