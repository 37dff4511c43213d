package service

import (
	"player-roster-backend/internal/database/models"
	apperrors "player-roster-backend/internal/errors"
	"player-roster-backend/internal/repository"
)

// SearchRequest describes a filtered roster search. NamePrefix matches as a
// substring anywhere in the name. Nil NationalityID/ClubID means no filter on
// that dimension; a zero sentinel is never used.
type SearchRequest struct {
	NamePrefix         string
	NationalityID      *int64
	ClubID             *int64
	IncludeOutfield    bool
	IncludeGoalkeepers bool
	Limit              int
}

// PlayerSummary is one search hit
type PlayerSummary struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	Role          models.PlayerRole `json:"role"`
	OverallRating int               `json:"overall_rating"`
	MarketValue   int64             `json:"market_value"`
	NationalityID *int64            `json:"nationality_id,omitempty"`
	CurrentClubID *int64            `json:"current_club_id,omitempty"`
}

// SearchService builds filtered queries over the unified player view. When
// both role categories are enabled the result is the concatenation of two
// independently-limited queries, outfield first; there is no global ranking
// across categories.
type SearchService struct {
	players       repository.PlayerRepositoryInterface
	categoryLimit int
}

// NewSearchService creates a new search service. categoryLimit caps each
// role category's result set.
func NewSearchService(players repository.PlayerRepositoryInterface, categoryLimit int) *SearchService {
	return &SearchService{
		players:       players,
		categoryLimit: categoryLimit,
	}
}

// Search runs one capped query per enabled role category and concatenates
// the results. Disabling both categories yields an empty slice.
func (s *SearchService) Search(req *SearchRequest) ([]PlayerSummary, error) {
	limit := req.Limit
	if limit < 1 || limit > s.categoryLimit {
		limit = s.categoryLimit
	}

	summaries := []PlayerSummary{}

	roles := []models.PlayerRole{}
	if req.IncludeOutfield {
		roles = append(roles, models.PlayerRoleOutfield)
	}
	if req.IncludeGoalkeepers {
		roles = append(roles, models.PlayerRoleGoalkeeper)
	}

	for _, role := range roles {
		players, err := s.players.Search(repository.PlayerSearchFilter{
			NameSubstring: req.NamePrefix,
			NationalityID: req.NationalityID,
			ClubID:        req.ClubID,
			Role:          role,
			Limit:         limit,
		})
		if err != nil {
			return nil, apperrors.NewStorageError("search players", err)
		}
		for i := range players {
			summaries = append(summaries, toSummary(&players[i]))
		}
	}

	return summaries, nil
}

func toSummary(player *models.Player) PlayerSummary {
	return PlayerSummary{
		ID:            player.ID,
		Name:          player.Name,
		Role:          player.Role,
		OverallRating: player.OverallRating,
		MarketValue:   player.MarketValue,
		NationalityID: player.NationalityID,
		CurrentClubID: player.CurrentClubID,
	}
}
