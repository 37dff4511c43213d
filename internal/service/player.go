package service

import (
	"errors"
	"time"

	"player-roster-backend/internal/database/models"
	apperrors "player-roster-backend/internal/errors"
	"player-roster-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// PlayerService handles business logic for player identities
type PlayerService struct {
	db            *gorm.DB
	players       *repository.PlayerRepository
	attrs         *repository.AttributeRepository
	nationalities repository.NationalityRepositoryInterface
	clubs         repository.ClubRepositoryInterface
	validator     *validator.Validate
}

// NewPlayerService creates a new player service
func NewPlayerService(db *gorm.DB, players *repository.PlayerRepository, attrs *repository.AttributeRepository, nationalities repository.NationalityRepositoryInterface, clubs repository.ClubRepositoryInterface, validator *validator.Validate) *PlayerService {
	return &PlayerService{
		db:            db,
		players:       players,
		attrs:         attrs,
		nationalities: nationalities,
		clubs:         clubs,
		validator:     validator,
	}
}

// OutfieldAttributesRequest carries the rating set for an outfield player
type OutfieldAttributesRequest struct {
	Pace      int `json:"pace" validate:"gte=0,lte=99"`
	Shooting  int `json:"shooting" validate:"gte=0,lte=99"`
	Passing   int `json:"passing" validate:"gte=0,lte=99"`
	Dribbling int `json:"dribbling" validate:"gte=0,lte=99"`
	Defending int `json:"defending" validate:"gte=0,lte=99"`
	Physical  int `json:"physical" validate:"gte=0,lte=99"`
}

// GoalkeeperAttributesRequest carries the rating set for a goalkeeper
type GoalkeeperAttributesRequest struct {
	Reflexes    int `json:"reflexes" validate:"gte=0,lte=99"`
	Diving      int `json:"diving" validate:"gte=0,lte=99"`
	Handling    int `json:"handling" validate:"gte=0,lte=99"`
	Positioning int `json:"positioning" validate:"gte=0,lte=99"`
	Speed       int `json:"speed" validate:"gte=0,lte=99"`
}

// CreatePlayerRequest represents the request to create a player. The role is
// fixed here for the player's lifetime and exactly the matching attribute set
// must be supplied.
type CreatePlayerRequest struct {
	Name          string                       `json:"name" validate:"required,min=1,max=255"`
	DateOfBirth   string                       `json:"date_of_birth,omitempty"`
	OverallRating int                          `json:"overall_rating" validate:"gte=0,lte=99"`
	MarketValue   int64                        `json:"market_value" validate:"gte=0"`
	NationalityID *int64                       `json:"nationality_id,omitempty"`
	Role          models.PlayerRole            `json:"role" validate:"required"`
	Outfield      *OutfieldAttributesRequest   `json:"outfield,omitempty"`
	Goalkeeper    *GoalkeeperAttributesRequest `json:"goalkeeper,omitempty"`
}

// UpdatePlayerRequest enumerates every mutable player field, one optional
// field each. Attribute fields must belong to the player's role; unknown JSON
// fields are rejected at the handler boundary before this type is populated.
// Role is listed only so a role-change attempt gets a specific error instead
// of an unknown-field rejection.
type UpdatePlayerRequest struct {
	Role          *string `json:"role,omitempty"`
	Name          *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	DateOfBirth   *string `json:"date_of_birth,omitempty"`
	OverallRating *int    `json:"overall_rating,omitempty" validate:"omitempty,gte=0,lte=99"`
	MarketValue   *int64  `json:"market_value,omitempty" validate:"omitempty,gte=0"`
	NationalityID *int64  `json:"nationality_id,omitempty"`

	// Outfield ratings
	Pace      *int `json:"pace,omitempty" validate:"omitempty,gte=0,lte=99"`
	Shooting  *int `json:"shooting,omitempty" validate:"omitempty,gte=0,lte=99"`
	Passing   *int `json:"passing,omitempty" validate:"omitempty,gte=0,lte=99"`
	Dribbling *int `json:"dribbling,omitempty" validate:"omitempty,gte=0,lte=99"`
	Defending *int `json:"defending,omitempty" validate:"omitempty,gte=0,lte=99"`
	Physical  *int `json:"physical,omitempty" validate:"omitempty,gte=0,lte=99"`

	// Goalkeeper ratings
	Reflexes    *int `json:"reflexes,omitempty" validate:"omitempty,gte=0,lte=99"`
	Diving      *int `json:"diving,omitempty" validate:"omitempty,gte=0,lte=99"`
	Handling    *int `json:"handling,omitempty" validate:"omitempty,gte=0,lte=99"`
	Positioning *int `json:"positioning,omitempty" validate:"omitempty,gte=0,lte=99"`
	Speed       *int `json:"speed,omitempty" validate:"omitempty,gte=0,lte=99"`
}

func (r *UpdatePlayerRequest) hasOutfieldFields() bool {
	return r.Pace != nil || r.Shooting != nil || r.Passing != nil ||
		r.Dribbling != nil || r.Defending != nil || r.Physical != nil
}

func (r *UpdatePlayerRequest) hasGoalkeeperFields() bool {
	return r.Reflexes != nil || r.Diving != nil || r.Handling != nil ||
		r.Positioning != nil || r.Speed != nil
}

// PlayerListResponse represents a paginated list of players
type PlayerListResponse struct {
	Players  []PlayerSummary `json:"players"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// Create creates a player together with its role-matched attribute row in a
// single transaction, so the one-attribute-row-per-player invariant holds
// from the first committed state.
func (s *PlayerService) Create(req *CreatePlayerRequest) (*PlayerProfile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if !req.Role.Valid() {
		return nil, apperrors.ErrUnknownRole
	}

	switch req.Role {
	case models.PlayerRoleOutfield:
		if req.Outfield == nil || req.Goalkeeper != nil {
			return nil, apperrors.ErrAttributesRoleMismatch
		}
	case models.PlayerRoleGoalkeeper:
		if req.Goalkeeper == nil || req.Outfield != nil {
			return nil, apperrors.ErrAttributesRoleMismatch
		}
	}

	var dob *time.Time
	if req.DateOfBirth != "" {
		parsed, err := time.Parse(time.DateOnly, req.DateOfBirth)
		if err != nil {
			return nil, apperrors.NewValidationError("date_of_birth", "must be a date in YYYY-MM-DD format")
		}
		dob = &parsed
	}

	if req.NationalityID != nil {
		if _, err := s.nationalities.GetByID(*req.NationalityID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrNationalityNotFound
			}
			return nil, apperrors.NewStorageError("get nationality", err)
		}
	}

	player := &models.Player{
		Name:          req.Name,
		DateOfBirth:   dob,
		OverallRating: req.OverallRating,
		MarketValue:   req.MarketValue,
		NationalityID: req.NationalityID,
		Role:          req.Role,
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		players := s.players.WithTx(tx)
		attrs := s.attrs.WithTx(tx)

		if err := players.Create(player); err != nil {
			return apperrors.NewStorageError("create player", err)
		}

		if req.Role == models.PlayerRoleOutfield {
			return attrs.CreateOutfield(&models.OutfieldAttributes{
				PlayerID:  player.ID,
				Pace:      req.Outfield.Pace,
				Shooting:  req.Outfield.Shooting,
				Passing:   req.Outfield.Passing,
				Dribbling: req.Outfield.Dribbling,
				Defending: req.Outfield.Defending,
				Physical:  req.Outfield.Physical,
			})
		}
		return attrs.CreateGoalkeeper(&models.GoalkeeperAttributes{
			PlayerID:    player.ID,
			Reflexes:    req.Goalkeeper.Reflexes,
			Diving:      req.Goalkeeper.Diving,
			Handling:    req.Goalkeeper.Handling,
			Positioning: req.Goalkeeper.Positioning,
			Speed:       req.Goalkeeper.Speed,
		})
	})
	if txErr != nil {
		if apperrors.IsStorage(txErr) {
			return nil, txErr
		}
		return nil, apperrors.NewStorageError("create player", txErr)
	}

	resolver := NewAttributeService(s.players, s.attrs)
	return resolver.Resolve(player.ID)
}

// Get retrieves a player identity without resolving attributes
func (s *PlayerService) Get(id int64) (*models.Player, error) {
	player, err := s.players.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, apperrors.NewStorageError("get player", err)
	}
	return player, nil
}

// List retrieves players with pagination
func (s *PlayerService) List(page, pageSize int) (*PlayerListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	players, total, err := s.players.List(pageSize, offset)
	if err != nil {
		return nil, apperrors.NewStorageError("list players", err)
	}

	summaries := make([]PlayerSummary, len(players))
	for i := range players {
		summaries[i] = toSummary(&players[i])
	}

	return &PlayerListResponse{
		Players:  summaries,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update applies an enumerated update request to the player and, when rating
// fields are present, to its role-matched attribute row. Fields of the wrong
// role are rejected, not ignored.
func (s *PlayerService) Update(id int64, req *UpdatePlayerRequest) (*PlayerProfile, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if req.Role != nil {
		return nil, apperrors.ErrRoleImmutable
	}

	player, err := s.players.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlayerNotFound
		}
		return nil, apperrors.NewStorageError("get player", err)
	}

	switch player.Role {
	case models.PlayerRoleOutfield:
		if req.hasGoalkeeperFields() {
			return nil, apperrors.ErrAttributesRoleMismatch
		}
	case models.PlayerRoleGoalkeeper:
		if req.hasOutfieldFields() {
			return nil, apperrors.ErrAttributesRoleMismatch
		}
	}

	if req.Name != nil {
		player.Name = *req.Name
	}
	if req.DateOfBirth != nil {
		parsed, err := time.Parse(time.DateOnly, *req.DateOfBirth)
		if err != nil {
			return nil, apperrors.NewValidationError("date_of_birth", "must be a date in YYYY-MM-DD format")
		}
		player.DateOfBirth = &parsed
	}
	if req.OverallRating != nil {
		player.OverallRating = *req.OverallRating
	}
	if req.MarketValue != nil {
		player.MarketValue = *req.MarketValue
	}
	if req.NationalityID != nil {
		if _, err := s.nationalities.GetByID(*req.NationalityID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrNationalityNotFound
			}
			return nil, apperrors.NewStorageError("get nationality", err)
		}
		player.NationalityID = req.NationalityID
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		players := s.players.WithTx(tx)
		attrs := s.attrs.WithTx(tx)

		if err := players.Update(player); err != nil {
			return apperrors.NewStorageError("update player", err)
		}

		if player.Role == models.PlayerRoleOutfield && req.hasOutfieldFields() {
			ratings, err := attrs.GetOutfield(id)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.ErrAttributeMismatch
				}
				return apperrors.NewStorageError("get outfield attributes", err)
			}
			applyOutfieldUpdate(ratings, req)
			if err := attrs.SaveOutfield(ratings); err != nil {
				return apperrors.NewStorageError("update outfield attributes", err)
			}
		}

		if player.Role == models.PlayerRoleGoalkeeper && req.hasGoalkeeperFields() {
			ratings, err := attrs.GetGoalkeeper(id)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.ErrAttributeMismatch
				}
				return apperrors.NewStorageError("get goalkeeper attributes", err)
			}
			applyGoalkeeperUpdate(ratings, req)
			if err := attrs.SaveGoalkeeper(ratings); err != nil {
				return apperrors.NewStorageError("update goalkeeper attributes", err)
			}
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	resolver := NewAttributeService(s.players, s.attrs)
	return resolver.Resolve(id)
}

// Delete removes a player; attribute and contract rows cascade. This is the
// administrative path, not part of the transfer flow.
func (s *PlayerService) Delete(id int64) error {
	if _, err := s.players.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPlayerNotFound
		}
		return apperrors.NewStorageError("get player", err)
	}

	if err := s.players.Delete(id); err != nil {
		return apperrors.NewStorageError("delete player", err)
	}
	return nil
}

func applyOutfieldUpdate(ratings *models.OutfieldAttributes, req *UpdatePlayerRequest) {
	if req.Pace != nil {
		ratings.Pace = *req.Pace
	}
	if req.Shooting != nil {
		ratings.Shooting = *req.Shooting
	}
	if req.Passing != nil {
		ratings.Passing = *req.Passing
	}
	if req.Dribbling != nil {
		ratings.Dribbling = *req.Dribbling
	}
	if req.Defending != nil {
		ratings.Defending = *req.Defending
	}
	if req.Physical != nil {
		ratings.Physical = *req.Physical
	}
}

func applyGoalkeeperUpdate(ratings *models.GoalkeeperAttributes, req *UpdatePlayerRequest) {
	if req.Reflexes != nil {
		ratings.Reflexes = *req.Reflexes
	}
	if req.Diving != nil {
		ratings.Diving = *req.Diving
	}
	if req.Handling != nil {
		ratings.Handling = *req.Handling
	}
	if req.Positioning != nil {
		ratings.Positioning = *req.Positioning
	}
	if req.Speed != nil {
		ratings.Speed = *req.Speed
	}
}
