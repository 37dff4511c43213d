package service

import (
	"errors"

	"player-roster-backend/internal/database/models"
	apperrors "player-roster-backend/internal/errors"
	"player-roster-backend/internal/repository"

	"gorm.io/gorm"
)

// ClubService handles business logic for clubs
type ClubService struct {
	clubs repository.ClubRepositoryInterface
}

// NewClubService creates a new club service
func NewClubService(clubs repository.ClubRepositoryInterface) *ClubService {
	return &ClubService{clubs: clubs}
}

// ClubListResponse represents a paginated list of clubs
type ClubListResponse struct {
	Clubs    []models.Club `json:"clubs"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// Get retrieves a club by ID
func (s *ClubService) Get(id int64) (*models.Club, error) {
	club, err := s.clubs.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrClubNotFound
		}
		return nil, apperrors.NewStorageError("get club", err)
	}
	return club, nil
}

// List retrieves clubs matching the filter with pagination
func (s *ClubService) List(filter repository.ClubFilter, page, pageSize int) (*ClubListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	clubs, total, err := s.clubs.List(filter, pageSize, offset)
	if err != nil {
		return nil, apperrors.NewStorageError("list clubs", err)
	}

	return &ClubListResponse{
		Clubs:    clubs,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
