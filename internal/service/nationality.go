package service

import (
	"errors"

	"player-roster-backend/internal/database/models"
	apperrors "player-roster-backend/internal/errors"
	"player-roster-backend/internal/repository"

	"gorm.io/gorm"
)

// NationalityService handles business logic for nationalities
type NationalityService struct {
	nationalities repository.NationalityRepositoryInterface
}

// NewNationalityService creates a new nationality service
func NewNationalityService(nationalities repository.NationalityRepositoryInterface) *NationalityService {
	return &NationalityService{nationalities: nationalities}
}

// Get retrieves a nationality by ID
func (s *NationalityService) Get(id int64) (*models.Nationality, error) {
	nationality, err := s.nationalities.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNationalityNotFound
		}
		return nil, apperrors.NewStorageError("get nationality", err)
	}
	return nationality, nil
}

// List retrieves all nationalities
func (s *NationalityService) List() ([]models.Nationality, error) {
	nationalities, err := s.nationalities.List()
	if err != nil {
		return nil, apperrors.NewStorageError("list nationalities", err)
	}
	return nationalities, nil
}
