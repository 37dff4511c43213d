package repository

import (
	"player-roster-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NationalityRepository handles database operations for nationalities
type NationalityRepository struct {
	db *gorm.DB
}

// NewNationalityRepository creates a new nationality repository
func NewNationalityRepository(db *gorm.DB) *NationalityRepository {
	return &NationalityRepository{db: db}
}

// Create creates a new nationality
func (r *NationalityRepository) Create(nationality *models.Nationality) error {
	return r.db.Create(nationality).Error
}

// Upsert inserts a nationality, ignoring rows that already exist.
// Bulk load relies on this being a no-op for duplicates.
func (r *NationalityRepository) Upsert(nationality *models.Nationality) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(nationality).Error
}

// GetByID retrieves a nationality by ID
func (r *NationalityRepository) GetByID(id int64) (*models.Nationality, error) {
	var nationality models.Nationality
	err := r.db.First(&nationality, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &nationality, nil
}

// List retrieves all nationalities ordered by name
func (r *NationalityRepository) List() ([]models.Nationality, error) {
	var nationalities []models.Nationality
	err := r.db.Order("name").Find(&nationalities).Error
	return nationalities, err
}
