package repository

import (
	"player-roster-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ClubFilter narrows club listings. Nil/empty fields mean no filter on that
// dimension.
type ClubFilter struct {
	NationalityID *int64
	LeagueName    string
}

// ClubRepository handles database operations for clubs
type ClubRepository struct {
	db *gorm.DB
}

// NewClubRepository creates a new club repository
func NewClubRepository(db *gorm.DB) *ClubRepository {
	return &ClubRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *ClubRepository) WithTx(tx *gorm.DB) *ClubRepository {
	return &ClubRepository{db: tx}
}

// Create creates a new club
func (r *ClubRepository) Create(club *models.Club) error {
	return r.db.Create(club).Error
}

// Upsert inserts a club, ignoring rows that already exist
func (r *ClubRepository) Upsert(club *models.Club) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(club).Error
}

// GetByID retrieves a club by ID
func (r *ClubRepository) GetByID(id int64) (*models.Club, error) {
	var club models.Club
	err := r.db.First(&club, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &club, nil
}

// List retrieves clubs matching the filter with pagination
func (r *ClubRepository) List(filter ClubFilter, limit, offset int) ([]models.Club, int64, error) {
	var clubs []models.Club
	var total int64

	query := r.db.Model(&models.Club{})
	if filter.NationalityID != nil {
		query = query.Where("nationality_id = ?", *filter.NationalityID)
	}
	if filter.LeagueName != "" {
		query = query.Where("league_name = ?", filter.LeagueName)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("club_name").Limit(limit).Offset(offset).Find(&clubs).Error
	if err != nil {
		return nil, 0, err
	}

	return clubs, total, nil
}
