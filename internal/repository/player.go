package repository

import (
	"player-roster-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlayerSearchFilter describes one role category's slice of a roster search.
// NameSubstring matches anywhere in the name, not anchored at the start.
// Nil NationalityID/ClubID means no filter on that dimension.
type PlayerSearchFilter struct {
	NameSubstring string
	NationalityID *int64
	ClubID        *int64
	Role          models.PlayerRole
	Limit         int
}

// PlayerRepository handles database operations for players
type PlayerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(db *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *PlayerRepository) WithTx(tx *gorm.DB) *PlayerRepository {
	return &PlayerRepository{db: tx}
}

// Create creates a new player
func (r *PlayerRepository) Create(player *models.Player) error {
	return r.db.Create(player).Error
}

// Upsert inserts a player, ignoring rows that already exist
func (r *PlayerRepository) Upsert(player *models.Player) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(player).Error
}

// GetByID retrieves a player by ID
func (r *PlayerRepository) GetByID(id int64) (*models.Player, error) {
	var player models.Player
	err := r.db.First(&player, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// GetByIDForUpdate retrieves a player by ID holding a row lock for the rest
// of the surrounding transaction. Concurrent transfers for the same player
// serialize on this lock.
func (r *PlayerRepository) GetByIDForUpdate(id int64) (*models.Player, error) {
	var player models.Player
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&player, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// List retrieves players with pagination
func (r *PlayerRepository) List(limit, offset int) ([]models.Player, int64, error) {
	var players []models.Player
	var total int64

	if err := r.db.Model(&models.Player{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("id").Limit(limit).Offset(offset).Find(&players).Error
	if err != nil {
		return nil, 0, err
	}

	return players, total, nil
}

// Update saves all fields of a player
func (r *PlayerRepository) Update(player *models.Player) error {
	return r.db.Save(player).Error
}

// UpdateCurrentClub repoints the player's current club
func (r *PlayerRepository) UpdateCurrentClub(playerID int64, clubID *int64) error {
	return r.db.Model(&models.Player{}).Where("id = ?", playerID).Update("current_club_id", clubID).Error
}

// Delete deletes a player; attribute and contract rows cascade
func (r *PlayerRepository) Delete(id int64) error {
	return r.db.Delete(&models.Player{}, "id = ?", id).Error
}

// Search retrieves one role category of players matching the filter, capped
// at the filter's own limit. Callers merge categories themselves; there is no
// cross-category ranking.
func (r *PlayerRepository) Search(filter PlayerSearchFilter) ([]models.Player, error) {
	var players []models.Player

	query := r.db.Model(&models.Player{}).Where("role = ?", filter.Role)
	if filter.NameSubstring != "" {
		query = query.Where("name ILIKE ?", "%"+filter.NameSubstring+"%")
	}
	if filter.NationalityID != nil {
		query = query.Where("nationality_id = ?", *filter.NationalityID)
	}
	if filter.ClubID != nil {
		query = query.Where("current_club_id = ?", *filter.ClubID)
	}

	err := query.Order("id").Limit(filter.Limit).Find(&players).Error
	if err != nil {
		return nil, err
	}

	return players, nil
}

// GetByCurrentClub retrieves all players currently assigned to a club
func (r *PlayerRepository) GetByCurrentClub(clubID int64) ([]models.Player, error) {
	var players []models.Player
	err := r.db.Where("current_club_id = ?", clubID).Order("id").Find(&players).Error
	return players, err
}
