package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"player-roster-backend/internal/config"
	"player-roster-backend/internal/database"
	"player-roster-backend/internal/database/models"
	"player-roster-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Seed file structures
type NationalityData struct {
	Name string `yaml:"name"`
}

type NationalitiesFile struct {
	Nationalities []NationalityData `yaml:"nationalities"`
}

type ClubData struct {
	ID          int64  `yaml:"id"`
	LeagueName  string `yaml:"league_name"`
	ClubName    string `yaml:"club_name"`
	Nationality string `yaml:"nationality,omitempty"`
}

type ClubsFile struct {
	Clubs []ClubData `yaml:"clubs"`
}

type UserData struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

func main() {
	log.Println("Loading initial data...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadSeedData(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load seed data: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadSeedData(db *gorm.DB, dataDir string) error {
	nationalityRepo := repository.NewNationalityRepository(db)
	clubRepo := repository.NewClubRepository(db)
	playerRepo := repository.NewPlayerRepository(db)
	attrRepo := repository.NewAttributeRepository(db)
	contractRepo := repository.NewContractRepository(db)
	userRepo := repository.NewUserRepository(db)

	nationalityIDs, err := loadNationalities(nationalityRepo, filepath.Join(dataDir, "nationalities.yaml"))
	if err != nil {
		return fmt.Errorf("failed to load nationalities: %w", err)
	}

	if err := loadClubs(clubRepo, nationalityIDs, filepath.Join(dataDir, "clubs.yaml")); err != nil {
		return fmt.Errorf("failed to load clubs: %w", err)
	}

	if err := loadPlayers(playerRepo, attrRepo, contractRepo, nationalityIDs, filepath.Join(dataDir, "players.csv")); err != nil {
		return fmt.Errorf("failed to load players: %w", err)
	}

	if err := loadUsers(userRepo, filepath.Join(dataDir, "users.yaml")); err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	return nil
}

// loadNationalities upserts nationalities by unique name and returns a
// name-to-ID map for resolving references in clubs and players.
func loadNationalities(repo *repository.NationalityRepository, path string) (map[string]int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file NationalitiesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}

	for _, n := range file.Nationalities {
		if err := repo.Upsert(&models.Nationality{Name: n.Name}); err != nil {
			return nil, fmt.Errorf("failed to upsert nationality %s: %w", n.Name, err)
		}
	}

	all, err := repo.List()
	if err != nil {
		return nil, err
	}
	ids := make(map[string]int64, len(all))
	for _, n := range all {
		ids[n.Name] = n.ID
	}
	log.Printf("Nationalities: %d total", len(all))
	return ids, nil
}

// loadClubs upserts clubs with their explicit seed IDs so player rows can
// reference them and reruns stay idempotent.
func loadClubs(repo *repository.ClubRepository, nationalityIDs map[string]int64, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var file ClubsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return err
	}

	for _, c := range file.Clubs {
		club := &models.Club{
			ID:         c.ID,
			LeagueName: c.LeagueName,
			ClubName:   c.ClubName,
		}
		if c.Nationality != "" {
			if id, ok := nationalityIDs[c.Nationality]; ok {
				club.NationalityID = &id
			} else {
				log.Printf("Warning: nationality %s not found for club %s", c.Nationality, c.ClubName)
			}
		}
		if err := repo.Upsert(club); err != nil {
			return fmt.Errorf("failed to upsert club %s: %w", c.ClubName, err)
		}
	}

	log.Printf("Clubs: %d total", len(file.Clubs))
	return nil
}

// loadPlayers reads the player CSV and upserts player, attribute, and open
// contract rows. Rows carry explicit IDs, so existing records are skipped.
//
// Columns: id, name, date_of_birth, overall_rating, market_value,
// nationality, club_id, role, pace, shooting, passing, dribbling, defending,
// physical, reflexes, diving, handling, positioning, speed, contract_start
func loadPlayers(players *repository.PlayerRepository, attrs *repository.AttributeRepository, contracts *repository.ContractRepository, nationalityIDs map[string]int64, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read CSV header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}

	loaded := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read CSV record: %w", err)
		}

		player, err := parsePlayerRecord(record, col, nationalityIDs)
		if err != nil {
			log.Printf("Warning: skipping player row: %v", err)
			continue
		}

		if err := players.Upsert(player); err != nil {
			return fmt.Errorf("failed to upsert player %s: %w", player.Name, err)
		}

		if err := upsertPlayerAttributes(attrs, player, record, col); err != nil {
			return fmt.Errorf("failed to upsert attributes for %s: %w", player.Name, err)
		}

		if player.CurrentClubID != nil {
			start, err := time.Parse(time.DateOnly, record[col["contract_start"]])
			if err != nil {
				log.Printf("Warning: invalid contract_start for %s, skipping contract", player.Name)
			} else {
				contract := &models.ContractPeriod{
					PlayerID:  player.ID,
					ClubID:    *player.CurrentClubID,
					StartDate: start,
				}
				if err := contracts.Upsert(contract); err != nil {
					return fmt.Errorf("failed to upsert contract for %s: %w", player.Name, err)
				}
			}
		}

		loaded++
	}

	log.Printf("Players: %d total", loaded)
	return nil
}

func parsePlayerRecord(record []string, col map[string]int, nationalityIDs map[string]int64) (*models.Player, error) {
	id, err := strconv.ParseInt(record[col["id"]], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid id %q", record[col["id"]])
	}

	role := models.PlayerRole(record[col["role"]])
	if !role.Valid() {
		return nil, fmt.Errorf("invalid role %q for player %d", record[col["role"]], id)
	}

	rating, err := strconv.Atoi(record[col["overall_rating"]])
	if err != nil {
		return nil, fmt.Errorf("invalid overall_rating for player %d", id)
	}
	marketValue, err := strconv.ParseInt(record[col["market_value"]], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid market_value for player %d", id)
	}

	player := &models.Player{
		ID:            id,
		Name:          record[col["name"]],
		OverallRating: rating,
		MarketValue:   marketValue,
		Role:          role,
	}

	if raw := record[col["date_of_birth"]]; raw != "" {
		dob, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid date_of_birth for player %d", id)
		}
		player.DateOfBirth = &dob
	}

	if name := record[col["nationality"]]; name != "" {
		if natID, ok := nationalityIDs[name]; ok {
			player.NationalityID = &natID
		} else {
			log.Printf("Warning: nationality %s not found for player %d", name, id)
		}
	}

	if raw := record[col["club_id"]]; raw != "" {
		clubID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid club_id for player %d", id)
		}
		player.CurrentClubID = &clubID
	}

	return player, nil
}

func upsertPlayerAttributes(attrs *repository.AttributeRepository, player *models.Player, record []string, col map[string]int) error {
	atoi := func(name string) int {
		v, _ := strconv.Atoi(record[col[name]])
		return v
	}

	switch player.Role {
	case models.PlayerRoleOutfield:
		return attrs.UpsertOutfield(&models.OutfieldAttributes{
			PlayerID:  player.ID,
			Pace:      atoi("pace"),
			Shooting:  atoi("shooting"),
			Passing:   atoi("passing"),
			Dribbling: atoi("dribbling"),
			Defending: atoi("defending"),
			Physical:  atoi("physical"),
		})
	case models.PlayerRoleGoalkeeper:
		return attrs.UpsertGoalkeeper(&models.GoalkeeperAttributes{
			PlayerID:    player.ID,
			Reflexes:    atoi("reflexes"),
			Diving:      atoi("diving"),
			Handling:    atoi("handling"),
			Positioning: atoi("positioning"),
			Speed:       atoi("speed"),
		})
	}
	return nil
}

// loadUsers creates seed users with bcrypt-hashed passwords. Existing
// usernames are left untouched so rotated passwords never get clobbered.
func loadUsers(repo *repository.UserRepository, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var file UsersFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return err
	}

	created := 0
	for _, u := range file.Users {
		if _, err := repo.GetByUsername(u.Username); err == nil {
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to query user %s: %w", u.Username, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", u.Username, err)
		}

		role := models.UserRoleUser
		if u.Role != "" {
			role = models.UserRole(u.Role)
		}

		user := &models.User{
			Username:     u.Username,
			PasswordHash: string(hash),
			Role:         role,
		}
		if err := repo.Create(user); err != nil {
			return fmt.Errorf("failed to create user %s: %w", u.Username, err)
		}
		created++
	}

	log.Printf("Users: %d created, %d total", created, len(file.Users))
	return nil
}
