//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"player-roster-backend/internal/database/models"
	"player-roster-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PlayerRepositoryTestSuite tests the PlayerRepository
type PlayerRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PlayerRepository
	clubRepo      *ClubRepository
	natRepo       *NationalityRepository
	attrRepo      *AttributeRepository
	contractRepo  *ContractRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *PlayerRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewPlayerRepository(suite.baseTestSuite.DB)
	suite.clubRepo = NewClubRepository(suite.baseTestSuite.DB)
	suite.natRepo = NewNationalityRepository(suite.baseTestSuite.DB)
	suite.attrRepo = NewAttributeRepository(suite.baseTestSuite.DB)
	suite.contractRepo = NewContractRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *PlayerRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PlayerRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *PlayerRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *PlayerRepositoryTestSuite) createClub(name string) *models.Club {
	club := suite.factories.Club.WithName(name)
	suite.NoError(suite.clubRepo.Create(club))
	return club
}

// TestCreate tests creating a new player
func (suite *PlayerRepositoryTestSuite) TestCreate() {
	player := suite.factories.Player.Create()

	err := suite.repo.Create(player)

	suite.NoError(err)
	suite.NotZero(player.ID)
	suite.NotZero(player.CreatedAt)
}

// TestUpsertIsIdempotent tests that re-inserting the same ID is a no-op
func (suite *PlayerRepositoryTestSuite) TestUpsertIsIdempotent() {
	player := suite.factories.Player.WithName("Seeded Player")
	player.ID = 42
	suite.NoError(suite.repo.Upsert(player))

	again := suite.factories.Player.WithName("Different Name")
	again.ID = 42
	suite.NoError(suite.repo.Upsert(again))

	stored, err := suite.repo.GetByID(42)
	suite.NoError(err)
	suite.Equal("Seeded Player", stored.Name)
}

// TestGetByID tests retrieving a player by ID
func (suite *PlayerRepositoryTestSuite) TestGetByID() {
	player := suite.factories.Player.WithName("Retrieval Target")
	suite.NoError(suite.repo.Create(player))

	retrieved, err := suite.repo.GetByID(player.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(player.ID, retrieved.ID)
	suite.Equal("Retrieval Target", retrieved.Name)
	suite.Equal(models.PlayerRoleOutfield, retrieved.Role)
}

// TestGetByIDNotFound tests retrieving a non-existent player
func (suite *PlayerRepositoryTestSuite) TestGetByIDNotFound() {
	player, err := suite.repo.GetByID(999999)

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(player)
}

// TestUpdate tests saving player fields
func (suite *PlayerRepositoryTestSuite) TestUpdate() {
	player := suite.factories.Player.Create()
	suite.NoError(suite.repo.Create(player))

	player.MarketValue = 25_000_000
	player.OverallRating = 88
	suite.NoError(suite.repo.Update(player))

	stored, err := suite.repo.GetByID(player.ID)
	suite.NoError(err)
	suite.Equal(int64(25_000_000), stored.MarketValue)
	suite.Equal(88, stored.OverallRating)
}

// TestUpdateCurrentClub tests repointing and clearing the current club
func (suite *PlayerRepositoryTestSuite) TestUpdateCurrentClub() {
	club := suite.createClub("Destination FC")
	player := suite.factories.Player.Create()
	suite.NoError(suite.repo.Create(player))

	suite.NoError(suite.repo.UpdateCurrentClub(player.ID, &club.ID))
	stored, err := suite.repo.GetByID(player.ID)
	suite.NoError(err)
	suite.NotNil(stored.CurrentClubID)
	suite.Equal(club.ID, *stored.CurrentClubID)

	suite.NoError(suite.repo.UpdateCurrentClub(player.ID, nil))
	stored, err = suite.repo.GetByID(player.ID)
	suite.NoError(err)
	suite.Nil(stored.CurrentClubID)
}

// TestDeleteCascades tests that deleting a player removes dependent rows
func (suite *PlayerRepositoryTestSuite) TestDeleteCascades() {
	club := suite.createClub("Cascade FC")
	player := suite.factories.Player.Create()
	suite.NoError(suite.repo.Create(player))
	suite.NoError(suite.attrRepo.CreateOutfield(suite.factories.Player.OutfieldAttributes(player.ID)))
	start := time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC)
	suite.NoError(suite.contractRepo.Create(suite.factories.Contract.Open(player.ID, club.ID, start)))

	suite.NoError(suite.repo.Delete(player.ID))

	_, err := suite.repo.GetByID(player.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = suite.attrRepo.GetOutfield(player.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	contracts, err := suite.contractRepo.History(player.ID)
	suite.NoError(err)
	suite.Empty(contracts)
}

// TestSearchByNameSubstring tests case-insensitive substring matching
func (suite *PlayerRepositoryTestSuite) TestSearchByNameSubstring() {
	suite.NoError(suite.repo.Create(suite.factories.Player.WithName("Erling Haaland")))
	suite.NoError(suite.repo.Create(suite.factories.Player.WithName("Jude Bellingham")))
	suite.NoError(suite.repo.Create(suite.factories.Player.WithName("Harry Kane")))

	players, err := suite.repo.Search(PlayerSearchFilter{
		NameSubstring: "haal",
		Role:          models.PlayerRoleOutfield,
		Limit:         50,
	})

	suite.NoError(err)
	suite.Len(players, 1)
	suite.Equal("Erling Haaland", players[0].Name)
}

// TestSearchFiltersByRole tests that a category query never crosses roles
func (suite *PlayerRepositoryTestSuite) TestSearchFiltersByRole() {
	suite.NoError(suite.repo.Create(suite.factories.Player.WithName("Field Player")))
	keeper := suite.factories.Player.Goalkeeper()
	suite.NoError(suite.repo.Create(keeper))

	keepers, err := suite.repo.Search(PlayerSearchFilter{
		Role:  models.PlayerRoleGoalkeeper,
		Limit: 50,
	})

	suite.NoError(err)
	suite.Len(keepers, 1)
	suite.Equal(keeper.ID, keepers[0].ID)
}

// TestSearchByClubAndNationality tests combined dimension filters
func (suite *PlayerRepositoryTestSuite) TestSearchByClubAndNationality() {
	nation := suite.factories.Nationality.WithName("Norway")
	suite.NoError(suite.natRepo.Create(nation))
	club := suite.createClub("Filter FC")

	match := suite.factories.Player.WithName("Matching Player")
	match.NationalityID = &nation.ID
	match.CurrentClubID = &club.ID
	suite.NoError(suite.repo.Create(match))

	wrongClub := suite.factories.Player.WithName("Wrong Club")
	wrongClub.NationalityID = &nation.ID
	suite.NoError(suite.repo.Create(wrongClub))

	players, err := suite.repo.Search(PlayerSearchFilter{
		NationalityID: &nation.ID,
		ClubID:        &club.ID,
		Role:          models.PlayerRoleOutfield,
		Limit:         50,
	})

	suite.NoError(err)
	suite.Len(players, 1)
	suite.Equal(match.ID, players[0].ID)
}

// TestSearchRespectsLimit tests the per-category cap
func (suite *PlayerRepositoryTestSuite) TestSearchRespectsLimit() {
	for i := 0; i < 5; i++ {
		suite.NoError(suite.repo.Create(suite.factories.Player.Create()))
	}

	players, err := suite.repo.Search(PlayerSearchFilter{
		Role:  models.PlayerRoleOutfield,
		Limit: 3,
	})

	suite.NoError(err)
	suite.Len(players, 3)
}

// TestGetByCurrentClub tests retrieving a club's current players
func (suite *PlayerRepositoryTestSuite) TestGetByCurrentClub() {
	club := suite.createClub("Roster FC")
	other := suite.createClub("Other FC")

	inSquad := suite.factories.Player.WithClub(club.ID)
	suite.NoError(suite.repo.Create(inSquad))
	elsewhere := suite.factories.Player.WithClub(other.ID)
	suite.NoError(suite.repo.Create(elsewhere))
	suite.NoError(suite.repo.Create(suite.factories.Player.WithName("Free Agent")))

	players, err := suite.repo.GetByCurrentClub(club.ID)

	suite.NoError(err)
	suite.Len(players, 1)
	suite.Equal(inSquad.ID, players[0].ID)
}

// TestList tests paginated listing
func (suite *PlayerRepositoryTestSuite) TestList() {
	for i := 0; i < 4; i++ {
		suite.NoError(suite.repo.Create(suite.factories.Player.Create()))
	}

	players, total, err := suite.repo.List(2, 2)

	suite.NoError(err)
	suite.Equal(int64(4), total)
	suite.Len(players, 2)
}

// TestPlayerRepositoryTestSuite runs the test suite
func TestPlayerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerRepositoryTestSuite))
}
