package routes

import (
	"player-roster-backend/internal/api/handlers"
	"player-roster-backend/internal/api/middleware"
	"player-roster-backend/internal/auth"
	"player-roster-backend/internal/config"
	"player-roster-backend/internal/repository"
	"player-roster-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	playerRepo := repository.NewPlayerRepository(db)
	attrRepo := repository.NewAttributeRepository(db)
	contractRepo := repository.NewContractRepository(db)
	clubRepo := repository.NewClubRepository(db)
	nationalityRepo := repository.NewNationalityRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	attrService := service.NewAttributeService(playerRepo, attrRepo)
	playerService := service.NewPlayerService(db, playerRepo, attrRepo, nationalityRepo, clubRepo, validator)
	contractService := service.NewContractService(contractRepo, playerRepo, clubRepo)
	transferService := service.NewTransferService(db, playerRepo, clubRepo, contractRepo, validator)
	searchService := service.NewSearchService(playerRepo, cfg.SearchCategoryLimit)
	rosterService := service.NewRosterService(clubRepo, playerRepo, attrRepo, contractRepo)
	clubService := service.NewClubService(clubRepo)
	nationalityService := service.NewNationalityService(nationalityRepo)
	userService := service.NewUserService(userRepo)

	// Initialize auth
	authService := auth.NewService(cfg, userRepo)
	authHandler := auth.NewHandler(authService)
	authMiddleware := auth.NewMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	playerHandler := handlers.NewPlayerHandler(playerService, attrService, searchService)
	clubHandler := handlers.NewClubHandler(clubService, rosterService)
	nationalityHandler := handlers.NewNationalityHandler(nationalityService)
	contractHandler := handlers.NewContractHandler(contractService, transferService)
	transferHandler := handlers.NewTransferHandler(transferService)
	userHandler := handlers.NewUserHandler(userService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Auth routes
	router.POST("/register", authHandler.Register)
	router.POST("/login", authHandler.Login)

	// API v1 routes: reads are public, mutations and user administration
	// require the admin role
	v1 := router.Group("/api/v1")
	admin := router.Group("/api/v1")
	admin.Use(authMiddleware.RequireAdmin())

	{
		// Player routes
		players := v1.Group("/players")
		{
			players.GET("", playerHandler.ListPlayers)
			players.GET("/search", playerHandler.SearchPlayers)
			players.GET("/:id", playerHandler.GetPlayer)
			players.GET("/:id/contracts", contractHandler.GetPlayerContracts)
			players.GET("/:id/contracts/open", contractHandler.GetPlayerOpenContracts)
		}
		admin.POST("/players", playerHandler.CreatePlayer)
		admin.PATCH("/players/:id", playerHandler.UpdatePlayer)
		admin.DELETE("/players/:id", playerHandler.DeletePlayer)

		// Club routes
		clubs := v1.Group("/clubs")
		{
			clubs.GET("", clubHandler.ListClubs)
			clubs.GET("/:id", clubHandler.GetClub)
			clubs.GET("/:id/roster", clubHandler.GetClubRoster)
		}

		// Nationality routes
		nationalities := v1.Group("/nationalities")
		{
			nationalities.GET("", nationalityHandler.ListNationalities)
			nationalities.GET("/:id", nationalityHandler.GetNationality)
		}

		// Contract routes
		v1.GET("/contracts", contractHandler.ListContracts)
		admin.POST("/contracts", contractHandler.CreateInitialContract)

		// Transfer routes
		admin.POST("/transfers", transferHandler.CreateTransfer)

		// User administration routes
		admin.GET("/users", userHandler.ListUsers)
	}

	return router
}
