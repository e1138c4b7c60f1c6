package routes

import (
	"context"

	"gradproject-teams/internal/api/handlers"
	"gradproject-teams/internal/api/middleware"
	"gradproject-teams/internal/config"
	"gradproject-teams/internal/logger"
	"gradproject-teams/internal/repository"
	"gradproject-teams/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. Background
// work started here stops when ctx is done.
func SetupRoutes(ctx context.Context, db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	validator := validator.New()
	repos := repository.NewRepositories(db)

	var directory service.DirectoryInterface
	if cfg.LDAPEnabled() {
		directory = service.NewLDAPDirectory(cfg)
	} else {
		logger.Component("routes").Info("LDAP host not configured, student names come from the database only")
	}

	teamService := service.NewTeamService(repos, directory, validator, cfg.MaxTeamSize)
	invitationService := service.NewInvitationService(repos, validator, cfg.MaxTeamSize)
	ideaService := service.NewIdeaService(repos, validator)

	healthHandler := handlers.NewHealthHandler(db, cfg.LDAPEnabled())
	teamHandler := handlers.NewTeamHandler(teamService)
	invitationHandler := handlers.NewInvitationHandler(invitationService)
	ideaHandler := handlers.NewIdeaHandler(ideaService)
	profileHandler := handlers.NewProfileHandler(teamService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	api := router.Group("/api")
	if cfg.RateLimitRPS > 0 {
		api.Use(middleware.NewRateLimiter(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst).Middleware())
	}
	if cfg.AuthEnabled {
		api.Use(middleware.NewAuthenticator(cfg.JWTSecret).RequireAuth())
	}

	{
		team := api.Group("/team")
		{
			team.POST("/get-student", teamHandler.GetStudent)
			team.POST("/sync", teamHandler.SyncTeam)
			team.POST("/remove-member", teamHandler.RemoveMember)
			team.POST("/update-leader", teamHandler.UpdateLeader)
			team.GET("/invitations", invitationHandler.ListInvitations)
			team.POST("/accept-invitation", invitationHandler.AcceptInvitation)
			team.POST("/reject-invitation", invitationHandler.RejectInvitation)
		}

		group := api.Group("/group")
		{
			group.POST("/agree-idea", ideaHandler.AgreeIdea)
			group.POST("/remove-agreement", ideaHandler.RemoveAgreement)
		}

		profile := api.Group("/profile")
		{
			profile.POST("/get", profileHandler.GetProfile)
			profile.POST("/update-idea-visibility", ideaHandler.UpdateVisibility)
		}
	}

	return router
}
