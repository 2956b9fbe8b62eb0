package match

import (
	"github.com/gin-gonic/gin"
	"github.com/ringsidehq/ringside/internal/event"
	mw "github.com/ringsidehq/ringside/internal/middleware"
	"github.com/ringsidehq/ringside/internal/referee"
	"github.com/ringsidehq/ringside/internal/tagteam"
	"github.com/ringsidehq/ringside/internal/title"
	"github.com/ringsidehq/ringside/internal/wrestler"
	"github.com/ringsidehq/ringside/pkg/rmiddleware"
	"gorm.io/gorm"
)

// MatchRoutes sets up all match-related routes.
func MatchRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	repo := NewMatchRepository(db)
	booker := NewBooker(
		repo,
		wrestler.NewWrestlerRepository(db),
		tagteam.NewTagTeamRepository(db),
		referee.NewRefereeRepository(db),
		title.NewTitleRepository(db),
	)
	controller := NewMatchController(repo, booker, event.NewEventRepository(db))

	// Public card views
	router.GET("/events/:event_id/matches", controller.GetEventCard)
	router.GET("/matches/:match_id", controller.GetMatchByID)
	router.GET("/match-types", controller.GetAllMatchTypes)

	// Admin booking
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.POST("/events/:event_id/matches", controller.BookMatch)
		adminRoutes.DELETE("/matches/:match_id", controller.DeleteMatch)
		adminRoutes.POST("/match-types", controller.CreateMatchType)
	}
}
