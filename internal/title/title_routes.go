package title

import (
	"github.com/gin-gonic/gin"
	"github.com/ringsidehq/ringside/internal/championship"
	"github.com/ringsidehq/ringside/internal/lifecycle"
	mw "github.com/ringsidehq/ringside/internal/middleware"
	"github.com/ringsidehq/ringside/pkg/rmiddleware"
	"gorm.io/gorm"
)

// TitleRoutes sets up all title-related routes.
func TitleRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	periods := lifecycle.NewPeriodRepository(db)
	status := lifecycle.NewStatus(periods)
	controller := NewTitleController(
		db,
		NewTitleRepository(db),
		championship.NewChampionshipRepository(db),
		status,
		lifecycle.NewTransitions(periods),
	)

	// Public title views
	router.GET("/titles", controller.GetAllTitles)
	router.GET("/titles/:title_id", controller.GetTitleByID)
	router.GET("/titles/:title_id/status", controller.GetTitleStatus)
	router.GET("/titles/:title_id/championships", controller.GetTitleChampionships)
	router.GET("/titles/:title_id/championships/longest", controller.GetLongestReign)

	// Admin title management
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.POST("/titles", controller.CreateTitle)
		adminRoutes.PUT("/titles/:title_id", controller.UpdateTitle)
		adminRoutes.DELETE("/titles/:title_id", controller.DeleteTitle)

		adminRoutes.POST("/titles/:title_id/debut", controller.DebutTitle)
		adminRoutes.POST("/titles/:title_id/pull", controller.PullTitle)
		adminRoutes.POST("/titles/:title_id/retire", controller.RetireTitle)
		adminRoutes.POST("/titles/:title_id/unretire", controller.UnretireTitle)

		adminRoutes.POST("/titles/:title_id/award", controller.AwardTitle)
		adminRoutes.POST("/titles/:title_id/vacate", controller.VacateTitle)
	}
}
