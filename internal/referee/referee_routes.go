package referee

import (
	"github.com/gin-gonic/gin"
	"github.com/ringsidehq/ringside/internal/lifecycle"
	mw "github.com/ringsidehq/ringside/internal/middleware"
	"github.com/ringsidehq/ringside/pkg/rmiddleware"
	"gorm.io/gorm"
)

// RefereeRoutes sets up all referee-related routes.
func RefereeRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	periods := lifecycle.NewPeriodRepository(db)
	controller := NewRefereeController(
		NewRefereeRepository(db),
		lifecycle.NewStatus(periods),
		lifecycle.NewTransitions(periods),
	)

	router.GET("/referees", controller.GetAllReferees)
	router.GET("/referees/:referee_id", controller.GetRefereeByID)
	router.GET("/referees/:referee_id/status", controller.GetRefereeStatus)

	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.POST("/referees", controller.CreateReferee)
		adminRoutes.PUT("/referees/:referee_id", controller.UpdateReferee)
		adminRoutes.DELETE("/referees/:referee_id", controller.DeleteReferee)

		adminRoutes.POST("/referees/:referee_id/employ", controller.EmployReferee)
		adminRoutes.POST("/referees/:referee_id/release", controller.ReleaseReferee)
		adminRoutes.POST("/referees/:referee_id/suspend", controller.SuspendReferee)
		adminRoutes.POST("/referees/:referee_id/reinstate", controller.ReinstateReferee)
		adminRoutes.POST("/referees/:referee_id/injure", controller.InjureReferee)
		adminRoutes.POST("/referees/:referee_id/heal", controller.HealReferee)
		adminRoutes.POST("/referees/:referee_id/retire", controller.RetireReferee)
		adminRoutes.POST("/referees/:referee_id/unretire", controller.UnretireReferee)
	}
}
