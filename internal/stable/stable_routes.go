package stable

import (
	"github.com/gin-gonic/gin"
	"github.com/ringsidehq/ringside/internal/lifecycle"
	"github.com/ringsidehq/ringside/internal/membership"
	mw "github.com/ringsidehq/ringside/internal/middleware"
	"github.com/ringsidehq/ringside/pkg/rmiddleware"
	"gorm.io/gorm"
)

// StableRoutes sets up all stable-related routes.
func StableRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	periods := lifecycle.NewPeriodRepository(db)
	controller := NewStableController(
		db,
		NewStableRepository(db),
		membership.NewMembershipRepository(db),
		lifecycle.NewStatus(periods),
		lifecycle.NewTransitions(periods),
	)

	// Public stable views
	router.GET("/stables", controller.GetAllStables)
	router.GET("/stables/:stable_id", controller.GetStableByID)
	router.GET("/stables/:stable_id/status", controller.GetStableStatus)
	router.GET("/stables/:stable_id/members", controller.GetStableMembers)
	router.GET("/stables/:stable_id/members/history", controller.GetStableMemberHistory)

	// Admin stable management
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.POST("/stables", controller.CreateStable)
		adminRoutes.PUT("/stables/:stable_id", controller.UpdateStable)
		adminRoutes.DELETE("/stables/:stable_id", controller.DeleteStable)
		adminRoutes.PUT("/stables/:stable_id/members", controller.SyncStableMembers)

		adminRoutes.POST("/stables/:stable_id/form", controller.FormStable)
		adminRoutes.POST("/stables/:stable_id/disband", controller.DisbandStable)
		adminRoutes.POST("/stables/:stable_id/retire", controller.RetireStable)
		adminRoutes.POST("/stables/:stable_id/unretire", controller.UnretireStable)
	}
}
