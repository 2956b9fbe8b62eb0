package manager

import (
	"github.com/gin-gonic/gin"
	"github.com/ringsidehq/ringside/internal/lifecycle"
	mw "github.com/ringsidehq/ringside/internal/middleware"
	"github.com/ringsidehq/ringside/pkg/rmiddleware"
	"gorm.io/gorm"
)

// ManagerRoutes sets up all manager-related routes.
func ManagerRoutes(router *gin.RouterGroup, db *gorm.DB, jwtSecret string) {
	periods := lifecycle.NewPeriodRepository(db)
	controller := NewManagerController(
		NewManagerRepository(db),
		lifecycle.NewStatus(periods),
		lifecycle.NewTransitions(periods),
	)

	router.GET("/managers", controller.GetAllManagers)
	router.GET("/managers/:manager_id", controller.GetManagerByID)
	router.GET("/managers/:manager_id/status", controller.GetManagerStatus)

	adminRoutes := router.Group("/admin")
	adminRoutes.Use(mw.AuthMiddleware(jwtSecret, db))
	adminRoutes.Use(rmiddleware.AdminMiddleware())
	{
		adminRoutes.POST("/managers", controller.CreateManager)
		adminRoutes.PUT("/managers/:manager_id", controller.UpdateManager)
		adminRoutes.DELETE("/managers/:manager_id", controller.DeleteManager)

		adminRoutes.POST("/managers/:manager_id/employ", controller.EmployManager)
		adminRoutes.POST("/managers/:manager_id/release", controller.ReleaseManager)
		adminRoutes.POST("/managers/:manager_id/suspend", controller.SuspendManager)
		adminRoutes.POST("/managers/:manager_id/reinstate", controller.ReinstateManager)
		adminRoutes.POST("/managers/:manager_id/injure", controller.InjureManager)
		adminRoutes.POST("/managers/:manager_id/heal", controller.HealManager)
		adminRoutes.POST("/managers/:manager_id/retire", controller.RetireManager)
		adminRoutes.POST("/managers/:manager_id/unretire", controller.UnretireManager)
	}
}
