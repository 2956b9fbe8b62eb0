package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ringsidehq/ringside/config"
	"github.com/ringsidehq/ringside/internal/auth"
	"github.com/ringsidehq/ringside/internal/event"
	"github.com/ringsidehq/ringside/internal/manager"
	"github.com/ringsidehq/ringside/internal/match"
	"github.com/ringsidehq/ringside/internal/referee"
	"github.com/ringsidehq/ringside/internal/stable"
	"github.com/ringsidehq/ringside/internal/tagteam"
	"github.com/ringsidehq/ringside/internal/title"
	"github.com/ringsidehq/ringside/internal/venue"
	"github.com/ringsidehq/ringside/internal/wrestler"
)

func SetupRoutes(appConfig *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "ringside", "docs": "/swagger/index.html"})
	})

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	db := config.DB
	jwtSecret := appConfig.JWT.AccessTokenSecret

	api := r.Group("/api")
	auth.RegisterAuthRoutes(api, db, appConfig)

	wrestler.WrestlerRoutes(api, db, jwtSecret)
	tagteam.TagTeamRoutes(api, db, jwtSecret)
	manager.ManagerRoutes(api, db, jwtSecret)
	referee.RefereeRoutes(api, db, jwtSecret)
	title.TitleRoutes(api, db, jwtSecret)
	stable.StableRoutes(api, db, jwtSecret)
	venue.VenueRoutes(api, db, jwtSecret)
	event.EventRoutes(api, db, jwtSecret)
	match.MatchRoutes(api, db, jwtSecret)

	return r
}
