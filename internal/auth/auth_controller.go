package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ringsidehq/ringside/config"
	"github.com/ringsidehq/ringside/internal/middleware"
	"github.com/ringsidehq/ringside/internal/user"
	"github.com/ringsidehq/ringside/pkg/responses"
	"github.com/ringsidehq/ringside/pkg/token"
	"github.com/ringsidehq/ringside/utils"
)

type AuthController struct {
	repo AuthRepository
	cfg  *config.Config
}

func NewAuthController(repo AuthRepository, cfg *config.Config) *AuthController {
	return &AuthController{repo: repo, cfg: cfg}
}

func (c *AuthController) issueTokens(u *user.User) (*AuthResponse, error) {
	roles := make([]string, 0, len(u.Roles))
	for _, role := range u.Roles {
		roles = append(roles, role.Name)
	}

	accessExpiry := time.Duration(c.cfg.JWT.AccessTokenExpiryMinutes) * time.Minute
	accessToken, err := token.GenerateJWT(u.ID, roles, c.cfg.JWT.AccessTokenSecret, accessExpiry)
	if err != nil {
		return nil, err
	}

	refreshExpiry := time.Duration(c.cfg.JWT.RefreshTokenExpiryDays) * 24 * time.Hour
	refreshToken, err := token.GenerateJWT(u.ID, nil, c.cfg.JWT.RefreshTokenSecret, refreshExpiry)
	if err != nil {
		return nil, err
	}
	if err := c.repo.SaveRefreshToken(&user.RefreshToken{
		UserID:    u.ID,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(refreshExpiry),
	}); err != nil {
		return nil, err
	}

	return &AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         FilterUserRecord(u),
	}, nil
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Registration details"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} responses.ErrorResponse
// @Failure 409 {object} responses.ErrorResponse
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var input RegisterRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}

	existing, err := c.repo.GetUserByEmail(input.Email)
	if err != nil {
		responses.InternalServerError(ctx, "failed to check email: "+err.Error())
		return
	}
	if existing != nil {
		responses.SendError(ctx, http.StatusConflict, "email already registered")
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		responses.InternalServerError(ctx, "failed to hash password: "+err.Error())
		return
	}

	u := &user.User{
		Username: input.Username,
		Email:    input.Email,
		Password: hashed,
	}
	if err := c.repo.CreateUser(u); err != nil {
		responses.InternalServerError(ctx, "failed to create user: "+err.Error())
		return
	}
	// New accounts start as bookers; admins are promoted out of band.
	if err := c.repo.AssignRoleToUser(u.ID, "booker"); err != nil {
		responses.InternalServerError(ctx, "failed to assign role: "+err.Error())
		return
	}

	u, err = c.repo.GetUserByID(u.ID)
	if err != nil || u == nil {
		responses.InternalServerError(ctx, "failed to reload user")
		return
	}
	resp, err := c.issueTokens(u)
	if err != nil {
		responses.InternalServerError(ctx, "failed to issue tokens: "+err.Error())
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} responses.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var input LoginRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}

	u, err := c.repo.GetUserByEmail(input.Email)
	if err != nil {
		responses.InternalServerError(ctx, "failed to load user: "+err.Error())
		return
	}
	if u == nil || !utils.CheckPassword(u.Password, input.Password) {
		responses.Unauthorized(ctx, "invalid email or password")
		return
	}

	resp, err := c.issueTokens(u)
	if err != nil {
		responses.InternalServerError(ctx, "failed to issue tokens: "+err.Error())
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// RefreshToken godoc
// @Summary Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param refresh body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} responses.ErrorResponse
// @Router /auth/refresh-token [post]
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var input RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		responses.BadRequest(ctx, err.Error())
		return
	}

	claims, err := token.ValidateJWT(input.RefreshToken, c.cfg.JWT.RefreshTokenSecret)
	if err != nil {
		responses.Unauthorized(ctx, "invalid refresh token: "+err.Error())
		return
	}
	stored, err := c.repo.GetRefreshToken(input.RefreshToken)
	if err != nil {
		responses.InternalServerError(ctx, "failed to load refresh token: "+err.Error())
		return
	}
	if stored == nil || stored.UserID != claims.UserID {
		responses.Unauthorized(ctx, "refresh token is revoked or unknown")
		return
	}

	u, err := c.repo.GetUserByID(claims.UserID)
	if err != nil {
		responses.InternalServerError(ctx, "failed to load user: "+err.Error())
		return
	}
	if u == nil {
		responses.Unauthorized(ctx, "user no longer exists")
		return
	}

	// Rotate: the presented token is single-use.
	if err := c.repo.InvalidateRefreshToken(input.RefreshToken); err != nil {
		responses.InternalServerError(ctx, "failed to rotate refresh token: "+err.Error())
		return
	}
	resp, err := c.issueTokens(u)
	if err != nil {
		responses.InternalServerError(ctx, "failed to issue tokens: "+err.Error())
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetProfile godoc
// @Summary Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} UserResponse
// @Failure 401 {object} responses.ErrorResponse
// @Router /auth/me [get]
// @Security Bearer
func (c *AuthController) GetProfile(ctx *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		responses.Unauthorized(ctx, err.Error())
		return
	}
	u, err := c.repo.GetUserByID(userID)
	if err != nil {
		responses.InternalServerError(ctx, "failed to load user: "+err.Error())
		return
	}
	if u == nil {
		responses.NotFound(ctx, "user")
		return
	}
	ctx.JSON(http.StatusOK, FilterUserRecord(u))
}

// Logout godoc
// @Summary Invalidate the user's refresh tokens
// @Tags auth
// @Success 204 "logged out"
// @Router /auth/logout [post]
// @Security Bearer
func (c *AuthController) Logout(ctx *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(ctx)
	if err != nil {
		responses.Unauthorized(ctx, err.Error())
		return
	}
	if err := c.repo.InvalidateAllRefreshTokensForUser(userID); err != nil {
		responses.InternalServerError(ctx, "failed to invalidate sessions: "+err.Error())
		return
	}
	ctx.Status(http.StatusNoContent)
}
