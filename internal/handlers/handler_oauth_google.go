package handlers

import (
	"log/slog"
	"net/http"

	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
	portssvc "github.com/mcodevbytes/finance_dashboard_app/internal/core/ports/services"
	"github.com/mcodevbytes/finance_dashboard_app/internal/dto"
	"github.com/mcodevbytes/finance_dashboard_app/internal/middleware"
	"github.com/mcodevbytes/finance_dashboard_app/internal/platform/config"
	"github.com/gin-gonic/gin"
)

const oauthStateCookieName = "oauth_state"

// GoogleAuthHandler handles the Google OAuth sign-in flow.
type GoogleAuthHandler struct {
	oauthService portssvc.GoogleOAuthHandlerSvcFacade
	userService  portssvc.UserSvcFacade
	authHandler  *AuthHandler
	cfg          *config.Config
}

// registerGoogleAuthRoutes sets up the routes for Google OAuth.
func registerGoogleAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer, authHandler *AuthHandler) {
	h := &GoogleAuthHandler{
		oauthService: services.GoogleOAuthHandler,
		userService:  services.User,
		authHandler:  authHandler,
		cfg:          cfg,
	}

	google := rg.Group("/google")
	{
		google.GET("/login", h.Login)
		google.GET("/callback", h.Callback)
		google.POST("/token", h.TokenSignIn)
	}
}

// Login godoc
// @Summary Begin Google sign-in
// @Description Redirects the user to the Google consent screen.
// @Tags auth
// @Success 307
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/login [get]
func (h *GoogleAuthHandler) Login(c *gin.Context) {
	state, err := h.oauthService.GenerateStateString(c.Request.Context())
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start Google sign-in"})
		return
	}

	// State round-trips via a short-lived cookie for CSRF protection
	c.SetCookie(oauthStateCookieName, state, 300, "/", "", h.cfg.IsProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.oauthService.GetGoogleLoginURL(c.Request.Context(), state))
}

// Callback godoc
// @Summary Google sign-in callback
// @Description Handles the OAuth redirect from Google and signs the user in.
// @Tags auth
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "CSRF state"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/callback [get]
func (h *GoogleAuthHandler) Callback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	expectedState, err := c.Cookie(oauthStateCookieName)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		logger.Warn("OAuth state mismatch")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid OAuth state"})
		return
	}
	c.SetCookie(oauthStateCookieName, "", -1, "/", "", h.cfg.IsProduction, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Authorization code required"})
		return
	}

	token, err := h.oauthService.ExchangeCodeForToken(c.Request.Context(), code)
	if err != nil {
		logger.Error("Failed to exchange OAuth code", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Google sign-in failed"})
		return
	}

	userInfo, err := h.oauthService.GetUserInfo(c.Request.Context(), token)
	if err != nil {
		logger.Error("Failed to fetch Google user info", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Google sign-in failed"})
		return
	}

	h.signInGoogleUser(c, *userInfo)
}

// TokenSignIn godoc
// @Summary Google ID token sign-in
// @Description Signs the user in with a Google ID token obtained client-side.
// @Tags auth
// @Accept json
// @Produce json
// @Param token body dto.GoogleCallbackRequest true "Google ID token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/google/token [post]
func (h *GoogleAuthHandler) TokenSignIn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.GoogleCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	payload, err := h.oauthService.ValidateGoogleIDToken(c.Request.Context(), req.IDToken)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid Google ID token"})
		return
	}

	info := googleUserInfoFromPayload(payload.Claims)
	h.signInGoogleUser(c, info)
}

// signInGoogleUser resolves the account and issues the token pair.
func (h *GoogleAuthHandler) signInGoogleUser(c *gin.Context, info domain.GoogleUserInfo) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	user, err := h.userService.FindOrCreateFromGoogle(c.Request.Context(), info)
	if err != nil {
		logger.Error("Failed to resolve Google user", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Google sign-in failed"})
		return
	}

	accessToken, expiresAt, err := h.authHandler.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate access token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	refreshToken, refreshExpiry, err := h.authHandler.tokenService.GenerateRefreshToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to generate refresh token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}
	if err := h.userService.StoreRefreshToken(c.Request.Context(), user.UserID, refreshToken, refreshExpiry); err != nil {
		logger.Error("Failed to store refresh token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	h.authHandler.setRefreshCookie(c, refreshToken)
	c.JSON(http.StatusOK, dto.ToLoginResponse(user, accessToken, expiresAt))
}

// googleUserInfoFromPayload maps ID token claims onto the userinfo shape.
func googleUserInfoFromPayload(claims map[string]interface{}) domain.GoogleUserInfo {
	info := domain.GoogleUserInfo{}
	if v, ok := claims["sub"].(string); ok {
		info.ID = v
	}
	if v, ok := claims["email"].(string); ok {
		info.Email = v
	}
	if v, ok := claims["email_verified"].(bool); ok {
		info.VerifiedEmail = v
	}
	if v, ok := claims["name"].(string); ok {
		info.Name = v
	}
	if v, ok := claims["picture"].(string); ok {
		info.Picture = v
	}
	return info
}
