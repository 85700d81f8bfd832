package controllers

import (
	"net/http"
	"time"

	"github.com/Mayank-kush24/Consolidated-Dahsboards/api/models"
	"github.com/Mayank-kush24/Consolidated-Dahsboards/api/transport"
	"github.com/Mayank-kush24/Consolidated-Dahsboards/auth"
	"github.com/Mayank-kush24/Consolidated-Dahsboards/logging"
	"github.com/Mayank-kush24/Consolidated-Dahsboards/storage"
	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

type AuthController struct {
	users    *auth.UserStore
	sessions storage.SessionStorage
}

func NewAuthController(users *auth.UserStore, sessions storage.SessionStorage) *AuthController {
	return &AuthController{
		users:    users,
		sessions: sessions,
	}
}

func (c *AuthController) RegisterRoutes(engine *gin.Engine) {
	group := engine.Group("/api/auth")

	group.POST("/login", c.login)
	group.POST("/logout", transport.SessionAuthMiddleware(c.sessions), c.logout)
	group.GET("/session", transport.SessionAuthMiddleware(c.sessions), c.session)
}

// login godoc
// @Summary Log in with username and password
// @Description Verifies credentials and returns a session token plus the role's permissions
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request format"
// @Failure 401 {object} models.ErrorResponse "Wrong username or password"
// @Failure 500 {object} models.ErrorResponse "Unexpected internal error"
// @Router /api/auth/login [post]
func (c *AuthController) login(g *gin.Context) {
	var req models.LoginRequest
	if err := g.ShouldBindJSON(&req); err != nil {
		g.JSON(http.StatusBadRequest, &models.ErrorResponse{Error: "invalid request format"})
		return
	}

	ok, role := c.users.VerifyLogin(req.Username, req.Password)
	if !ok {
		logging.Log.Warnf("AUTH: failed login for %q", auth.NormalizeUsername(req.Username))
		g.JSON(http.StatusUnauthorized, &models.ErrorResponse{Error: "wrong username or password"})
		return
	}

	token, err := gonanoid.New()
	if err != nil {
		logging.Log.Errorf("AUTH: failed to generate session token: %v", err)
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not create session"})
		return
	}

	session := &storage.Session{
		Token:     token,
		User:      auth.NormalizeUsername(req.Username),
		Role:      string(role),
		CreatedAt: time.Now().UTC(),
	}
	if err := c.sessions.Put(g.Request.Context(), session); err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not create session"})
		return
	}

	logging.Log.Infof("AUTH: %s logged in as %s", session.User, role)
	g.JSON(http.StatusOK, &models.LoginResponse{
		Token:       token,
		User:        session.User,
		Role:        string(role),
		Permissions: auth.Permissions(role),
	})
}

// logout godoc
// @Summary Log out
// @Description Deletes the session behind the x-session-token header
// @Tags auth
// @Produce json
// @Security SessionToken
// @Success 200 {object} models.MessageResponse
// @Failure 401 {object} models.ErrorResponse "Missing or invalid session token"
// @Failure 500 {object} models.ErrorResponse "Unexpected internal error"
// @Router /api/auth/logout [post]
func (c *AuthController) logout(g *gin.Context) {
	token := g.GetHeader(transport.SessionTokenHeader)
	if err := c.sessions.Delete(g.Request.Context(), token); err != nil {
		g.JSON(http.StatusInternalServerError, &models.ErrorResponse{Error: "could not delete session"})
		return
	}
	g.JSON(http.StatusOK, &models.MessageResponse{Message: "logged out"})
}

// session godoc
// @Summary Describe the current session
// @Description Returns the user, role and permissions for the x-session-token header
// @Tags auth
// @Produce json
// @Security SessionToken
// @Success 200 {object} models.SessionResponse
// @Failure 401 {object} models.ErrorResponse "Missing or invalid session token"
// @Router /api/auth/session [get]
func (c *AuthController) session(g *gin.Context) {
	user := g.GetString(transport.ContextUserKey)
	role := g.MustGet(transport.ContextRoleKey).(auth.Role)

	g.JSON(http.StatusOK, &models.SessionResponse{
		User:        user,
		Role:        string(role),
		Permissions: auth.Permissions(role),
	})
}
