package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/starkspartacus/job-sub000/internal/delivery/http/response"
	"github.com/starkspartacus/job-sub000/internal/domain"
	"github.com/starkspartacus/job-sub000/internal/wizard"
	"github.com/starkspartacus/job-sub000/pkg/apperror"
)

// CookieConfig controls the session cookie set on login and registration.
type CookieConfig struct {
	Name   string
	Secure bool
}

type AuthHandler struct {
	authUC domain.AuthUsecase
	cookie CookieConfig
}

// NewAuthHandler registers the auth routes. authLimit guards login and registration.
func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, cookie CookieConfig, authLimit gin.HandlerFunc) {
	handler := &AuthHandler{
		authUC: authUC,
		cookie: cookie,
	}

	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/register/validate", handler.ValidateStep)
		publicAuth.POST("/register", authLimit, handler.Register)
		publicAuth.POST("/login", authLimit, handler.Login)
		publicAuth.POST("/logout", handler.Logout)
	}

	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.GET("/me", handler.Me)
	}
}

// ValidateStepRequest is the accumulated form plus the step being submitted.
type ValidateStepRequest struct {
	Step int `json:"step"`
	domain.RegistrationRequest
}

// StepResult tells the client where the wizard goes next.
type StepResult struct {
	Step     int    `json:"step"`
	NextStep int    `json:"next_step"`
	Done     bool   `json:"done"`
	Name     string `json:"name"`
}

// ValidateStep godoc
// @Summary      Validate one registration step
// @Description  Checks the fields owned by a step (1 account, 2 profile, 3 confirmation) without creating anything.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        form  body      ValidateStepRequest  true  "Step number and form so far"
// @Success      200   {object}  response.Response{data=StepResult}
// @Failure      400   {object}  response.Response
// @Router       /auth/register/validate [post]
func (h *AuthHandler) ValidateStep(c *gin.Context) {
	var req ValidateStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	step := wizard.Step(req.Step)
	if !step.Valid() {
		c.Error(apperror.Validation("Étape inconnue", map[string]string{"step": "Étape : doit être 1, 2 ou 3"}))
		return
	}

	w := wizard.Resume(step)
	if errs := w.Advance(&req.RegistrationRequest); len(errs) > 0 {
		c.Error(apperror.Validation(fmt.Sprintf("Étape %d : certains champs sont invalides", step), errs))
		return
	}

	response.Success(c, http.StatusOK, "Étape valide", StepResult{
		Step:     int(step),
		NextStep: int(w.Current()),
		Done:     w.Done(),
		Name:     step.String(),
	})
}

// Register godoc
// @Summary      User Registration
// @Description  Creates the account and its candidate or employer profile from the full wizard payload, then opens a session.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      domain.RegistrationRequest  true  "Registration form"
// @Success      201       {object}  response.Response{data=domain.AuthResult}
// @Failure      400       {object}  response.Response
// @Failure      409       {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	result, err := h.authUC.Register(c, &req)
	if err != nil {
		c.Error(err)
		return
	}

	h.setSessionCookie(c, result.Token, result.ExpiresAt)
	response.Success(c, http.StatusCreated, "Compte créé", result)
}

// Login godoc
// @Summary      User Login
// @Description  Authenticates with email or phone and password. Returns the token, the user and where to redirect.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      domain.LoginRequest  true  "Credentials"
// @Success      200          {object}  response.Response{data=domain.AuthResult}
// @Failure      401          {object}  response.Response
// @Failure      429          {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindError(err))
		return
	}

	meta := domain.LoginMeta{
		IP:        c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
		RequestID: c.GetString(string(domain.KeyRequestID)),
	}
	result, err := h.authUC.Login(c, &req, meta)
	if err != nil {
		c.Error(err)
		return
	}

	h.setSessionCookie(c, result.Token, result.ExpiresAt)
	response.Success(c, http.StatusOK, "Connexion réussie", result)
}

// Logout godoc
// @Summary      Logout
// @Description  Clears the session cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	response.Success(c, http.StatusOK, "Déconnecté", nil)
}

// Me godoc
// @Summary      Get current user
// @Description  Get the currently logged-in user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.User}
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authUC.GetCurrentUser(c, currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Utilisateur courant", gin.H{
		"user":        user,
		"redirect_to": domain.DashboardPath(user.Role),
	})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	if maxAge < 1 {
		maxAge = 1
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, token, maxAge, "/", "", h.cookie.Secure, true)
}
