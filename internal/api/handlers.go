package api

import (
	"errors"
	"net/http"

	"github.com/CodeDreamers777/assettone-console/internal/assettone"
	"github.com/CodeDreamers777/assettone-console/internal/forms"
	"github.com/CodeDreamers777/assettone-console/internal/models"
	"github.com/CodeDreamers777/assettone-console/internal/rbac"
	"github.com/CodeDreamers777/assettone-console/internal/session"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handler wires each screen to the resource client and the session store.
type Handler struct {
	client *assettone.Client
	store  *session.Store
	logger *logrus.Logger
}

func NewHandler(client *assettone.Client, store *session.Store, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return &Handler{
		client: client,
		store:  store,
		logger: logger,
	}
}

// respondError maps a failure to the toast the screen shows: the server's
// own message and status when we have them, a generic fallback otherwise.
func (h *Handler) respondError(c *gin.Context, err error) {
	var apiErr *assettone.APIError
	if errors.As(err, &apiErr) {
		body := gin.H{"error": apiErr.Message}
		if len(apiErr.Fields) > 0 {
			body["fields"] = apiErr.Fields
		}
		c.JSON(apiErr.StatusCode, body)
		return
	}
	h.logger.WithError(err).Error("Request to API failed")
	c.JSON(http.StatusBadGateway, gin.H{"error": "Unable to reach the Assettone service"})
}

// bindForm binds the JSON body into form and validates it. On failure it
// writes the field errors and reports false; no upstream request happens.
func (h *Handler) bindForm(c *gin.Context, form any) bool {
	if err := c.ShouldBindJSON(form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return false
	}
	if errs := forms.Validate(form); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": errs})
		return false
	}
	return true
}

// requireAction gates a mutation on the permission matrix for the current
// session's role and flags.
func (h *Handler) requireAction(c *gin.Context, action rbac.Action) bool {
	sess, err := h.store.Current()
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		return false
	}
	if !rbac.Allowed(sess.UserType, sess.Permissions, action) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't have permission to perform this action"})
		return false
	}
	return true
}

// Home bounces authenticated operators into the dashboard and everyone
// else to the login screen.
func (h *Handler) Home(c *gin.Context) {
	if h.store.IsAuthenticated() {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

// LoginScreen only exists to be redirected away from when already logged in;
// the guard middleware handles that. For everyone else it reports readiness.
func (h *Handler) LoginScreen(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"screen": "login"})
}

func (h *Handler) Login(c *gin.Context) {
	var form forms.LoginForm
	if !h.bindForm(c, &form) {
		return
	}

	resp, err := h.client.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		h.respondError(c, err)
		return
	}

	sess := session.Session{
		AccessToken:  resp.Tokens.Access,
		RefreshToken: resp.Tokens.Refresh,
		Username:     resp.Username,
		UserType:     resp.Profile.UserType,
		Permissions:  resp.Profile.Permissions,
		LastSession:  resp.LastSession,
	}
	if err := h.store.Save(sess); err != nil {
		h.logger.WithError(err).Error("Failed to persist session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Login successful",
		"username":     resp.Username,
		"user_type":    resp.Profile.UserType,
		"last_session": resp.LastSession,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.store.Clear(); err != nil {
		h.logger.WithError(err).Error("Failed to clear session")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *Handler) SignUp(c *gin.Context) {
	var form forms.SignUpForm
	if !h.bindForm(c, &form) {
		return
	}

	resp, err := h.client.Register(c.Request.Context(), assettone.Registration{
		Username:             form.Username,
		FirstName:            form.FirstName,
		LastName:             form.LastName,
		Email:                form.Email,
		PhoneNumber:          form.PhoneNumber,
		Password:             form.Password,
		IdentificationType:   form.IdentificationType,
		IdentificationNumber: form.IdentificationNumber,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  resp.Message,
		"username": resp.Username,
	})
}

func (h *Handler) Profile(c *gin.Context) {
	profile, err := h.client.Profile(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	updated, err := h.client.UpdateProfile(c.Request.Context(), fields)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated_fields": updated})
}

func (h *Handler) ChangePassword(c *gin.Context) {
	var form forms.ChangePasswordForm
	if !h.bindForm(c, &form) {
		return
	}
	if err := h.client.ChangePassword(c.Request.Context(), form.OldPassword, form.NewPassword); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password changed"})
}

// Dashboard serves the overview metrics plus the session context the shell
// renders (who is logged in, what they may do).
func (h *Handler) Dashboard(c *gin.Context) {
	sess, err := h.store.Current()
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
		return
	}

	metrics, err := h.client.DashboardMetrics(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"username":     sess.Username,
		"user_type":    sess.UserType,
		"last_session": sess.LastSession,
		"metrics":      metrics,
	})
}

func (h *Handler) currentRole() models.UserType {
	sess, err := h.store.Current()
	if err != nil {
		return ""
	}
	return sess.UserType
}
