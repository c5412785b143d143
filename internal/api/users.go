package api

import (
	"errors"
	"fmt"
	"net/http"

	"sisventas/internal/models"
	"sisventas/internal/session"
	"sisventas/internal/store"
	"sisventas/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// registerForm renders the empty registration form
func (h *Handler) registerForm(c *gin.Context) {
	h.render(c, "registro.html", nil)
}

// register creates a new account. A duplicate email maps to the
// "already taken" notice and a form re-render; any other storage
// failure is unhandled.
func (h *Handler) register(c *gin.Context) {
	user := &models.User{
		Name:     c.PostForm("nombre"),
		Email:    c.PostForm("correo"),
		Password: c.PostForm("password"),
	}

	err := h.store.CreateUser(c.Request.Context(), user)
	switch {
	case errors.Is(err, store.ErrEmailTaken):
		util.RegistrationsTotal.WithLabelValues("taken").Inc()
		_ = session.Flash(c, h.t(c, "register_error_taken"))
		h.render(c, "registro.html", nil)
	case err != nil:
		util.RegistrationsTotal.WithLabelValues("error").Inc()
		h.fail(c, err)
	default:
		util.RegistrationsTotal.WithLabelValues("success").Inc()
		_ = session.Flash(c, h.t(c, "register_success"))
		c.Redirect(http.StatusFound, "/login")
	}
}

// loginForm renders the empty login form
func (h *Handler) loginForm(c *gin.Context) {
	h.render(c, "login.html", nil)
}

// login authenticates by exact email and password match. A miss gets
// one generic notice, with no hint about which half failed.
func (h *Handler) login(c *gin.Context) {
	email := c.PostForm("correo")
	password := c.PostForm("password")

	user, err := h.store.Authenticate(c.Request.Context(), email, password)
	if err != nil {
		h.fail(c, err)
		return
	}

	if user == nil {
		util.LoginsTotal.WithLabelValues("failure").Inc()
		_ = session.Flash(c, h.t(c, "login_error"))
		h.render(c, "login.html", nil)
		return
	}

	if err := session.SetUser(c, user.ID, user.Name); err != nil {
		h.fail(c, err)
		return
	}

	util.LoginsTotal.WithLabelValues("success").Inc()
	h.logger.Info("user logged in", zap.Int64("user_id", user.ID))
	_ = session.Flash(c, fmt.Sprintf(h.t(c, "welcome"), user.Name))
	c.Redirect(http.StatusFound, "/")
}

// logout clears all session state, language choice included
func (h *Handler) logout(c *gin.Context) {
	if err := session.Clear(c); err != nil {
		h.fail(c, err)
		return
	}
	_ = session.Flash(c, h.t(c, "logout_success"))
	c.Redirect(http.StatusFound, "/login")
}
