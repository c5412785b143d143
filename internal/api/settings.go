package api

import (
	"net/http"

	"sisventas/internal/i18n"
	"sisventas/internal/session"
	"sisventas/internal/util"

	"github.com/gin-gonic/gin"
)

// settings renders the settings page
func (h *Handler) settings(c *gin.Context) {
	h.render(c, "configuracion.html", nil)
}

// toggleLanguage flips the session language between the two supported
// codes, confirms in the new language, and bounces back to the
// referring page.
func (h *Handler) toggleLanguage(c *gin.Context) {
	next := i18n.Toggle(h.lang(c))
	if err := session.SetLang(c, next); err != nil {
		h.fail(c, err)
		return
	}

	util.LanguageTogglesTotal.Inc()
	_ = session.Flash(c, h.bundle.T(next, "language_changed"))

	target := c.Request.Referer()
	if target == "" {
		target = "/configuracion"
	}
	c.Redirect(http.StatusFound, target)
}

// renameForm renders the rename form
func (h *Handler) renameForm(c *gin.Context) {
	h.render(c, "cambiar_nombre.html", nil)
}

// rename updates the current user's stored name and mirrors it into
// the session's display name.
func (h *Handler) rename(c *gin.Context) {
	userID, _ := session.UserID(c)
	name := c.PostForm("nombre")

	if err := h.store.RenameUser(c.Request.Context(), userID, name); err != nil {
		h.fail(c, err)
		return
	}

	if err := session.SetUserName(c, name); err != nil {
		h.fail(c, err)
		return
	}

	_ = session.Flash(c, h.t(c, "name_updated"))
	c.Redirect(http.StatusFound, "/configuracion")
}
