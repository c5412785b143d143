package api

import (
	"net/http"

	"sisventas/internal/models"
	"sisventas/internal/session"
	"sisventas/internal/util"

	"github.com/gin-gonic/gin"
)

// listReports renders stored reports
func (h *Handler) listReports(c *gin.Context) {
	reports, err := h.store.ListReports(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, "reportes.html", gin.H{"Reports": reports})
}

// newReportForm renders the empty report form
func (h *Handler) newReportForm(c *gin.Context) {
	h.render(c, "nuevo_reporte.html", nil)
}

// createReport inserts a report from the submitted form
func (h *Handler) createReport(c *gin.Context) {
	report := &models.Report{
		Type:        c.PostForm("tipo"),
		Description: c.PostForm("descripcion"),
	}

	if err := h.store.CreateReport(c.Request.Context(), report); err != nil {
		h.fail(c, err)
		return
	}

	util.ReportsCreatedTotal.Inc()
	_ = session.Flash(c, h.t(c, "reporte_creado"))
	c.Redirect(http.StatusFound, "/reportes")
}

// deleteReport deletes a report by path id. An absent id is a
// silent no-op.
func (h *Handler) deleteReport(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.store.DeleteReport(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	util.ReportsDeletedTotal.Inc()
	_ = session.Flash(c, h.t(c, "reporte_eliminado"))
	c.Redirect(http.StatusFound, "/reportes")
}
