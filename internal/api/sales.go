package api

import (
	"net/http"
	"strconv"

	"sisventas/internal/models"
	"sisventas/internal/session"
	"sisventas/internal/util"

	"github.com/gin-gonic/gin"
)

// listSales renders recorded sales, newest first
func (h *Handler) listSales(c *gin.Context) {
	sales, err := h.store.ListSales(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, "ventas.html", gin.H{"Sales": sales})
}

// createSale inserts a sale from the submitted form, then falls
// through to the list render with the confirmation notice.
func (h *Handler) createSale(c *gin.Context) {
	ctx, span := util.StartSpan(c.Request.Context(), "Handler.CreateSale")
	defer span.End()

	total, err := strconv.ParseFloat(c.PostForm("total"), 64)
	if err != nil {
		h.fail(c, err)
		return
	}

	sale := &models.Sale{
		Description: c.PostForm("descripcion"),
		Total:       total,
	}

	if err := h.store.CreateSale(ctx, sale); err != nil {
		h.fail(c, err)
		return
	}

	util.SalesRecordedTotal.Inc()
	_ = session.Flash(c, h.t(c, "compra_registrada"))

	h.listSales(c)
}

// deleteSale deletes a sale by path id. An absent id is a silent no-op.
func (h *Handler) deleteSale(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.store.DeleteSale(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	util.SalesDeletedTotal.Inc()
	_ = session.Flash(c, h.t(c, "compra_eliminada"))
	c.Redirect(http.StatusFound, "/ventas")
}
