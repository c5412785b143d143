package api

import (
	"net/http"
	"strconv"

	"sisventas/internal/models"
	"sisventas/internal/session"
	"sisventas/internal/util"

	"github.com/gin-gonic/gin"
)

// listProducts renders the product catalog
func (h *Handler) listProducts(c *gin.Context) {
	products, err := h.store.ListProducts(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	h.render(c, "productos.html", gin.H{"Products": products})
}

// newProductForm renders the empty product form
func (h *Handler) newProductForm(c *gin.Context) {
	h.render(c, "nuevo_producto.html", nil)
}

// createProduct inserts a product from the submitted form. Numeric
// fields are coerced with strconv; non-numeric input is an unhandled
// failure, not a user-facing notice.
func (h *Handler) createProduct(c *gin.Context) {
	ctx, span := util.StartSpan(c.Request.Context(), "Handler.CreateProduct")
	defer span.End()

	price, err := strconv.ParseFloat(c.PostForm("precio"), 64)
	if err != nil {
		h.fail(c, err)
		return
	}
	quantity, err := strconv.Atoi(c.PostForm("cantidad"))
	if err != nil {
		h.fail(c, err)
		return
	}

	product := &models.Product{
		Name:     c.PostForm("nombre"),
		Category: c.PostForm("categoria"),
		Price:    price,
		Quantity: quantity,
	}

	if err := h.store.CreateProduct(ctx, product); err != nil {
		h.fail(c, err)
		return
	}

	util.ProductsCreatedTotal.Inc()
	_ = session.Flash(c, h.t(c, "producto_agregado"))
	c.Redirect(http.StatusFound, "/productos")
}

// deleteProduct deletes a product by path id. An absent id is a
// silent no-op.
func (h *Handler) deleteProduct(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.String(http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.store.DeleteProduct(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}

	util.ProductsDeletedTotal.Inc()
	_ = session.Flash(c, h.t(c, "producto_eliminado"))
	c.Redirect(http.StatusFound, "/productos")
}
