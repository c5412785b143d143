package api

import (
	"net/http"
	"strconv"
	"time"

	"sisventas/config"
	"sisventas/internal/i18n"
	"sisventas/internal/session"
	"sisventas/internal/store"
	"sisventas/internal/util"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const systemTitle = "SisVentas - Version Final"

const headerXRequestID = "X-Request-ID"

// Handler contains the HTTP handlers and their dependencies
type Handler struct {
	store  *store.Store
	bundle *i18n.Bundle
	cfg    *config.Config
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(st *store.Store, bundle *i18n.Bundle, cfg *config.Config) *Handler {
	return &Handler{
		store:  st,
		bundle: bundle,
		cfg:    cfg,
		logger: util.GetLogger(),
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(prometheusMiddleware())

	sessionStore := cookie.NewStore([]byte(h.cfg.Session.Secret))
	router.Use(sessions.Sessions(h.cfg.Session.CookieName, sessionStore))

	router.GET("/health", h.healthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/", h.home)
	router.GET("/cambiar_idioma", h.toggleLanguage)
	router.GET("/registro", h.registerForm)
	router.POST("/registro", h.register)
	router.GET("/login", h.loginForm)
	router.POST("/login", h.login)
	router.GET("/logout", h.logout)

	auth := router.Group("/", h.requireLogin)
	{
		auth.GET("/productos", h.listProducts)
		auth.GET("/nuevo_producto", h.newProductForm)
		auth.POST("/nuevo_producto", h.createProduct)
		auth.POST("/eliminar_producto/:id", h.deleteProduct)

		auth.GET("/ventas", h.listSales)
		auth.POST("/ventas", h.createSale)
		auth.POST("/eliminar_venta/:id", h.deleteSale)

		auth.GET("/reportes", h.listReports)
		auth.POST("/reportes", h.createReport)
		auth.GET("/nuevo_reporte", h.newReportForm)
		auth.POST("/nuevo_reporte", h.createReport)
		auth.POST("/eliminar_reporte/:id", h.deleteReport)

		auth.GET("/configuracion", h.settings)
		auth.GET("/cambiar_nombre", h.renameForm)
		auth.POST("/cambiar_nombre", h.rename)
	}
}

// requireLogin gates a route on a logged-in session. Without one it
// queues a localized notice and redirects to login before the wrapped
// handler can run.
func (h *Handler) requireLogin(c *gin.Context) {
	if _, ok := session.UserID(c); !ok {
		_ = session.Flash(c, h.t(c, "login_required"))
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return
	}
	c.Next()
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// home renders the landing page
func (h *Handler) home(c *gin.Context) {
	h.render(c, "index.html", nil)
}

// lang returns the visitor's effective language code
func (h *Handler) lang(c *gin.Context) string {
	return session.Lang(c, h.cfg.I18n.DefaultLang)
}

// t resolves a translation key for the visitor's language
func (h *Handler) t(c *gin.Context, key string) string {
	return h.bundle.T(h.lang(c), key)
}

// render executes a view template with the ambient page data: the
// translate closure, consumed flashes, the session identity and the
// system title. Flashes are consumed here, exactly once per render.
func (h *Handler) render(c *gin.Context, name string, data gin.H) {
	lang := h.lang(c)
	if data == nil {
		data = gin.H{}
	}
	data["Title"] = systemTitle
	data["Lang"] = lang
	data["UserName"] = session.UserName(c)
	data["Flashes"] = session.TakeFlashes(c)
	data["T"] = func(key string) string { return h.bundle.T(lang, key) }
	c.HTML(http.StatusOK, name, data)
}

// fail reports an unhandled failure. No retry, no user-facing notice.
func (h *Handler) fail(c *gin.Context, err error) {
	h.logger.Error("request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Error(err))
	c.String(http.StatusInternalServerError, "internal error")
	c.Abort()
}

// pathID parses the row identifier from the request path
func pathID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// requestIDMiddleware assigns each request a unique id, echoed in the
// response headers for correlation
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(headerXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set(headerXRequestID, requestID)
		c.Next()
	}
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
