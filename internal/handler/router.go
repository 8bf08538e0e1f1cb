package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"store-reservation/internal/handler/api"
	"store-reservation/internal/handler/middleware"
	"store-reservation/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Member      *api.MemberHandler
	Store       *api.StoreHandler
	Reservation *api.ReservationHandler
	Kiosk       *api.KioskHandler
	Review      *api.ReviewHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	auth := []gin.HandlerFunc{authMiddleware.RequireAuth()}

	addRoutes(engine.Group("/user"), []route{
		{Method: http.MethodPost, Path: "/signup", Handler: h.Member.SignUp},
		{Method: http.MethodPost, Path: "/signin", Handler: h.Member.SignIn},
		{Method: http.MethodDelete, Path: "/:memberId", Handler: h.Member.Delete, Mw: auth},
	})

	addRoutes(engine.Group("/store"), []route{
		{Method: http.MethodPost, Path: "/regist", Handler: h.Store.Register, Mw: auth},
		{Method: http.MethodPut, Path: "/:storeId", Handler: h.Store.Modify, Mw: auth},
		{Method: http.MethodDelete, Path: "/:storeId", Handler: h.Store.Delete, Mw: auth},
		{Method: http.MethodGet, Path: "/list", Handler: h.Store.List},
		{Method: http.MethodGet, Path: "/search", Handler: h.Store.Search},
		{Method: http.MethodGet, Path: "/details/:id", Handler: h.Store.Details},
	})

	reservations := engine.Group("/reservation")
	reservations.Use(authMiddleware.RequireAuth())
	{
		addRoutes(reservations, []route{
			{Method: http.MethodPost, Path: "/:storeId", Handler: h.Reservation.Reserve},
			{Method: http.MethodPatch, Path: "/:reservationId", Handler: h.Reservation.Modify},
			{Method: http.MethodDelete, Path: "/:reservationId", Handler: h.Reservation.Cancel},
			{Method: http.MethodGet, Path: "/list", Handler: h.Reservation.ListMine},
			{Method: http.MethodGet, Path: "/list/:storeId", Handler: h.Reservation.ListForStore},
			{Method: http.MethodPatch, Path: "/approval/:reservationId", Handler: h.Reservation.Approve},
			{Method: http.MethodPatch, Path: "/refusal/:reservationId", Handler: h.Reservation.Refuse},
		})
	}

	addRoutes(engine.Group("/kiosk"), []route{
		{Method: http.MethodPatch, Path: "/confirm/:reservationId", Handler: h.Kiosk.Confirm},
	})

	addRoutes(engine.Group("/review"), []route{
		{Method: http.MethodPost, Path: "/:reservationId", Handler: h.Review.Add, Mw: auth},
		{Method: http.MethodPut, Path: "/:reviewId", Handler: h.Review.Update, Mw: auth},
		{Method: http.MethodDelete, Path: "/:reviewId", Handler: h.Review.Delete, Mw: auth},
		{Method: http.MethodGet, Path: "/:storeId", Handler: h.Review.ListByStore},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
