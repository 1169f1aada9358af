package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "busbooking/internal/config"
	h "busbooking/internal/http/handlers"
	"busbooking/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), corsMiddleware(env))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	auth := middleware.Auth([]byte(env.JWTSecret))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		authGroup := api.Group("/auth")
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)

		// Buses (open CRUD, as the legacy API exposed it)
		buses := api.Group("/buses")
		buses.GET("", h.GetBuses)
		buses.POST("", h.CreateBus)
		buses.GET("/:id", h.GetBusByID)
		buses.PUT("/:id", h.UpdateBus)
		buses.DELETE("/:id", h.DeleteBus)
		buses.GET("/:id/seats", h.GetBusSeats)

		// Bookings
		bookings := api.Group("/bookings", auth)
		bookings.POST("", h.BookSeat)
		bookings.GET("/:id/e-ticket", h.GetBookingETicket)

		api.GET("/users/:id/bookings", auth, h.GetUserBookings)

		// Payments
		payments := api.Group("/payments", auth)
		payments.POST("/order", h.CreatePaymentOrder)
		payments.POST("/confirm", h.ConfirmPayment)
	}

	return r
}

func corsMiddleware(env intconfig.Env) gin.HandlerFunc {
	origins := env.CORSOrigins
	if len(origins) == 0 {
		origins = []string{
			"http://localhost:3000",
			"http://127.0.0.1:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	}

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	})
}
