package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Jeyeeem21/RoomManagement/config"
	"github.com/Jeyeeem21/RoomManagement/internal/api/handler"
	"github.com/Jeyeeem21/RoomManagement/internal/api/middleware"
	"github.com/Jeyeeem21/RoomManagement/pkg/jwt"
	"github.com/Jeyeeem21/RoomManagement/pkg/redis"
)

// Setup builds the gin engine with all routes wired.
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── global middleware ──
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── operational endpoints ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// public
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
		}

		// public read-only calendar, so display boards can subscribe
		// without credentials
		calendar := v1.Group("/calendar")
		{
			calendar.GET("/events", h.Calendar.Events)
			calendar.GET("/rooms/:id/ics", h.Calendar.RoomICS)
		}

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb, logger))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)
			authorized.PUT("/auth/password", h.Auth.ChangePassword)
			authorized.POST("/auth/register", middleware.RoleAuth("admin"), h.Auth.Register)

			colleges := authorized.Group("/colleges")
			{
				colleges.GET("", h.College.List)
				colleges.GET("/:id", h.College.Get)
				colleges.POST("", middleware.RoleAuth("admin"), h.College.Create)
				colleges.PUT("/:id", middleware.RoleAuth("admin"), h.College.Update)
				colleges.DELETE("/:id", middleware.RoleAuth("admin"), h.College.Delete)
			}

			buildings := authorized.Group("/buildings")
			{
				buildings.GET("", h.Building.List)
				buildings.GET("/:id", h.Building.Get)
				buildings.POST("", middleware.RoleAuth("admin"), h.Building.Create)
				buildings.PUT("/:id", middleware.RoleAuth("admin"), h.Building.Update)
				buildings.DELETE("/:id", middleware.RoleAuth("admin"), h.Building.Delete)
			}

			rooms := authorized.Group("/rooms")
			{
				rooms.GET("", h.Room.List)
				rooms.GET("/:id", h.Room.Get)
				rooms.POST("", middleware.RoleAuth("admin"), h.Room.Create)
				rooms.PUT("/:id", middleware.RoleAuth("admin"), h.Room.Update)
				rooms.DELETE("/:id", middleware.RoleAuth("admin"), h.Room.Delete)
			}

			bookings := authorized.Group("/bookings")
			{
				bookings.GET("", h.Booking.List)
				bookings.GET("/:id", h.Booking.Get)
				bookings.POST("", h.Booking.Create)
				bookings.POST("/check-conflict", h.Booking.CheckConflict)
				bookings.PUT("/:id", h.Booking.Update)
				bookings.DELETE("/:id", h.Booking.Delete)
			}

			export := authorized.Group("/export")
			{
				export.GET("/faculty", h.Export.Faculty)
				export.GET("/program", h.Export.Program)
			}

			dashboard := authorized.Group("/dashboard")
			{
				dashboard.GET("/stats", h.Dashboard.Stats)
				dashboard.GET("/occupancy", h.Dashboard.Occupancy)
				dashboard.GET("/buildings/:id/occupancy", h.Dashboard.BuildingOccupancy)
			}

			settings := authorized.Group("/settings")
			{
				settings.GET("", h.Setting.List)
				settings.GET("/:key", h.Setting.Get)
				settings.PUT("", middleware.RoleAuth("admin"), h.Setting.Set)
				settings.DELETE("/:key", middleware.RoleAuth("admin"), h.Setting.Delete)
			}
		}
	}

	return r
}
