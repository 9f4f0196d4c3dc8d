package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/miikeyanderson/AMED-Referrals-sub000/config"
	"github.com/miikeyanderson/AMED-Referrals-sub000/handlers/auth"
	"github.com/miikeyanderson/AMED-Referrals-sub000/handlers/notifications"
	"github.com/miikeyanderson/AMED-Referrals-sub000/handlers/pipeline"
	"github.com/miikeyanderson/AMED-Referrals-sub000/handlers/referrals"
	"github.com/miikeyanderson/AMED-Referrals-sub000/handlers/rewards"
	"github.com/miikeyanderson/AMED-Referrals-sub000/handlers/stats"
	"github.com/miikeyanderson/AMED-Referrals-sub000/logging"
	"github.com/miikeyanderson/AMED-Referrals-sub000/middleware"
	"github.com/miikeyanderson/AMED-Referrals-sub000/migrations"
	"github.com/miikeyanderson/AMED-Referrals-sub000/models"
	"github.com/miikeyanderson/AMED-Referrals-sub000/seed"
	"github.com/miikeyanderson/AMED-Referrals-sub000/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading .env file:", err)
	}
}

func main() {
	cfg := config.Load()

	if err := logging.InitLogger(cfg.Env == "release"); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Sync()

	utils.InitAuth(cfg)
	utils.InitMailer(cfg)
	utils.ConnectDatabase(cfg)

	migrations.MigrateReferrals()
	migrations.MigrateNotifications()
	utils.ReferralsDB.AutoMigrate(&models.User{})

	// Seed Initial Data
	if err := seed.SeedUsers(); err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	if cfg.Env == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	limiter := middleware.NewRateLimiter(cfg.RateLimitQuota, cfg.RateLimitWindow)

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/register", auth.Register)
	r.POST("/login", auth.Login)
	r.POST("/refresh", auth.RefreshToken)

	protected := r.Group("/")
	protected.Use(auth.AuthMiddleware(), middleware.RateLimit(limiter))
	{
		protected.POST("/logout", auth.Logout)
		referrals.RegisterReferralsRoutes(protected)
		rewards.RegisterRewardsRoutes(protected)
		notifications.RegisterNotificationsRoutes(protected)
		stats.RegisterStatsRoutes(protected)
	}

	staff := r.Group("/")
	staff.Use(
		auth.AuthMiddleware(),
		middleware.RateLimit(limiter),
		auth.RequireRole(models.RoleRecruiter, models.RoleLeadership),
	)
	{
		pipeline.RegisterPipelineRoutes(staff)
		stats.RegisterKPIRoutes(staff)
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
