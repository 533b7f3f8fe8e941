package app

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"inovitaz_backend/database"
	"inovitaz_backend/internal/auth"
	"inovitaz_backend/internal/config"
	"inovitaz_backend/internal/email"
	"inovitaz_backend/internal/handlers"
	"inovitaz_backend/internal/logger"
	"inovitaz_backend/internal/middleware"
	"inovitaz_backend/internal/models"
	"inovitaz_backend/internal/payment"
	"inovitaz_backend/internal/routes"
	"inovitaz_backend/internal/services"
	"inovitaz_backend/internal/validator"
)

// Run boots the whole application and blocks serving HTTP.
func Run() error {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	if err := seedFirstAdmin(db, cfg); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	engine, err := SetupRouter(db, cfg)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "addr", addr, "env", cfg.Server.Env)
	return engine.Run(addr)
}

// SetupRouter builds the fully wired gin engine. Split out from Run so
// tests can assemble an engine against their own database.
func SetupRouter(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := validator.RegisterGinRules(); err != nil {
		return nil, fmt.Errorf("register validation rules: %w", err)
	}

	gateway := pickGateway(cfg)
	mailer := pickMailer(cfg)

	sc := services.NewServiceContainer(db, cfg, gateway, mailer)
	h := handlers.NewAppHandlers(sc, validator.New())

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogging())
	engine.Use(middleware.Metrics())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
	}))

	routes.Register(engine, h, sc.AuthService)
	return engine, nil
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	// TranslateError turns driver duplicate-key failures into
	// gorm.ErrDuplicatedKey, which the repositories rely on.
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}

func pickGateway(cfg *config.Config) payment.Gateway {
	if cfg.Razorpay.KeyID != "" && cfg.Razorpay.KeySecret != "" {
		return payment.NewRazorpayGateway(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)
	}
	logger.Warn("razorpay credentials missing, using mock payment gateway")
	return payment.NewMockGateway()
}

func pickMailer(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		return email.NewLogProvider()
	}
	return email.NewSMTPProvider(email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
}

// seedFirstAdmin promotes or creates the bootstrap admin account when
// configured and no admin exists yet.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		return nil
	}

	var adminCount int64
	if err := db.Model(&models.User{}).Where("role = ?", models.UserRoleAdmin).Count(&adminCount).Error; err != nil {
		return err
	}
	if adminCount > 0 {
		return nil
	}

	var existing models.User
	err := db.First(&existing, "email = ?", cfg.FirstAdminEmail).Error
	if err == nil {
		existing.Role = models.UserRoleAdmin
		logger.Info("promoting existing user to admin", "email", cfg.FirstAdminEmail)
		return db.Save(&existing).Error
	}

	hash, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return err
	}
	admin := models.User{
		Email:        cfg.FirstAdminEmail,
		PasswordHash: hash,
		Name:         "Admin",
		Role:         models.UserRoleAdmin,
	}
	logger.Info("creating first admin account", "email", cfg.FirstAdminEmail)
	return db.Create(&admin).Error
}
