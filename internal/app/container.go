package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/khanh-nd1204/music-be/domain"
	"github.com/khanh-nd1204/music-be/internal/config"
	"github.com/khanh-nd1204/music-be/internal/infrastructure/auth"
	"github.com/khanh-nd1204/music-be/internal/infrastructure/database"
	"github.com/khanh-nd1204/music-be/internal/infrastructure/notifications"
	"github.com/khanh-nd1204/music-be/internal/infrastructure/repositories"
	"github.com/khanh-nd1204/music-be/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client
	Outbox      *notifications.Outbox

	// Repositories
	AccountRepo domain.AccountRepository

	// Services
	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	CodeGen         domain.CodeGenerator
	SessionSvc      domain.SessionService
	VerificationSvc domain.VerificationService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	container.initRedis()
	container.initServices()

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	c.DB = db
	return nil
}

func (c *Container) initRedis() {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
}

func (c *Container) initServices() {
	c.AccountRepo = repositories.NewAccountRepository(c.DB)

	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(
		c.Config.JWTAccessSecret,
		c.Config.JWTRefreshSecret,
		c.Config.JWTIssuer,
		c.Config.AccessTTL,
		c.Config.RefreshTTL,
	)
	c.CodeGen = services.NewCodeGenerator(c.Config.OTP_TTL, nil)

	mailer := notifications.NewSMTPMailer(
		c.Config.MailHost,
		c.Config.MailPort,
		c.Config.MailUsername,
		c.Config.MailPassword,
		c.Config.MailFrom,
	)
	c.Outbox = notifications.NewOutbox(mailer, c.Config.MailOutboxSize)

	throttle := services.NewResendThrottle(c.RedisClient, c.Config.OTP_ResendWindow)

	c.SessionSvc = services.NewSessionService(c.AccountRepo, c.PasswordSvc, c.TokenSvc)
	c.VerificationSvc = services.NewVerificationService(c.AccountRepo, c.PasswordSvc, c.CodeGen, c.Outbox, throttle, nil)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Outbox != nil {
		c.Outbox.Close()
	}

	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
