package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"karzone-backend/internal/config"
	infraCache "karzone-backend/internal/infrastructure/cache"
	"karzone-backend/internal/infrastructure/database"
	"karzone-backend/internal/infrastructure/email"
	"karzone-backend/internal/infrastructure/receipt"
	"karzone-backend/pkg/cache"
	"karzone-backend/pkg/jwt"

	bookingHandler "karzone-backend/internal/domains/booking/handler"
	bookingRepo "karzone-backend/internal/domains/booking/repository"
	bookingService "karzone-backend/internal/domains/booking/service"
	catalogHandler "karzone-backend/internal/domains/catalog/handler"
	catalogRepo "karzone-backend/internal/domains/catalog/repository"
	reviewHandler "karzone-backend/internal/domains/review/handler"
	reviewRepo "karzone-backend/internal/domains/review/repository"
	reviewService "karzone-backend/internal/domains/review/service"
	userHandler "karzone-backend/internal/domains/user/handler"
	userRepo "karzone-backend/internal/domains/user/repository"
	userService "karzone-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph. Everything in it is a
// singleton living for the whole process.
type Container struct {
	// Infrastructure
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       cache.Cache
	JWTManager  *jwt.Manager
	AsynqClient *asynq.Client
	Email       email.EmailService
	Receipts    *receipt.PDFGenerator

	// Repositories
	UserRepo    userRepo.UserRepository
	CarRepo     catalogRepo.CarRepository
	BookingRepo bookingRepo.BookingRepository
	ReviewRepo  reviewRepo.ReviewRepository

	// Services
	UserService    userService.ServiceInterface
	BookingService bookingService.ServiceInterface
	ReviewService  reviewService.ServiceInterface

	// Handlers
	UserHandler    *userHandler.UserHandler
	CarHandler     *catalogHandler.CarHandler
	BookingHandler *bookingHandler.BookingHandler
	ReviewHandler  *reviewHandler.ReviewHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer initializes the whole dependency graph. Order matters:
// config, infrastructure, repositories, services, handlers.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	db := database.NewPostgresDB(&cfg.Database)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	redisClient := infraCache.NewRedisClient(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)
	if err := redisClient.Connect(context.Background()); err != nil {
		// Redis is not critical; summaries fall back to the database
		log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
	} else {
		log.Println("✅ Redis connected")
	}
	c.Cache = redisClient

	// ========================================
	// STEP 4: SHARED COMPONENTS
	// ========================================
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)
	c.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	c.Email = email.NewSMTPEmailService(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.From)
	c.Receipts = receipt.NewPDFGenerator()

	// ========================================
	// STEP 5: INITIALIZE REPOSITORIES
	// ========================================
	c.initRepositories()
	log.Println("✅ Repositories initialized")

	// ========================================
	// STEP 6: INITIALIZE SERVICES
	// ========================================
	c.initServices()
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 7: INITIALIZE HANDLERS
	// ========================================
	c.initHandlers()
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.UserRepo = userRepo.NewPostgresUserRepository(pool)
	c.CarRepo = catalogRepo.NewStaticCarRepository()
	c.BookingRepo = bookingRepo.NewPostgresBookingRepository(pool)
	c.ReviewRepo = reviewRepo.NewPostgresReviewRepository(pool)
}

func (c *Container) initServices() {
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
	c.BookingService = bookingService.NewBookingService(
		c.BookingRepo,
		c.CarRepo,
		c.AsynqClient,
		c.Receipts,
	)
	c.ReviewService = reviewService.NewReviewService(
		c.ReviewRepo,
		c.BookingRepo, // eligibility reads bookings directly
		c.Cache,
	)
}

func (c *Container) initHandlers() {
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
	c.CarHandler = catalogHandler.NewCarHandler(c.CarRepo)
	c.BookingHandler = bookingHandler.NewBookingHandler(c.BookingService)
	c.ReviewHandler = reviewHandler.NewReviewHandler(c.ReviewService)
}

// ========================================
// CLEANUP
// ========================================

// Cleanup releases long-lived resources. Called during graceful shutdown.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			log.Printf("⚠️  Failed to close task client: %v", err)
		}
	}

	if c.DB != nil {
		c.DB.Close()
		log.Println("✅ Database connections closed")
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisClient); ok {
			if err := rc.Close(); err != nil {
				log.Printf("⚠️  Failed to close Redis: %v", err)
			} else {
				log.Println("✅ Redis connections closed")
			}
		}
	}

	log.Println("✅ Container cleanup completed")
}
