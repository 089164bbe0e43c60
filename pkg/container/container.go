package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"conduit-backend/internal/config"
	infraCache "conduit-backend/internal/infrastructure/cache"
	"conduit-backend/internal/infrastructure/database"
	"conduit-backend/pkg/cache"
	"conduit-backend/pkg/jwt"

	articleHandler "conduit-backend/internal/domains/article/handler"
	articleRepo "conduit-backend/internal/domains/article/repository"
	articleService "conduit-backend/internal/domains/article/service"
	profileHandler "conduit-backend/internal/domains/profile/handler"
	profileRepo "conduit-backend/internal/domains/profile/repository"
	profileService "conduit-backend/internal/domains/profile/service"
	tagHandler "conduit-backend/internal/domains/tag/handler"
	tagRepo "conduit-backend/internal/domains/tag/repository"
	tagService "conduit-backend/internal/domains/tag/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph. Everything in it is a
// singleton for the application lifetime.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================
	ArticleRepo articleRepo.ArticleRepository
	ProfileRepo profileRepo.ProfileRepository
	TagRepo     tagRepo.TagRepository

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================
	ArticleService articleService.ArticleService
	ProfileService profileService.ProfileService
	TagService     tagService.TagService

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================
	ArticleHandler *articleHandler.ArticleHandler
	ProfileHandler *profileHandler.ProfileHandler
	TagHandler     *tagHandler.TagHandler
}

// NewContainer builds the whole dependency graph. Initialization order
// matters: config, infrastructure, repositories, services, handlers.
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

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

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

	if err := db.RunMigrations("migrations"); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// Redis failure is not critical: the rate limiter fails open.
	if err := redisCache.Ping(context.Background()); err != nil {
		log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
	} else {
		log.Println("✅ Redis connected")
	}

	c.Cache = redisCache

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
	)

	// ========================================
	// STEP 4-6: REPOSITORIES, SERVICES, HANDLERS
	// ========================================
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.ArticleRepo = articleRepo.NewPostgresRepository(pool)
	c.ProfileRepo = profileRepo.NewPostgresRepository(pool)
	c.TagRepo = tagRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.ArticleService = articleService.NewArticleService(c.ArticleRepo)
	c.ProfileService = profileService.NewProfileService(c.ProfileRepo)
	c.TagService = tagService.NewTagService(c.TagRepo, c.Cache)
}

func (c *Container) initHandlers() {
	c.ArticleHandler = articleHandler.NewArticleHandler(c.ArticleService)
	c.ProfileHandler = profileHandler.NewProfileHandler(c.ProfileService)
	c.TagHandler = tagHandler.NewTagHandler(c.TagService)
}

// Cleanup releases container resources during graceful shutdown.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.DB != nil {
		c.DB.Close()
		log.Println("✅ Database connections closed")
	}

	if c.Cache != nil {
		if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
			if err := rc.Close(); err != nil {
				log.Printf("⚠️  Failed to close Redis: %v", err)
			} else {
				log.Println("✅ Redis connections closed")
			}
		}
	}

	log.Println("✅ Container cleanup completed")
}
