package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"faculty_hub_backend/internal/config"
	"faculty_hub_backend/internal/controller"
	"faculty_hub_backend/internal/repository"
	"faculty_hub_backend/internal/service"
	"faculty_hub_backend/pkg/database"
	"faculty_hub_backend/pkg/logger"
	"faculty_hub_backend/pkg/monitoring"
	"faculty_hub_backend/pkg/security"
	"faculty_hub_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user    *repository.UserRepository
	faculty *repository.FacultyRepository
	rating  *repository.RatingRepository
	comment *repository.CommentRepository
	chat    *repository.ChatRepository
}

type services struct {
	auth           *service.AuthService
	user           *service.UserService
	storage        *service.StorageService
	faculty        *service.FacultyService
	rating         *service.RatingService
	ranking        *service.RankingService
	recommendation *service.RecommendationService
	comment        *service.CommentService
	chat           *service.ChatService
	chatHub        *service.ChatHub
	sync           *service.PublicationSyncService
	cache          *service.AggregateCache
}

type controllers struct {
	auth           *controller.AuthController
	user           *controller.UserController
	faculty        *controller.FacultyController
	rating         *controller.RatingController
	ranking        *controller.RankingController
	recommendation *controller.RecommendationController
	comment        *controller.CommentController
	chat           *controller.ChatController
	health         *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ReloadConfig is handed to the config watcher; it fans the fresh config out
// to every registered callback.
func (a *App) ReloadConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:    repository.NewUserRepository(db),
		faculty: repository.NewFacultyRepository(db),
		rating:  repository.NewRatingRepository(db),
		comment: repository.NewCommentRepository(db),
		chat:    repository.NewChatRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) (*services, error) {
	s := &services{}

	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}
	s.storage = storage

	s.cache = service.NewAggregateCache(rdb)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.faculty = service.NewFacultyService(repos.faculty, repos.rating, s.cache)
	s.rating = service.NewRatingService(repos.rating, repos.faculty, s.cache)
	s.ranking = service.NewRankingService(repos.faculty, repos.rating)
	s.recommendation = service.NewRecommendationService(repos.user, s.ranking)
	s.comment = service.NewCommentService(repos.comment, repos.faculty)
	s.sync = service.NewPublicationSyncService(repos.faculty, &cfg.Scholar)

	s.chatHub = service.NewChatHub(rdb)
	go s.chatHub.Run()

	s.chat = service.NewChatService(repos.chat, repos.user, s.chatHub)

	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:           controller.NewAuthController(s.auth),
		user:           controller.NewUserController(s.user),
		faculty:        controller.NewFacultyController(s.faculty, s.sync, s.storage),
		rating:         controller.NewRatingController(s.rating),
		ranking:        controller.NewRankingController(s.ranking),
		recommendation: controller.NewRecommendationController(s.recommendation),
		comment:        controller.NewCommentController(s.comment, s.auth),
		chat:           controller.NewChatController(s.chat, s.chatHub),
		health:         controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) startBackgroundTasks(s *services) {
	if !s.sync.Enabled() {
		return
	}

	interval := a.Config.Scholar.SyncInterval
	if interval <= 0 {
		interval = 24 * time.Hour
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			if err := s.sync.SyncAll(context.Background()); err != nil {
				logger.Log.Error("Publication sync run failed", zap.Error(err))
			}
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
		log.Fatalf("Failed to initialize services: %v", err)
	}
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("faculty-hub", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(services)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Close live websocket connections and clear presence keys first.
	if a.services != nil && a.services.chatHub != nil {
		a.services.chatHub.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
