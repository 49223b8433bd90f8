package app

import (
	"agrodirect/config"
	"agrodirect/middleware"
	"agrodirect/repositories"
	"agrodirect/routes"
	"agrodirect/services"
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App is the fully wired storefront: shared services, the session store and
// the HTTP router.
type App struct {
	Config   *config.Config
	Logger   *zap.Logger
	Router   *gin.Engine
	Catalog  *services.CatalogService
	Pricing  *services.PricingService
	Sessions *services.SessionStore

	db    *pgxpool.Pool
	redis *redis.Client
}

func LoadCatalog(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*repositories.Catalog, *pgxpool.Pool, error) {
	switch cfg.CatalogSource {
	case "", "static":
		catalog, err := repositories.NewStaticCatalogSource().Load(ctx)
		return catalog, nil, err
	case "postgres":
		if cfg.DBAutoMigrate {
			if err := config.RunMigrations(cfg.DatabaseURL, logger); err != nil {
				return nil, nil, err
			}
		}
		db, err := config.ConnectDB(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, nil, err
		}
		catalog, err := repositories.NewPostgresCatalogSource(db).Load(ctx)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return catalog, db, nil
	default:
		return nil, nil, fmt.Errorf("unknown catalog source %q", cfg.CatalogSource)
	}
}

func NewPricing(ctx context.Context, cfg *config.Config, cache *redis.Client, logger *zap.Logger) *services.PricingService {
	var advisor services.PriceAdvisor
	if cfg.GeminiAPIKey != "" {
		gemini, err := services.NewGeminiAdvisor(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			logger.Warn("AI price advisor disabled", zap.Error(err))
		} else {
			advisor = gemini
		}
	} else {
		logger.Info("GEMINI_API_KEY not set, price recommendations disabled")
	}
	return services.NewPricingService(advisor, cache, cfg.PriceCacheTTL, logger)
}

func newNotifier(cfg *config.Config, logger *zap.Logger) services.OrderNotifier {
	email, err := services.NewEmailNotifier(services.SMTPSettings{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		User:     cfg.SMTPUser,
		Password: cfg.SMTPPass,
		From:     cfg.SMTPFrom,
		To:       cfg.OrderNotifyMail,
	})
	if err != nil {
		logger.Info("order emails disabled", zap.Error(err))
		return services.NewLogNotifier(logger)
	}
	return email
}

func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	catalog, db, err := LoadCatalog(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Info("catalog loaded", zap.Int("products", len(catalog.Products)), zap.String("source", cfg.CatalogSource))

	users, err := repositories.NewUserRepository(cfg.DemoPassword)
	if err != nil {
		if db != nil {
			db.Close()
		}
		return nil, err
	}

	cache := config.ConnectRedis(ctx, cfg, logger)
	catalogSvc := services.NewCatalogService(catalog)
	pricing := NewPricing(ctx, cfg, cache, logger)

	sessions := services.NewSessionStore(&services.SessionDeps{
		Catalog:        catalogSvc,
		Pricing:        pricing,
		Gateway:        services.NewSimulatedGateway(cfg.PaymentDelay),
		Notifier:       newNotifier(cfg, logger),
		Orders:         repositories.NewOrderRepository(),
		Listings:       repositories.NewListingRepository(),
		DeliveryFee:    cfg.DeliveryFee,
		PaymentTimeout: cfg.PaymentTimeout,
		Logger:         logger,
	}, cfg.SessionIdleTTL)
	orders := sessions.Orders()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORSMiddleware(cfg.OriginURL))

	routes.SetupRoutes(router, routes.Dependencies{
		Catalog:   catalogSvc,
		Auth:      services.NewAuthService(users, sessions, cfg.JWTSecret, cfg.JWTExpiry),
		Sessions:  sessions,
		Orders:    orders,
		JWTSecret: cfg.JWTSecret,
	})

	return &App{
		Config:   cfg,
		Logger:   logger,
		Router:   router,
		Catalog:  catalogSvc,
		Pricing:  pricing,
		Sessions: sessions,
		db:       db,
		redis:    cache,
	}, nil
}

// Close ends all sessions, waiting for in-flight payments, then releases
// connections.
func (a *App) Close() {
	a.Sessions.Close()
	if a.redis != nil {
		a.redis.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
}
