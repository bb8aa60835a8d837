package container

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"

	"golang.org/x/sync/errgroup"

	"skateshop/storefront/internal/catalog"
	"skateshop/storefront/internal/client"
	"skateshop/storefront/internal/config"
	"skateshop/storefront/internal/domain"
	"skateshop/storefront/internal/render"
	"skateshop/storefront/internal/server"
	"skateshop/storefront/internal/storage"
	"skateshop/storefront/web"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config   *config.Config
	Slot     storage.Slot
	Store    *catalog.Store
	Renderer *render.Renderer
	Notifier client.InquiryNotifier
	Server   *server.Server

	db    *pgxpool.Pool
	redis *redis.Client
}

// New creates a new container with all dependencies initialized
func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	container := &Container{
		Config: cfg,
	}

	if err := domain.SkateHierarchy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid category hierarchy: %w", err)
	}

	slot, err := container.newSlot(ctx)
	if err != nil {
		return nil, err
	}
	container.Slot = slot

	renderer, err := render.NewRenderer(domain.SkateHierarchy, web.Pages())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize renderer: %w", err)
	}
	container.Renderer = renderer

	store := catalog.NewStore(slot,
		catalog.WithKey(cfg.Storage.Key),
		catalog.WithObserver(renderer),
		catalog.WithObserver(catalog.ObserverFunc(func(products []domain.Product) {
			log.Debugf("🖼️ Storefront repainted with %d products", len(products))
		})),
	)
	if err := store.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize catalog: %w", err)
	}
	container.Store = store

	notifier, err := client.NewEmailJSClient(cfg.EmailJS)
	switch {
	case errors.Is(err, client.ErrMissingCredentials):
		log.Warn("⚠️ EmailJS credentials not configured, contact form disabled")
	case err != nil:
		return nil, fmt.Errorf("failed to initialize email client: %w", err)
	default:
		container.Notifier = notifier
	}

	container.Server = server.New(store, renderer, container.Notifier, domain.SkateHierarchy)

	return container, nil
}

func (c *Container) newSlot(ctx context.Context) (storage.Slot, error) {
	switch c.Config.Storage.Driver {
	case config.StorageRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", c.Config.Redis.Host, c.Config.Redis.Port),
			Password: c.Config.Redis.Password,
			DB:       c.Config.Redis.Database,
		})

		// Test connection
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		log.Info("✅ Connected to Redis successfully")

		c.redis = rdb
		return storage.NewRedisSlot(rdb), nil

	case config.StoragePostgres:
		db, err := pgxpool.New(ctx,
			fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
				c.Config.Database.Host,
				c.Config.Database.Port,
				c.Config.Database.User,
				c.Config.Database.Password,
				c.Config.Database.Name,
			))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Postgres: %w", err)
		}
		c.db = db

		slot := storage.NewPostgresSlot(db)
		if err := slot.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		log.Info("✅ Connected to Postgres successfully")
		return slot, nil

	default:
		log.Warn("⚠️ Using in-memory storage, products are lost on restart")
		return storage.NewMemorySlot(), nil
	}
}

// Run serves the storefront until ctx is cancelled
func (c *Container) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		addr := net.JoinHostPort(c.Config.Server.Host, strconv.Itoa(c.Config.Server.Port))
		return c.Server.Start(ctx, addr)
	})

	return g.Wait()
}

// Close performs cleanup when shutting down
func (c *Container) Close() error {
	log.Info("Shutting down container...")

	if c.db != nil {
		c.db.Close()
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			return fmt.Errorf("failed to close Redis: %w", err)
		}
	}

	log.Info("Container shut down successfully")
	return nil
}
