package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	_ "bloglist-service/docs"
	"bloglist-service/internal/cache"
	"bloglist-service/internal/config"
	"bloglist-service/internal/domain/blog"
	"bloglist-service/internal/domain/person"
	"bloglist-service/internal/domain/user"
	api "bloglist-service/internal/http"
	"bloglist-service/internal/metrics"
	"bloglist-service/internal/platform/database"
	jwtpkg "bloglist-service/internal/platform/jwt"
	"bloglist-service/internal/platform/logger"
	"bloglist-service/internal/repository/mongodb"
	"bloglist-service/internal/repository/postgres"
	"bloglist-service/internal/worker"
)

type repos struct {
	persons person.Repository
	users   user.Repository
	blogs   blog.Repository
	ping    api.Pinger
	close   func()
}

// @title           Bloglist API
// @version         1.0
// @description     Phonebook and blog list service with JWT auth
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		// the logger is not configured yet
		boot, _ := logger.New("dev")
		boot.Fatal("config error", "error", err)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rp, err := openStorage(ctx, cfg)
	if err != nil {
		log.Fatal("storage connect error", "driver", cfg.StorageDriver, "error", err)
	}
	defer rp.close()
	log.Info("storage connected", "driver", cfg.StorageDriver)

	var statsCache blog.SummaryCache = cache.Nop{}
	if cfg.RedisAddr != "" {
		rdb, err := database.NewRedis(ctx, cfg.RedisAddr)
		if err != nil {
			log.Warn("redis unavailable, stats cache disabled", "addr", cfg.RedisAddr, "error", err)
		} else {
			defer rdb.Close()
			statsCache = cache.NewRedisSummaryCache(rdb, cfg.StatsCacheTTL)
			log.Info("stats cache enabled", "addr", cfg.RedisAddr, "ttl", cfg.StatsCacheTTL)
		}
	}

	metrics.Register()

	personSvc := person.NewService(rp.persons)
	userSvc := user.NewService(rp.users, rp.blogs)
	blogSvc := blog.NewService(rp.blogs, userSvc).WithCache(statsCache)

	jwtMgr := jwtpkg.NewManager(cfg.JWTSecret, "", cfg.TokenTTL)

	events := make(chan worker.BlogEvent, 100)
	eventWorker := worker.NewEventWorker(events, log.With("component", "event_worker"), statsCache)

	router := api.NewRouter(api.Deps{
		Persons: personSvc,
		Users:   userSvc,
		Blogs:   blogSvc,
		JWT:     jwtMgr,
		Events:  events,
		Ping:    rp.ping,
		Log:     log.With("component", "http"),

		TrustProxy: cfg.TrustProxy,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go eventWorker.Run(ctx)

	go func() {
		log.Info("server running", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen error", "error", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", "error", err)
	}
	cancel()

	log.Info("server stopped")
}

func openStorage(ctx context.Context, cfg config.Config) (*repos, error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		db, err := database.NewPostgres(ctx, cfg.DB_DSN)
		if err != nil {
			return nil, err
		}
		return &repos{
			persons: postgres.NewPersonRepo(db),
			users:   postgres.NewUserRepo(db),
			blogs:   postgres.NewBlogRepo(db),
			ping:    pingSQL(db),
			close:   func() { _ = db.Close() },
		}, nil
	default:
		client, db, err := database.NewMongo(ctx, cfg.MongoConnString(), cfg.MongoDB)
		if err != nil {
			return nil, err
		}
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		return &repos{
			persons: mongodb.NewPersonRepo(db),
			users:   mongodb.NewUserRepo(db),
			blogs:   mongodb.NewBlogRepo(db),
			ping:    pingMongo(client),
			close:   func() { _ = client.Disconnect(context.Background()) },
		}, nil
	}
}

func pingSQL(db *sql.DB) api.Pinger {
	return func(ctx context.Context) error { return db.PingContext(ctx) }
}

func pingMongo(client *mongo.Client) api.Pinger {
	return func(ctx context.Context) error { return client.Ping(ctx, readpref.Primary()) }
}
