package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"attendance/console/foundation/web"
	"attendance/console/internal/pkg/config"
	"attendance/console/internal/pkg/repository/backend"
	"attendance/console/internal/router"
	"attendance/console/internal/session"

	"github.com/ardanlabs/conf"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

func main() {
	logger := log.New(os.Stdout, "CONSOLE : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	if err := run(logger); err != nil {
		logger.Println("main : error:", err)
		os.Exit(1)
	}
}

func run(logger *log.Logger) error {
	var cfg struct {
		Web struct {
			Host            string        `conf:"default:0.0.0.0:8080"`
			ReadTimeout     time.Duration `conf:"default:10s"`
			WriteTimeout    time.Duration `conf:"default:30s"`
			ShutdownTimeout time.Duration `conf:"default:10s"`
			SecureCookie    bool          `conf:"default:false"`
			Debug           bool          `conf:"default:false"`
		}
		API struct {
			BaseURL string        `conf:"default:http://localhost:8000/api"`
			Timeout time.Duration `conf:"default:10s"`
			Retries int           `conf:"default:1"`
		}
		Redis struct {
			Addr     string
			Password string `conf:"noprint"`
			DB       int    `conf:"default:0"`
		}
		Session struct {
			TTL   time.Duration `conf:"default:12h"`
			Sweep time.Duration `conf:"default:5m"`
		}
		Catalog struct {
			Path string
		}
		CORS struct {
			Origins []string `conf:"default:http://localhost:3000"`
		}
	}

	if err := conf.Parse(os.Args[1:], "CONSOLE", &cfg); err != nil {
		if err == conf.ErrHelpWanted {
			usage, err := conf.Usage("CONSOLE", &cfg)
			if err != nil {
				return errors.Wrap(err, "generating config usage")
			}
			fmt.Println(usage)
			return nil
		}
		return errors.Wrap(err, "parsing config")
	}

	out, err := conf.String(&cfg)
	if err != nil {
		return errors.Wrap(err, "generating config for output")
	}
	logger.Printf("main : Config :\n%v\n", out)

	// =========================================================================
	// Catalog

	catalog, err := config.NewConfig(cfg.Catalog.Path)
	if err != nil {
		return errors.Wrap(err, "loading catalog")
	}

	// =========================================================================
	// HR backend

	client, err := backend.NewClient(backend.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
		Retries: cfg.API.Retries,
	}, logger)
	if err != nil {
		return errors.Wrap(err, "creating backend client")
	}

	// =========================================================================
	// Preferences

	var prefs session.PreferenceStore = session.NewMemoryStore()
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := rdb.Ping(ctx).Err()
		cancel()
		if err != nil {
			return errors.Wrap(err, "connecting to redis")
		}
		prefs = session.NewRedisStore(rdb, cfg.Session.TTL)
		logger.Printf("main : Redis preferences at %s", cfg.Redis.Addr)
	}

	// =========================================================================
	// Router

	if !cfg.Web.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	app := web.NewApp(engine)

	sessions, err := router.NewRouter(app, client, prefs, catalog, logger, cfg.Session.TTL, cfg.Web.SecureCookie, cfg.CORS.Origins).Init()
	if err != nil {
		return errors.Wrap(err, "initialising router")
	}

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go sessions.Run(sweepCtx, cfg.Session.Sweep)

	// =========================================================================
	// Start

	srv := http.Server{
		Addr:         cfg.Web.Host,
		Handler:      engine,
		ReadTimeout:  cfg.Web.ReadTimeout,
		WriteTimeout: cfg.Web.WriteTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Printf("main : Console listening on %s, backend %s", srv.Addr, cfg.API.BaseURL)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return errors.Wrap(err, "server error")

	case sig := <-shutdown:
		logger.Printf("main : %v : Start shutdown", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Web.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			srv.Close()
			return errors.Wrap(err, "could not stop server gracefully")
		}
	}

	return nil
}
