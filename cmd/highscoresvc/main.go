package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	config "github.com/avvvet/highscore-services/configs"
	"github.com/avvvet/highscore-services/internal/highscoresvc/broker"
	svcconfig "github.com/avvvet/highscore-services/internal/highscoresvc/config"
	"github.com/avvvet/highscore-services/internal/highscoresvc/db"
	handlers "github.com/avvvet/highscore-services/internal/highscoresvc/handlers"
	"github.com/avvvet/highscore-services/internal/highscoresvc/service"
	"github.com/avvvet/highscore-services/internal/highscoresvc/store"
	nats "github.com/avvvet/highscore-services/internal/nats"
	log "github.com/sirupsen/logrus"
)

const SERVICE_NAME = "highscore"

var instanceId string

func init() {
	config.LoadEnv(SERVICE_NAME)
	instanceId = config.CreateUniqueInstance(SERVICE_NAME)
	config.Logging(SERVICE_NAME + "_service")
}

func main() {
	cfg := svcconfig.Load()

	// pg connection
	dbpool, err := db.Connect(context.Background(), db.Options{
		URL:            cfg.DBUrl,
		MaxConns:       cfg.DBMaxConns,
		ConnectTimeout: cfg.DBConnTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer dbpool.Close()
	log.Printf("pg connection established successfully")

	if cfg.ApplySchema {
		if err := db.ApplySchema(context.Background(), dbpool); err != nil {
			log.Fatalf("Failed to apply schema: %v", err)
		}
	}

	// lifecycle events are optional
	var notifier service.Notifier
	if cfg.EventsEnabled() {
		n, err := nats.Connect(cfg.NatsURL, cfg.NatsToken)
		if err != nil {
			log.Fatalf("Error: unable to connect to NATS server %v", err)
		}
		defer n.Conn.Close()
		log.Printf("NATS connection established successfully %s", n.Url)

		notifier = broker.NewBroker(n.Conn, cfg.NatsSubject)
	} else {
		log.Info("NATS_URL not set, lifecycle events disabled")
	}

	gameService := service.NewGameService(store.NewGameStore(dbpool), notifier)
	scoreService := service.NewScoreService(store.NewScoreStore(dbpool), notifier)
	highscoreService := service.NewHighscoreService(store.NewHighscoreStore(dbpool))

	// Setup router
	r := chi.NewRouter()
	c := config.CORS(cfg.AllowedOrigins)

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(config.CustomLoggerMiddleware())
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(c.Handler)

	// Init handlers and routes
	h := handlers.NewHandler(gameService, scoreService, highscoreService, dbpool)
	h.SetRoutes(r)

	// Create server with timeout settings
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()
	log.Infof("%s service %s running at port %s", SERVICE_NAME, instanceId, server.Addr)

	// Wait for interrupt signal to gracefully shutdown the server
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("%s service shutdown Failed:%+v", SERVICE_NAME, err)
	}
	log.Infof("%s service gracefully stopped", SERVICE_NAME)
}
