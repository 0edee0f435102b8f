package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"hackportal-backend/cache"
	"hackportal-backend/config"
	"hackportal-backend/events"
	"hackportal-backend/handler"
	"hackportal-backend/httpapi"
	"hackportal-backend/jwt"
	"hackportal-backend/log"
	"hackportal-backend/portal"
	"hackportal-backend/store"
	"hackportal-backend/submission"
	"hackportal-backend/window"
)

func openStore(ctx context.Context, cfg *config.Config) (*store.Store, func()) {
	if cfg.Store == config.StoreMemory {
		log.Logger.Warn("using in-memory store, data is lost on restart")
		return store.NewMemory(), func() {}
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Logger.Fatal("failed connecting to database", zap.Error(err))
	}

	s, err := store.NewMongo(ctx, client, cfg.MongoDatabase)
	if err != nil {
		log.Logger.Fatal("failed preparing database", zap.Error(err))
	}

	return s, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}
}

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := log.Setup(cfg.LogDevelopment); err != nil {
		fmt.Fprintln(os.Stderr, "failed creating logger:", err)
		os.Exit(1)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, closeStore := openStore(ctx, cfg)
	defer closeStore()

	winners, err := config.LoadWinners(cfg.WinnersFile)
	if err != nil {
		log.Logger.Fatal("failed loading winners", zap.Error(err))
	}
	log.Logger.Info("winners loaded", zap.Strings("winners", winners))

	var publisher submission.Publisher = events.Nop{}
	if cfg.RabbitMQ != "" {
		ev, err := events.Connect(cfg.RabbitMQ)
		if err != nil {
			log.Logger.Fatal("failed connecting to rabbitmq", zap.Error(err))
		}
		defer ev.Close()
		publisher = ev
	}

	var c cache.Cache = cache.Nop{}
	if cfg.RedisAddr != "" {
		r, err := cache.DialRedis(ctx, cfg.RedisAddr, cfg.PublicCacheTTL)
		if err != nil {
			log.Logger.Fatal("failed connecting to redis", zap.Error(err))
		}
		defer r.Close()
		c = r
	}

	gate := window.New(cfg.Window(), time.Now)
	log.Logger.Info("submission window", zap.Bool("open", gate.IsOpen()))

	subs := submission.NewService(st.Submissions, gate, publisher)
	tokens := jwt.NewJWT([]byte(cfg.JWTKey), []byte(cfg.OrganizerKey), cfg.TokenTTL)
	svc := portal.NewService(st, subs, tokens, c, winners)

	lis, err := net.Listen("tcp", fmt.Sprintf("0.0.0.0:%s", cfg.Port))
	if err != nil {
		log.Logger.Fatal("failed to listen", zap.Error(err))
	}
	log.Logger.Info(fmt.Sprintf("Listening on port: %s", cfg.Port))

	grpcServer := handler.NewServer(svc)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Logger.Fatal("couldn't serve grpcServer", zap.Error(err))
		}
	}()

	if !cfg.LogDevelopment {
		gin.SetMode(gin.ReleaseMode)
	}
	httpServer := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort),
		Handler:           httpapi.NewRouter(svc),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Logger.Info(fmt.Sprintf("Serving HTTP on port: %s", cfg.HTTPPort))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Logger.Fatal("couldn't serve http", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Logger.Info("shutting down")

	shutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdown); err != nil {
		log.Logger.Error("http shutdown failed", zap.Error(err))
	}
	grpcServer.GracefulStop()
}
