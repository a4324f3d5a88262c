package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chiekin/CW2-social-networking-website/internal/handler"
	"github.com/chiekin/CW2-social-networking-website/internal/rabbitmq"
	"github.com/chiekin/CW2-social-networking-website/internal/repository"
	"github.com/chiekin/CW2-social-networking-website/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if err := initEnv(); err != nil {
		logger.Sugar().Warnf("no .env file loaded: %s", err.Error())
	}

	if err := initConfig(); err != nil {
		logger.Sugar().Fatalf("failed to initialize yaml config: %s", err.Error())
	}

	ctx := context.Background()

	db, err := pgxpool.New(ctx, databaseURL())
	if err != nil {
		logger.Sugar().Fatalf("failed to create postgres pool: %s", err.Error())
	}
	defer db.Close()

	pingCtx, cancelPing := context.WithTimeout(ctx, 5*time.Second)
	if err := db.Ping(pingCtx); err != nil {
		cancelPing()
		logger.Sugar().Fatalf("failed to ping postgres: %s", err.Error())
	}
	cancelPing()

	rdb := redis.NewClient(&redis.Options{
		Addr:     viper.GetString("redis.addr"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       viper.GetInt("redis.db"),
	})
	defer rdb.Close()

	redisCtx, cancelRedis := context.WithTimeout(ctx, 3*time.Second)
	if err := rdb.Ping(redisCtx).Err(); err != nil {
		cancelRedis()
		logger.Sugar().Fatalf("failed to ping redis: %s", err.Error())
	}
	cancelRedis()

	mqConn, err := rabbitmq.New(viper.GetString("rabbitmq.url"))
	if err != nil {
		logger.Sugar().Fatalf("failed to connect to rabbitmq: %s", err.Error())
	}
	defer mqConn.Close()

	repo := repository.New(db, rdb)
	services := service.New(logger, repo, rabbitmq.NewEventPublisher(mqConn))
	handlers := handler.New(services)

	srv := &http.Server{
		Addr:    ":" + viper.GetString("port"),
		Handler: handlers.InitRoutes(),
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Fatalf("failed to run http server: %s", err.Error())
		}
	}()
	logger.Sugar().Infof("server running on port %s", viper.GetString("port"))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Errorf("failed to shut down http server: %s", err.Error())
	}
	logger.Info("server stopped")
}

func initEnv() error {
	return godotenv.Load(".env")
}

func initConfig() error {
	viper.AddConfigPath("./")
	viper.SetConfigType("yaml")
	viper.SetConfigName("app")
	return viper.ReadInConfig()
}

func databaseURL() string {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return url
	}
	return viper.GetString("postgres.url")
}
