package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	fileapp "github.com/muhammadheryan/student-api/application/file"
	studentapp "github.com/muhammadheryan/student-api/application/student"
	userapp "github.com/muhammadheryan/student-api/application/user"
	"github.com/muhammadheryan/student-api/cmd/config"
	mongoclient "github.com/muhammadheryan/student-api/cmd/mongo"
	redisclient "github.com/muhammadheryan/student-api/cmd/redis"
	_ "github.com/muhammadheryan/student-api/docs"
	fileRepo "github.com/muhammadheryan/student-api/repository/file"
	redisRepo "github.com/muhammadheryan/student-api/repository/redis"
	studentRepo "github.com/muhammadheryan/student-api/repository/student"
	userRepo "github.com/muhammadheryan/student-api/repository/user"
	"github.com/muhammadheryan/student-api/thirdparty/mail"
	"github.com/muhammadheryan/student-api/thirdparty/rabbitmq"
	"github.com/muhammadheryan/student-api/transport"
	"github.com/muhammadheryan/student-api/utils/logger"
	validatorx "github.com/muhammadheryan/student-api/utils/validator"
	"go.uber.org/zap"
)

// @title STUDENT API
// @version 1.0
// @description Students and users REST API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", zap.Error(err))
	}

	logger.Info("Starting server", zap.String("env", cfg.Environment))
	validatorx.Init()

	// Connect to database
	db, err := mongoclient.New(cfg)
	if err != nil {
		logger.Fatal("err connect mongodb", zap.Error(err))
	}
	defer func() {
		_ = mongoclient.Close()
	}()

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Domain events are optional
	var publisher rabbitmq.EventPublisher
	if cfg.RabbitMQ.Enabled {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.RabbitMQ.Exchange)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer p.Close()
		publisher = p
	}

	// Initialize repositories
	StudentRepo := studentRepo.NewStudentRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	RedisRepo := redisRepo.NewRepository()
	FileRepo, err := fileRepo.NewFileRepository(cfg.Upload.Dir)
	if err != nil {
		logger.Fatal("err init upload dir", zap.Error(err))
	}

	indexCtx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	if err := StudentRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Fatal("err ensure student indexes", zap.Error(err))
	}
	if err := UserRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Fatal("err ensure user indexes", zap.Error(err))
	}
	cancel()

	Mailer := mail.NewSMTPMailer(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username, cfg.Mail.Password, cfg.Mail.FromName)

	// Initialize application layers
	FileApp := fileapp.NewFileApp(FileRepo)
	StudentApp := studentapp.NewStudentApp(StudentRepo, FileApp, publisher)
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo, Mailer, publisher)

	httpTransport := transport.NewTransport(cfg, StudentApp, UserApp, FileApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("err shutdown server", zap.Error(err))
	}
}
