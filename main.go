package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tasknest/tasknest-api/handlers"
	"github.com/tasknest/tasknest-api/internal/authn"
	"github.com/tasknest/tasknest-api/internal/callable"
	"github.com/tasknest/tasknest-api/internal/config"
	"github.com/tasknest/tasknest-api/internal/database"
	"github.com/tasknest/tasknest-api/internal/identity"
	"github.com/tasknest/tasknest-api/internal/messaging"
	"github.com/tasknest/tasknest-api/internal/platform"
	todohandler "github.com/tasknest/tasknest-api/internal/todo/handler"
	todorepo "github.com/tasknest/tasknest-api/internal/todo/repository"
	todoservice "github.com/tasknest/tasknest-api/internal/todo/service"
	"github.com/tasknest/tasknest-api/internal/users"
	"github.com/tasknest/tasknest-api/pkg/logger"
	"github.com/tasknest/tasknest-api/pkg/metrics"
	"github.com/tasknest/tasknest-api/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v firebase=%v", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.Firebase.ProjectID != "" || cfg.Firebase.CredentialsFile != "")

	ctx := context.Background()
	r := gin.New()

	// Cross-cutting middleware: permissive CORS, security headers, compression,
	// request logging, panic recovery, request metrics.
	r.Use(middleware.CORS())
	r.Use(middleware.SecurityHeaders())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.RequestMetrics())

	// Platform clients are constructed once here and injected below; handlers
	// never reach for globals.
	var (
		mongoClient *mongo.Client
		redisClient *redis.Client
		fb          *platform.Firebase
		verifier    middleware.Verifier
	)

	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("connected to Redis at %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}

	fb, err = platform.InitFirebase(ctx, cfg.Firebase.CredentialsFile, cfg.Firebase.ProjectID)
	if err != nil {
		logger.Warnf("failed to initialize firebase clients: %v", err)
		fb = nil
	}

	// token verification: platform verifier when available, insecure parsing
	// only under explicit opt-in for local/integration runs
	if fb != nil {
		verifier = authn.NewFirebaseVerifier(fb.Auth)
	} else if strings.EqualFold(strings.TrimSpace(os.Getenv("ALLOW_INSECURE_TOKEN")), "true") {
		logger.Warn("enabling insecure token verifier (integration mode)")
		verifier = authn.NewInsecureVerifier()
	}
	r.Use(middleware.IdentityMiddleware(verifier))

	// Optional global rate limiter (per-user when authenticated, otherwise per-IP)
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	handlers.RegisterHealth(r)

	if cfg.MongoDB.URI != "" {
		client, err := database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		if err != nil {
			logger.Warnf("could not connect to MongoDB: %v", err)
		} else {
			mongoClient = client
			defer func() { _ = mongoClient.Disconnect(ctx) }()
		}
	}

	// readiness endpoint — return 200 only when critical dependencies are available
	r.GET("/ready", func(c *gin.Context) {
		deps := map[string]bool{
			"mongo":    mongoClient != nil,
			"firebase": fb != nil,
		}
		if cfg.Redis.Host != "" {
			deps["redis"] = redisClient != nil
		} else {
			deps["redis"] = true
		}
		ready := deps["mongo"] && deps["redis"]
		status := http.StatusOK
		label := "ready"
		if !ready {
			status = http.StatusServiceUnavailable
			label = "not_ready"
		}
		c.JSON(status, gin.H{"status": label, "deps": deps, "uptime": time.Since(startTime).String()})
	})

	// Document-store surfaces
	if mongoClient != nil {
		db := mongoClient.Database(cfg.MongoDB.Database)

		userSvc := users.NewService(users.NewMongoUserRepository(db.Collection("users")))
		handlers.NewUserHandler(userSvc).Register(r)

		todoSvc := todoservice.New(todorepo.NewMongoRepo(db.Collection("todos")))
		todohandler.RegisterTodoRoutes(r, todoSvc)
	} else {
		logger.Warnf("users/todos routes not registered because MongoDB is unavailable")
	}

	// Callable surface
	if fb != nil {
		d := callable.NewDispatcher()
		d.Register("createUser", callable.CreateUser(identity.NewFirebaseClient(fb.Auth)))
		d.Register("sendNotification", callable.SendNotification(messaging.NewFCMSender(fb.Messaging)))
		callable.RegisterHTTP(r, d)
	} else {
		logger.Warnf("callable operations not registered because firebase is unavailable")
	}

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("starting tasknest-api on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}
