package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"redemption-index/internal/cache"
	"redemption-index/internal/config"
	"redemption-index/internal/fetch"
	"redemption-index/internal/handler"
	"redemption-index/internal/index"
	"redemption-index/internal/job"
	"redemption-index/internal/provider"
	"redemption-index/internal/service"
	"redemption-index/pkg/tracing"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	_ "redemption-index/docs"
)

var (
	loadEnvFunc    = godotenv.Load
	loadConfigFunc = config.Load
	initRedisFunc  = cache.InitRedis
	initTracerFunc = tracing.InitTracer
	newEngineFunc  = func(tracer trace.Tracer, fetcher *fetch.Client, cfg index.Config) *index.Engine {
		quotes := provider.NewYahooProvider(tracer, fetcher)
		news := provider.NewNewsProvider(tracer, fetcher)
		views := provider.NewWikiProvider(tracer, fetcher)
		calendar := provider.NewHebcalProvider(tracer, fetcher)

		blackout := index.NewBlackoutCheck(tracer, calendar, cfg.Blackout)
		return index.NewEngine(tracer, blackout, cfg.UpdateInterval,
			index.NewEconomyEvaluator(tracer, quotes, news, cfg.Economy),
			index.NewIncivilityEvaluator(tracer, news, cfg.Incivility),
			index.NewDiscourseEvaluator(tracer, news, cfg.Discourse),
			index.NewDistractionEvaluator(tracer, views, news, cfg.Distraction),
		)
	}
	newIndexServiceFunc    = service.NewIndexService
	newRefreshJobFunc      = job.NewRefreshJob
	startRefreshJobFunc    = func(j *job.RefreshJob, ctx context.Context) { go j.Start(ctx) }
	newHandlerFunc         = handler.New
	newRouterFunc          = gin.Default
	setupSignalNotify      = signal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// @title           Redemption Index API
// @version         1.0
// @description     A composite daily index over public market, news, and calendar feeds.

// @host      localhost:8080
// @BasePath  /
func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init Redis (best effort, the report cache is optional)
	os.Setenv("REDIS_URL", cfg.RedisURL)
	initRedisFunc(ctx)

	// Init tracing
	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	// Build the scoring engine on top of the upstream providers
	idxCfg := index.DefaultConfig()
	idxCfg.Blackout.CutoffHour = cfg.BlackoutCutoffHour
	idxCfg.UpdateInterval = cfg.UpdateInterval()

	fetcher := fetch.NewClient(tracer, cfg.FetchTimeout())
	engine := newEngineFunc(tracer, fetcher, idxCfg)

	// A typed nil *redis.Client must not become a non-nil interface value.
	var reportCache service.RedisClient
	if cache.Client != nil {
		reportCache = cache.Client
	}
	indexService := newIndexServiceFunc(tracer, engine, reportCache, idxCfg.UpdateInterval)
	loc := cfg.Location()
	indexService.SetClock(func() time.Time { return time.Now().In(loc) })

	// Keep the cached report warm (background goroutine, stopped by ctx cancel)
	refreshJob := newRefreshJobFunc(tracer, indexService, idxCfg.UpdateInterval)
	startRefreshJobFunc(refreshJob, ctx)

	// Create handlers and routes
	h := newHandlerFunc(tracer, indexService)

	r := newRouterFunc()
	r.Use(otelgin.Middleware("redemption-index"))
	r.Use(cors.Default())

	h.RegisterRoutes(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
