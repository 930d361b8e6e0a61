package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type AppProvider interface {
	Run() error
	Serve() func() error
	Stop(context.Context, context.Context) func() error
}

type App struct {
	logger         *zap.Logger
	config         *Config
	server         *http.Server
	cleanups       []func()
	queueConsumers []func(context.Context) error
}

// NewApp provides an instance of App.
func NewApp() (AppProvider, error) {
	config, err := LoadAndInitConfigs(GitCommit, GitTag, BuildTime)
	if err != nil {
		return nil, fmt.Errorf("failed to setup app configuration: %s", err)
	}

	// ensure the logs folder exists and Setup the logging module.
	err = os.MkdirAll(config.LogFolder, 0o700)
	if err != nil {
		return nil, fmt.Errorf("failed to create logging folder: %s", err)
	}
	clock := NewClock(config.IsProduction)
	writer := NewRSyncWriter(config, clock)
	closer := func() {
		if cerr := writer.Close(); cerr != nil {
			fmt.Println("error during closing of log file: ", cerr)
		}
	}
	logger, flusher := SetupLogging(config, writer, NewTickClock(clock))

	// Setup the in-memory repositories. The catalog is seeded with the sample
	// inventory while the order state stores start empty on each boot.
	catalogStorage := NewMemoryCatalogStorage(logger, SampleBooks(), SampleReviews())
	cartStorage := NewMemoryCartStorage(logger)
	wishlistStorage := NewMemoryWishlistStorage(logger)
	orderStorage := NewMemoryOrderStorage(logger)

	// Setup the checkout queue with its consumer and the api services.
	queue := NewMemoryQueue(0)
	checkoutConsumer := NewCheckoutConsumer(logger, queue, orderStorage, config.Store.CheckoutDelay)

	idsHandler := NewIDsHandler()
	catalogService := NewCatalogService(logger, config, catalogStorage)
	orderService := NewOrderService(logger, config, clock, idsHandler, catalogStorage, cartStorage, wishlistStorage, orderStorage, queue)
	authService := NewAuthService(logger, config, clock, idsHandler)

	apiService := NewAPIHandler(
		logger,
		config,
		&Statistics{
			version:   config.GitTag,
			container: IsAppRunningInDocker(),
			started:   time.Now(),
			runtime:   runtime.Version(),
			platform:  runtime.GOOS + "/" + runtime.GOARCH,
		},
		clock,
		idsHandler,
		catalogService,
		orderService,
		authService,
	)

	// Use git commit in case the tag is not set.
	if config.GitTag == "" {
		apiService.stats.version = config.GitCommit
	}

	// Build the map of middlewares stacks.
	middlewaresPublic, middlewaresOps := apiService.MiddlewaresStacks()

	// Configure the endpoints with their handlers and middlewares.
	router := apiService.SetupRoutes(httprouter.New(),
		&MiddlewareMap{
			public: middlewaresPublic.Chain,
			ops:    middlewaresOps.Chain,
		},
	)
	// Wrap the router with the default http timeout handler.
	routerWithTimeout := http.TimeoutHandler(
		router,
		config.Server.RequestTimeout,
		"Timeout. Processing taking too long. Please reach out to support.")

	// Build the api server definition.
	srv := &http.Server{
		Addr:           fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
		Handler:        routerWithTimeout,
		ReadTimeout:    config.Server.ReadTimeout,
		WriteTimeout:   config.Server.WriteTimeout,
		MaxHeaderBytes: 1 << 20, // Max headers size : 1MB
	}

	checkoutConsume := func(ctx context.Context) error {
		return checkoutConsumer.Consume(ctx, CheckoutQueue)
	}

	return &App{
		logger: logger,
		config: config,
		server: srv,
		cleanups: []func(){
			func() { _ = flusher() },
			closer,
		},
		queueConsumers: []func(ctx context.Context) error{checkoutConsume},
	}, nil
}

// Run starts the api web server and a goroutine which is responsible to stop it.
func (app *App) Run() error {
	defer app.Clean()
	nCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(nCtx)

	g.Go(app.ConsumeQueues(gCtx, g))
	g.Go(app.Serve())
	g.Go(app.Stop(nCtx, gCtx))

	err := g.Wait()
	app.logger.Info("api server stopped",
		zap.String("app.host", app.config.Server.Host),
		zap.String("app.port", app.config.Server.Port),
		zap.Error(err),
	)
	return err
}

// Clean calls all registered cleanups functions.
func (app *App) Clean() {
	for _, f := range app.cleanups {
		f()
	}
}

// Serve starts the api web server. It returned error
// will be caught by the errorgroup.
func (app *App) Serve() func() error {
	return func() error {
		app.logger.Info("api server starting",
			zap.String("app.host", app.config.Server.Host),
			zap.String("app.port", app.config.Server.Port),
		)
		err := app.server.ListenAndServe()
		if err == http.ErrServerClosed {
			err = nil
		}
		return err
	}
}

// Stop listens for the group context and triggers the server graceful shutdown.
// It states the reason of its call. We proceed with a brutal shutdown if the
// the graceful did not complete successfully. We explicitly return `nil` to
// allow the errorgroup catches only the `Serve` method result.
func (app *App) Stop(nCtx, gCtx context.Context) func() error {
	return func() error {
		<-gCtx.Done()

		if nCtx.Err() != nil {
			app.logger.Info("api server stopping. reason: requested to stop")
		} else {
			app.logger.Info("api server stopping. reason: errored at running")
		}

		sCtx, cancel := context.WithTimeout(context.Background(), app.config.Server.ShutdownTimeout)
		defer cancel()
		err := app.server.Shutdown(sCtx)
		switch err {
		case nil, http.ErrServerClosed:
			app.logger.Info("api server graceful shutdown succeeded")
		case context.DeadlineExceeded:
			app.logger.Info("api server graceful shutdown timed out")
		default:
			app.logger.Info("api server graceful shutdown failed", zap.Error(err))
		}

		if err != nil && err != http.ErrServerClosed {
			app.logger.Info("api server going to force shutdown", zap.Error(app.server.Close()))
		}
		return nil
	}
}

// ConsumeQueues runs all queue consumers into separate controlled goroutines.
func (app *App) ConsumeQueues(gCtx context.Context, g *errgroup.Group) func() error {
	return func() error {
		for _, consume := range app.queueConsumers {
			f := func() error {
				return consume(gCtx)
			}
			g.Go(f)
		}
		return nil
	}
}
