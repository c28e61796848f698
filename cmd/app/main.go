package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/tsel-ticketmaster/tm-availability/config"
	adminapp_event "github.com/tsel-ticketmaster/tm-availability/internal/module/adminapp/event"
	"github.com/tsel-ticketmaster/tm-availability/internal/module/customerapp/availability"
	"github.com/tsel-ticketmaster/tm-availability/internal/module/customerapp/checkout"
	customerapp_event "github.com/tsel-ticketmaster/tm-availability/internal/module/customerapp/event"
	"github.com/tsel-ticketmaster/tm-availability/internal/pkg/jwt"
	internalMiddleare "github.com/tsel-ticketmaster/tm-availability/internal/pkg/middleware"
	"github.com/tsel-ticketmaster/tm-availability/internal/pkg/session"
	"github.com/tsel-ticketmaster/tm-availability/migration"
	"github.com/tsel-ticketmaster/tm-availability/pkg/applogger"
	"github.com/tsel-ticketmaster/tm-availability/pkg/gctasks"
	"github.com/tsel-ticketmaster/tm-availability/pkg/kafka"
	"github.com/tsel-ticketmaster/tm-availability/pkg/middleware"
	"github.com/tsel-ticketmaster/tm-availability/pkg/monitoring"
	"github.com/tsel-ticketmaster/tm-availability/pkg/postgresql"
	"github.com/tsel-ticketmaster/tm-availability/pkg/pubsub"
	"github.com/tsel-ticketmaster/tm-availability/pkg/redis"
	"github.com/tsel-ticketmaster/tm-availability/pkg/server"
	"github.com/tsel-ticketmaster/tm-availability/pkg/validator"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

var c *config.Config

func init() {
	c = config.Get()
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := applogger.GetLogrus()

	mon := monitoring.NewOpenTelemetry(
		c.Application.Name,
		c.Application.Environment,
		c.GCP.ProjectID,
	)

	mon.Start(ctx)

	validate := validator.Get()

	location, err := time.LoadLocation(c.Application.Timezone)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Fatal()
	}

	jsonWebToken := jwt.NewJSONWebToken(c.JWT.PrivateKey, c.JWT.PublicKey)

	psqldb := postgresql.GetDatabase()
	if err := psqldb.Ping(); err != nil {
		logger.WithContext(ctx).WithError(err).Error()
	}

	if c.PostgreSQL.Migrate {
		migration.Up(logger, psqldb, c.PostgreSQL.Database)
	}

	publisher := pubsub.PublisherFromConfluentKafkaProducer(logger, kafka.NewProducer())

	subscriber := pubsub.SubscriberFromConfluentKafkaConsumer(logger, kafka.NewConsumer())

	rc := redis.GetClient()
	if err := rc.Ping(context.Background()).Err(); err != nil {
		logger.WithContext(ctx).WithError(err).Error()
	}

	cloudTask := gctasks.NewGCTasks(logger, c.GCP.ProjectID, c.GCP.Location, []byte(c.GCP.ServiceAccount))

	session := session.NewRedisSessionStore(logger, rc)

	customerSessionMiddleware := internalMiddleare.NewCustomerSessionMiddleware(jsonWebToken, session)
	adminSessionMiddleware := internalMiddleare.NewAdminSessionMiddleware(jsonWebToken, session)

	router := mux.NewRouter()
	router.Use(
		otelmux.Middleware(c.Application.Name),
		middleware.HTTPResponseTraceInjection,
		middleware.NewHTTPRequestLogger(logger, c.Application.Debug, http.StatusInternalServerError).Middleware,
	)

	// admin's app
	adminappEventRepo := adminapp_event.NewEventRepository(logger, psqldb)
	adminappCategoryRepo := adminapp_event.NewCategoryRepository(logger, psqldb)
	adminappEventCacheRepo := adminapp_event.NewCacheRepository(logger, rc)
	adminappEventUseCase := adminapp_event.NewEventUseCase(adminapp_event.EventUseCaseProperty{
		Logger:             logger,
		Location:           location,
		Timeout:            c.Application.Timeout,
		EventRepository:    adminappEventRepo,
		CategoryRepository: adminappCategoryRepo,
		CacheRepository:    adminappEventCacheRepo,
	})
	adminapp_event.InitHTTPHandler(router, adminSessionMiddleware, validate, adminappEventUseCase)

	// customer's app
	customerappEventRepo := customerapp_event.NewEventRepository(logger, psqldb)
	customerappCategoryRepo := customerapp_event.NewCategoryRepository(logger, psqldb)
	customerappEventCacheRepo := customerapp_event.NewCacheRepository(logger, rc, c.EventCache.TTL)
	customerappEventUseCase := customerapp_event.NewEventUseCase(customerapp_event.EventUseCaseProperty{
		Logger:             logger,
		Timeout:            c.Application.Timeout,
		EventRepository:    customerappEventRepo,
		CategoryRepository: customerappCategoryRepo,
		CacheRepository:    customerappEventCacheRepo,
	})
	customerapp_event.InitHTTPHandler(router, validate, customerappEventUseCase)
	customerapp_event.InitSubscriberHandler(subscriber, customerappEventUseCase)

	availabilityUseCase := availability.NewAvailabilityUseCase(availability.AvailabilityUseCaseProperty{
		Logger:          logger,
		Timeout:         c.Application.Timeout,
		EventRepository: customerappEventRepo,
	})
	availability.InitHTTPHandler(router, validate, availabilityUseCase)

	checkoutIntentRepo := checkout.NewIntentRepository(logger, psqldb)
	checkoutUseCase := checkout.NewCheckoutUseCase(checkout.CheckoutUseCaseProperty{
		Logger:               logger,
		Timeout:              c.Application.Timeout,
		BaseURL:              c.Application.BaseURL,
		IntentExpireDuration: c.Checkout.IntentExpiration,
		IntentRepository:     checkoutIntentRepo,
		EventRepository:      customerappEventRepo,
		Publisher:            publisher,
		CloudTask:            cloudTask,
	})
	checkout.InitHTTPHandler(router, customerSessionMiddleware, validate, checkoutUseCase)

	go subscriber.Start(ctx)

	handler := middleware.SetChain(
		router,
		cors.New(cors.Options{
			AllowedOrigins:   c.CORS.AllowedOrigins,
			AllowedMethods:   c.CORS.AllowedMethods,
			AllowedHeaders:   c.CORS.AllowedHeaders,
			ExposedHeaders:   c.CORS.ExposedHeaders,
			MaxAge:           c.CORS.MaxAge,
			AllowCredentials: c.CORS.AllowCredentials,
		}).Handler,
	)

	srv := &server.Server{
		Server: http.Server{
			Addr:    fmt.Sprintf(":%d", c.Application.Port),
			Handler: handler,
		},
		Logger: logger,
	}

	go func() {
		srv.ListenAndServe()
	}()

	sigterm := make(chan os.Signal, 1)
	signal.Notify(sigterm, syscall.SIGINT, syscall.SIGTERM)
	<-sigterm

	srv.Shutdown(ctx)
	subscriber.Close()
	publisher.Close()
	cloudTask.Close()
	psqldb.Close()
	rc.Close()
	mon.Stop(ctx)
}
