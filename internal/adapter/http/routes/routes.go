package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "oficina_xpto/docs" // This will be auto-generated
	"oficina_xpto/internal/adapter/http/handlers"
	repository2 "oficina_xpto/internal/adapter/persistence/repository"
	"oficina_xpto/internal/infrastructure/config"
	"oficina_xpto/internal/infrastructure/database"
	"oficina_xpto/internal/infrastructure/mail"
	"oficina_xpto/internal/infrastructure/messaging"
	"oficina_xpto/internal/infrastructure/ordersync"
	"oficina_xpto/internal/infrastructure/scheduler"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server and block until SIGINT/SIGTERM, then stop the
// schedulers and drain in-flight requests.
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	stop := getRoutes(cfg)
	defer stop()

	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.Port),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err.Error())
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
}

// getRoutes wires repositories, infrastructure clients, usecases and handlers
// and returns a stop function for the background schedulers.
func getRoutes(cfg config.Config) func() {
	ddb := database.ConnectDynamoDB()

	budgetRepo := repository2.NewBudgetDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	orderRepo := repository2.NewServiceOrderDynamoRepository(ddb)

	// Event publishing and mail are optional at boot: without a reachable
	// broker or SMTP host the workflow still runs, minus those side effects.
	var publisher interfaces.IEventPublisher
	rabbit, err := messaging.NewRabbitMQPublisher(cfg.RabbitMQURL)
	if err != nil {
		log.Printf("RabbitMQ publisher not configured: %v", err)
	} else {
		publisher = rabbit
	}

	var notifier interfaces.INotifier
	smtp, err := mail.NewSMTPNotifier(cfg.Mail)
	if err != nil {
		log.Printf("SMTP notifier not configured: %v", err)
	} else {
		notifier = smtp
	}

	syncClient := ordersync.NewClient(cfg.OrderServiceURL, cfg.APIKey, cfg.OrderSyncRequestTimeout)

	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo, orderRepo, notifier, publisher)
	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, budgetRepo, orderRepo, notifier, publisher, syncClient)
	orderSyncUseCase := usecase.NewOrderSyncUseCase(orderRepo, syncClient)

	completion := scheduler.NewDelayedCompletionScheduler(cfg.PaymentCompletionDelay, paymentUseCase.Complete)
	paymentUseCase.SetCompletionScheduler(completion)

	reconciliation := scheduler.NewReconciliationScheduler(cfg.RetrySyncInterval, orderSyncUseCase.RetryFailedSyncs)
	reconciliation.Start()

	budgetHandler := handlers.NewBudgetHandler(budgetUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	orderHandler := handlers.NewOrderHandler(orderSyncUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkflowRoutes(v1, budgetHandler, paymentHandler, orderHandler)

	return func() {
		reconciliation.Stop()
		completion.Stop()
		if rabbit != nil {
			rabbit.Close()
		}
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
