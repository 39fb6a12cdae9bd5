package routes

import (
	"context"
	"log"
	"net/http"

	_ "github.com/IgorSouzaLima/rjlima/docs" // generated by swag init
	"github.com/IgorSouzaLima/rjlima/internal/adapter/auth"
	"github.com/IgorSouzaLima/rjlima/internal/adapter/http/handlers"
	"github.com/IgorSouzaLima/rjlima/internal/adapter/http/templates"
	"github.com/IgorSouzaLima/rjlima/internal/adapter/persistence/repository"
	"github.com/IgorSouzaLima/rjlima/internal/adapter/queue"
	"github.com/IgorSouzaLima/rjlima/internal/adapter/storage"
	"github.com/IgorSouzaLima/rjlima/internal/infrastructure/config"
	"github.com/IgorSouzaLima/rjlima/internal/infrastructure/metrics"
	"github.com/IgorSouzaLima/rjlima/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	closeFn := getRoutes(cfg)
	defer closeFn()

	if err := router.Run(cfg.HTTPAddress); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) func() {
	ctx := context.Background()

	invoiceRepo, closeRepo, err := repository.NewInvoiceRepository(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to the invoice store: %v", err)
	}

	proofStorage, err := storage.NewProofMinioStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to configure proof storage: %v", err)
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
	cleanupQueue := queue.NewProofCleanupQueue(asynqClient)

	authProvider := auth.NewLocalProvider(cfg.AdminEmail, cfg.AdminPasswordHash, cfg.SessionSecret, cfg.SessionTTL)

	invoiceUseCase := usecase.NewInvoiceAdminUseCase(invoiceRepo, proofStorage, cleanupQueue, cfg.PageSize)
	trackingUseCase := usecase.NewTrackingUseCase(invoiceRepo)
	sessionUseCase := usecase.NewSessionUseCase(authProvider)

	invoiceHandler := handlers.NewInvoiceHandler(invoiceUseCase, cfg.ProofMaxBytes)
	trackingHandler := handlers.NewTrackingHandler(trackingUseCase)
	sessionHandler := handlers.NewSessionHandler(sessionUseCase)
	pageHandler := handlers.NewPageHandler(invoiceUseCase, trackingUseCase, sessionUseCase, cfg.ProofMaxBytes)

	router.SetHTMLTemplate(templates.Must())
	router.MaxMultipartMemory = cfg.ProofMaxBytes

	// Paginas
	addPageRoutes(router, pageHandler, sessionUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addTrackingRoutes(v1, trackingHandler)
	addSessionRoutes(v1, sessionHandler, sessionUseCase)

	// Rotas autenticadas
	admin := v1.Group("", handlers.RequireSession(sessionUseCase))
	addInvoiceRoutes(admin, invoiceHandler)

	return func() {
		if err := asynqClient.Close(); err != nil {
			log.Printf("[routes] asynq client close failed err=%v", err)
		}
		closeRepo()
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(metrics.Middleware())
}
