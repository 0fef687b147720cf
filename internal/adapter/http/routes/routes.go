package routes

import (
	"log"
	"os"
	"strconv"

	_ "oficina_xpto/docs" // This will be auto-generated
	"oficina_xpto/internal/adapter/http/handlers"
	"oficina_xpto/internal/adapter/http/middleware"
	repository2 "oficina_xpto/internal/adapter/persistence/repository"
	"oficina_xpto/internal/infrastructure/clock"
	"oficina_xpto/internal/infrastructure/database"
	"oficina_xpto/internal/infrastructure/notifications"
	"oficina_xpto/internal/infrastructure/payments"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	requestRepo := repository2.NewServiceRequestDynamoRepository(ddb)
	checkpointRepo := repository2.NewCheckpointDynamoRepository(ddb)
	itemRepo := repository2.NewServiceItemDynamoRepository(ddb)
	directoryRepo := repository2.NewDirectoryDynamoRepository(ddb)
	catalogRepo := repository2.NewCatalogDynamoRepository(ddb)
	paymentRepo := repository2.NewBillingPaymentDynamoRepository(ddb)

	notifier := notifications.NewHTTPDispatcher()
	clk := clock.System{}

	lifecycleUseCase := usecase.NewRequestLifecycleUseCase(requestRepo, directoryRepo, notifier, clk)
	checkpointUseCase := usecase.NewStatusUpdateUseCase(checkpointRepo, itemRepo, requestRepo, directoryRepo, notifier, clk)
	itemUseCase := usecase.NewServiceItemUseCase(itemRepo, checkpointRepo, requestRepo, directoryRepo, catalogRepo, notifier, clk)
	completionUseCase := usecase.NewCompletionUseCase(requestRepo, checkpointRepo, itemRepo, directoryRepo, notifier, clk)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}
	paymentUseCase := usecase.NewBillingPaymentUseCase(paymentRepo, requestRepo, paymentGateway, clk)

	lifecycleHandler := handlers.NewRequestLifecycleHandler(lifecycleUseCase)
	checkpointHandler := handlers.NewCheckpointHandler(checkpointUseCase)
	itemHandler := handlers.NewServiceItemHandler(itemUseCase)
	completionHandler := handlers.NewCompletionHandler(completionUseCase)
	billingPaymentHandler := handlers.NewBillingPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	v1.Use(middleware.Actor())
	addWorkflowRoutes(v1, lifecycleHandler, checkpointHandler, itemHandler, completionHandler)
	addPaymentRoutes(v1, billingPaymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
