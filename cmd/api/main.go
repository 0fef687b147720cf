package main

import (
	_ "oficina_xpto/docs"
	"oficina_xpto/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Service Fulfillment Workflow API
// @version         1.0
// @description     Service fulfillment workflow (requests, checkpoints, items, completion, payments) backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey ActorID
// @in header
// @name X-Actor-Id
// @description Verified actor id set by the upstream gateway.

func main() {
	routes.Run()
}
