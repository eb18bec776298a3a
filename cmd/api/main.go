package main

import (
	_ "engagement_service/docs"
	"engagement_service/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Engagement Service API
// @version         1.0
// @description     Marketplace engagement lifecycle: quotes, provider status, agreements, request lifecycle and workflow milestones.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey ProfileID
// @in header
// @name X-Profile-ID
// @description Identifier of the acting profile, resolved by the gateway.

func main() {
	routes.Run()
}
