package routes

import (
	"github.com/Gkeerthanasilkskanchi/silks-api/config"
	"github.com/Gkeerthanasilkskanchi/silks-api/controllers"
	"github.com/Gkeerthanasilkskanchi/silks-api/repository"
	"github.com/gin-gonic/gin"
)

// Deps carries everything the handlers are built from. main constructs it
// once; nothing else reaches for globals.
type Deps struct {
	Config config.Config
	Repos  *repository.Repositories
}

// SetupRoutes wires every endpoint. All catalog routes live under /users,
// matching the paths the storefront already calls.
func SetupRoutes(server *gin.Engine, deps Deps) {
	server.GET("/", controllers.GetHome)

	users := server.Group("/users")
	AuthRoutes(users, deps)
	ProductRoutes(users, deps)
	CartRoutes(users, deps)
	OrderRoutes(users, deps)
	ContactRoutes(users, deps)
}
