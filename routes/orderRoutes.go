package routes

import (
	"github.com/Gkeerthanasilkskanchi/silks-api/controllers"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(users *gin.RouterGroup, deps Deps) {
	users.POST("/create-order", controllers.CreateOrder(deps.Repos.Users, deps.Repos.Orders))
}
