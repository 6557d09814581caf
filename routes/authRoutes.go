package routes

import (
	"github.com/Gkeerthanasilkskanchi/silks-api/controllers"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(users *gin.RouterGroup, deps Deps) {
	users.POST("/register", controllers.Register(deps.Repos.Users))
	users.POST("/login", controllers.Login(deps.Repos.Users, deps.Config.JWTSecret))
	users.GET("/get-user-list", controllers.GetUserList(deps.Repos.Users))
}
