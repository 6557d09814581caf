package routes

import (
	"github.com/Gkeerthanasilkskanchi/silks-api/controllers"
	"github.com/gin-gonic/gin"
)

func ContactRoutes(users *gin.RouterGroup, deps Deps) {
	sendQuery := controllers.SendQuery(deps.Config.SMTP)

	users.POST("/send-query", sendQuery)
	users.POST("/send-review", sendQuery)
	users.POST("/send-subscribtion", sendQuery)
}
