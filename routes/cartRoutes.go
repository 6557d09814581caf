package routes

import (
	"github.com/Gkeerthanasilkskanchi/silks-api/controllers"
	"github.com/gin-gonic/gin"
)

func CartRoutes(users *gin.RouterGroup, deps Deps) {
	users.POST("/like", controllers.LikeProduct(deps.Repos.Users, deps.Repos.Likes))
	users.GET("/likes/:email", controllers.GetLikedProducts(deps.Repos.Users, deps.Repos.Likes))
	users.POST("/cart", controllers.AddToCart(deps.Repos.Users, deps.Repos.Cart))
	users.GET("/cart/:email", controllers.GetCart(deps.Repos.Users, deps.Repos.Cart))
}
