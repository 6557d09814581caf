package routes

import (
	"github.com/Gkeerthanasilkskanchi/silks-api/controllers"
	"github.com/gin-gonic/gin"
)

func ProductRoutes(users *gin.RouterGroup, deps Deps) {
	products := deps.Repos.Products

	users.POST("/products", controllers.CreateProduct(products, deps.Config.UploadsDir))
	users.POST("/editProduct", controllers.EditProduct(products, deps.Config.UploadsDir))
	users.GET("/products/:email", controllers.FetchProducts(deps.Repos.Users, products))
	users.GET("/getFilteredProduct", controllers.GetFilteredProduct(products))
	users.GET("/getProductById/:id", controllers.GetProductByID(products))
	users.GET("/deleteProduct/:id", controllers.DeleteProduct(products))
	users.GET("/categories", controllers.GetCategories(products))
	users.POST("/categories-products", controllers.GetCategoryProducts(products))
}
