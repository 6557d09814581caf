package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the G Keerthana Silks API.

The following are the endpoints for this API:

AUTH
- POST "/users/register" - Create user account
- POST "/users/login" - Access user account
- GET "/users/get-user-list" - List registered users

PRODUCT
- POST "/users/products" - Create new product (multipart, field "image")
- POST "/users/editProduct" - Edit an existing product
- GET "/users/products/{email}" - List products with like/cart flags ("null" for anonymous)
- GET "/users/getFilteredProduct?page&keyword" - Paged catalog search
- GET "/users/getProductById/{id}" - Get product by ID
- GET "/users/deleteProduct/{id}" - Soft-deactivate a product
- GET "/users/categories" - List product categories
- POST "/users/categories-products" - List products of one category

LIKES & CART
- POST "/users/like" - Toggle a like
- GET "/users/likes/{email}" - List liked products
- POST "/users/cart" - Toggle a cart item
- GET "/users/cart/{email}" - List cart products

ORDER & CONTACT
- POST "/users/create-order" - Create a new order
- POST "/users/send-query" - Send a demo request
- POST "/users/send-review" - Send a product review
- POST "/users/send-subscribtion" - Subscribe to the newsletter`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
