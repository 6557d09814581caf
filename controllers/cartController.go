package controllers

import (
	"errors"
	"net/http"

	"github.com/Gkeerthanasilkskanchi/silks-api/repository"
	"github.com/gin-gonic/gin"
)

type likeRequest struct {
	Email     string `json:"email" binding:"required"`
	ProductID int    `json:"productId" binding:"required"`
}

type cartRequest struct {
	Email     string `json:"email" binding:"required"`
	ProductID int    `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// LikeProduct toggles a like: first call adds it, the next removes it.
func LikeProduct(users *repository.Users, likes *repository.Likes) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var body likeRequest
		if err := ctx.ShouldBindJSON(&body); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		userID, err := users.IDByEmail(ctx.Request.Context(), body.Email)
		if errors.Is(err, repository.ErrNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgUserNotFound)
			return
		}
		if err != nil {
			sendInternalError(ctx, err)
			return
		}

		message, err := likes.Toggle(ctx.Request.Context(), userID, body.ProductID)
		if err != nil {
			sendInternalError(ctx, err)
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": message})
	}
}

// GetLikedProducts lists the caller's liked products. The path carries the
// caller's email; an unknown email simply has no likes.
func GetLikedProducts(users *repository.Users, likes *repository.Likes) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, err := users.IDByEmail(ctx.Request.Context(), ctx.Param("email"))
		if errors.Is(err, repository.ErrNotFound) {
			ctx.JSON(http.StatusOK, []any{})
			return
		}
		if err != nil {
			sendInternalError(ctx, err)
			return
		}

		products, err := likes.ListByUser(ctx.Request.Context(), userID)
		if err != nil {
			sendInternalError(ctx, err)
			return
		}

		for i := range products {
			products[i].Image = absoluteImageURL(ctx, products[i].Image)
		}
		ctx.JSON(http.StatusOK, products)
	}
}

// AddToCart toggles cart membership: absent products are added with the
// given quantity (default 1), present ones are removed.
func AddToCart(users *repository.Users, cart *repository.Cart) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var body cartRequest
		if err := ctx.ShouldBindJSON(&body); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}
		if body.Quantity <= 0 {
			body.Quantity = 1
		}

		userID, err := users.IDByEmail(ctx.Request.Context(), body.Email)
		if errors.Is(err, repository.ErrNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgUserNotFound)
			return
		}
		if err != nil {
			sendInternalError(ctx, err)
			return
		}

		message, err := cart.Toggle(ctx.Request.Context(), userID, body.ProductID, body.Quantity)
		if err != nil {
			sendInternalError(ctx, err)
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": message})
	}
}

// GetCart lists the caller's cart products with their stored quantities.
func GetCart(users *repository.Users, cart *repository.Cart) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, err := users.IDByEmail(ctx.Request.Context(), ctx.Param("email"))
		if errors.Is(err, repository.ErrNotFound) {
			ctx.JSON(http.StatusOK, []any{})
			return
		}
		if err != nil {
			sendInternalError(ctx, err)
			return
		}

		products, err := cart.ListByUser(ctx.Request.Context(), userID)
		if err != nil {
			sendInternalError(ctx, err)
			return
		}

		for i := range products {
			products[i].Image = absoluteImageURL(ctx, products[i].Image)
		}
		ctx.JSON(http.StatusOK, products)
	}
}
