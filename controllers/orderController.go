package controllers

import (
	"errors"
	"net/http"

	"github.com/Gkeerthanasilkskanchi/silks-api/repository"
	"github.com/gin-gonic/gin"
)

type orderRequest struct {
	Email     string  `json:"email" binding:"required"`
	ProductID int     `json:"id" binding:"required"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// CreateOrder appends an order row for the resolved user. Orders are
// append-only; nothing deduplicates repeated submissions.
func CreateOrder(users *repository.Users, orders *repository.Orders) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var body orderRequest
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

		if err := orders.Create(ctx.Request.Context(), userID, body.ProductID, body.Quantity, body.Price); err != nil {
			sendInternalError(ctx, err)
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgOrderAdded})
	}
}
