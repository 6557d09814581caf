package controllers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Gkeerthanasilkskanchi/silks-api/config"
	"github.com/Gkeerthanasilkskanchi/silks-api/utils"
	"github.com/gin-gonic/gin"
)

// contactRequest covers all three contact flows; the populated fields decide
// which mail gets sent. Stars is untyped because clients send both numbers
// and strings.
type contactRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber"`
	RequestFor   string `json:"requestFor"`
	Date         string `json:"date"`
	Review       string `json:"review"`
	Stars        any    `json:"stars"`
}

// SendQuery forwards demo requests, reviews and newsletter subscriptions to
// the shop inbox. A body with a mobile number is a demo request, one with a
// review text is a review, anything else a subscription.
func SendQuery(smtp config.SMTP) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if smtp.Email == "" || smtp.Password == "" {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Email credentials missing. Please check server logs."})
			return
		}

		var body contactRequest
		if err := ctx.ShouldBindJSON(&body); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		var (
			subject  string
			htmlBody string
			err      error
		)
		switch {
		case body.MobileNumber != "":
			subject = "Demo Request for Product"
			htmlBody, err = utils.RenderQueryEmail(utils.QueryEmail{
				Name:         body.Name,
				Email:        body.Email,
				MobileNumber: body.MobileNumber,
				RequestFor:   body.RequestFor,
				Date:         body.Date,
			})
		case body.Review != "":
			subject = "Review Product"
			htmlBody, err = utils.RenderReviewEmail(utils.ReviewEmail{
				Name:         body.Name,
				Email:        body.Email,
				MobileNumber: body.MobileNumber,
				Review:       body.Review,
				Stars:        fmt.Sprint(body.Stars),
			})
		default:
			subject = "User Subscribtion"
			htmlBody, err = utils.RenderSubscriptionEmail(body.Email)
		}
		if err != nil {
			log.Println("Mail template error:", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email. Check server logs for details."})
			return
		}

		if err := utils.SendEmail(smtp, subject, htmlBody); err != nil {
			log.Println("Error sending contact email:", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email. Check server logs for details."})
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgEmailSent})
	}
}
