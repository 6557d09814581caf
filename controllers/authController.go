package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Gkeerthanasilkskanchi/silks-api/models"
	"github.com/Gkeerthanasilkskanchi/silks-api/repository"
	"github.com/Gkeerthanasilkskanchi/silks-api/store"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	// Standard response messages
	msgInvalidInput        = "invalid input"
	msgUserAlreadyExists   = "User already exists"
	msgUserRegistered      = "User registered successfully"
	msgInvalidCredentials  = "Invalid credentials"
	msgLoginSuccessful     = "Login successful"
	msgInternalServerError = "Internal server error"
	msgUserNotFound        = "User not found"
	msgAllFieldsRequired   = "All fields are required."
	msgProductAdded        = "Product added successfully"
	msgOrderAdded          = "Order added successfully"
	msgCategoryRequired    = "Category is required"
	msgEmailSent           = "Email sent successfully!"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

// sendInternalError logs the cause and replies with the fixed generic
// message; specific store failures are never leaked to clients.
func sendInternalError(ctx *gin.Context, err error) {
	if errors.Is(err, store.ErrStoreUnavailable) {
		log.Println("Store error:", err)
	} else {
		log.Println("Unexpected error:", err)
	}
	sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func generateJWT(user models.User, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"email":    user.Email,
		"username": user.UserName,
		"role":     user.Role,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(time.Hour * 24 * 30).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// Register handles user registration
func Register(users *repository.Users) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var registerData models.RegisterData
		if err := ctx.ShouldBindJSON(&registerData); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		existing, err := users.GetByEmail(ctx.Request.Context(), registerData.Email)
		if err != nil {
			sendInternalError(ctx, err)
			return
		}
		if existing != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgUserAlreadyExists)
			return
		}

		hashedPassword, err := hashPassword(registerData.Password)
		if err != nil {
			log.Println("Password hashing error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}

		// Self-registered accounts get the admin role; the storefront has no
		// separate admin signup.
		if err := users.Create(ctx.Request.Context(), registerData.Email, hashedPassword, "admin", registerData.UserName); err != nil {
			sendInternalError(ctx, err)
			return
		}

		sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": msgUserRegistered})
	}
}

// Login handles user authentication
func Login(users *repository.Users, jwtSecret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var loginData models.LoginData
		if err := ctx.ShouldBindJSON(&loginData); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		user, err := users.GetByEmail(ctx.Request.Context(), loginData.Email)
		if err != nil {
			sendInternalError(ctx, err)
			return
		}
		if user == nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
			return
		}

		if err := comparePasswords(user.Password, loginData.Password); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidCredentials)
			return
		}

		tokenString, err := generateJWT(*user, jwtSecret)
		if err != nil {
			log.Println("JWT generation error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": msgLoginSuccessful,
			"role":    user.Role,
			"token":   tokenString,
		})
	}
}

// GetUserList returns every registered user.
func GetUserList(users *repository.Users) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		list, err := users.List(ctx.Request.Context())
		if err != nil {
			sendInternalError(ctx, err)
			return
		}
		sendJSONResponse(ctx, http.StatusCreated, gin.H{"data": list})
	}
}
