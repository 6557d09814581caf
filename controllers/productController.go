package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Gkeerthanasilkskanchi/silks-api/models"
	"github.com/Gkeerthanasilkskanchi/silks-api/repository"
	"github.com/gin-gonic/gin"
)

// productForm pulls the multipart text fields of a product create/edit.
// The image file is handled separately.
func productForm(ctx *gin.Context) (models.ProductFields, bool) {
	fields := models.ProductFields{
		Title:     ctx.PostForm("title"),
		About:     ctx.PostForm("about"),
		Cloth:     ctx.PostForm("cloth"),
		Category:  ctx.PostForm("category"),
		BoughtBy:  ctx.PostForm("bought_by"),
		SareeType: ctx.PostForm("saree_type"),
		Email:     ctx.PostForm("email"),
	}

	priceStr := ctx.PostForm("price")
	if fields.Title == "" || priceStr == "" || fields.About == "" || fields.Cloth == "" ||
		fields.Category == "" || fields.BoughtBy == "" || fields.SareeType == "" {
		return fields, false
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		return fields, false
	}
	fields.Price = price
	return fields, true
}

// saveUpload writes the product image under the uploads directory and
// returns the relative path stored in the image column (and later served
// under /uploads).
func saveUpload(ctx *gin.Context, uploadsDir string) (string, error) {
	file, err := ctx.FormFile("image")
	if err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s-%s",
		time.Now().Format("20060102150405"),
		strings.ReplaceAll(file.Filename, " ", "_"))

	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		return "", err
	}
	if err := ctx.SaveUploadedFile(file, filepath.Join(uploadsDir, filename)); err != nil {
		return "", err
	}
	return "uploads/" + filename, nil
}

// absoluteImageURL rewrites the stored relative image path into an absolute
// URL on the host serving this request.
func absoluteImageURL(ctx *gin.Context, image string) string {
	scheme := "http"
	if ctx.Request.TLS != nil {
		scheme = "https"
	}
	image = strings.ReplaceAll(image, "\\", "/")
	return fmt.Sprintf("%s://%s/%s", scheme, ctx.Request.Host, image)
}

// CreateProduct adds a catalog product from a multipart form with an image
// file.
func CreateProduct(products *repository.Products, uploadsDir string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		fields, ok := productForm(ctx)
		if !ok {
			sendErrorResponse(ctx, http.StatusBadRequest, msgAllFieldsRequired)
			return
		}

		image, err := saveUpload(ctx, uploadsDir)
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgAllFieldsRequired)
			return
		}
		fields.Image = image

		if err := products.Create(ctx.Request.Context(), fields); err != nil {
			sendInternalError(ctx, err)
			return
		}
		sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": msgProductAdded})
	}
}

// EditProduct rewrites an existing product from the same multipart form,
// plus an id field.
func EditProduct(products *repository.Products, uploadsDir string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := strconv.Atoi(ctx.PostForm("id"))
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgAllFieldsRequired)
			return
		}

		fields, ok := productForm(ctx)
		if !ok {
			sendErrorResponse(ctx, http.StatusBadRequest, msgAllFieldsRequired)
			return
		}

		image, err := saveUpload(ctx, uploadsDir)
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgAllFieldsRequired)
			return
		}
		fields.Image = image

		if err := products.Edit(ctx.Request.Context(), id, fields); err != nil {
			sendInternalError(ctx, err)
			return
		}
		sendJSONResponse(ctx, http.StatusCreated, gin.H{"message": msgProductAdded})
	}
}

// FetchProducts lists every active product, flagged with the caller's like
// and cart membership. The path carries the caller's email, or the literal
// "null" for anonymous browsing.
func FetchProducts(users *repository.Users, products *repository.Products) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID := 0
		if email := ctx.Param("email"); email != "null" {
			id, err := users.IDByEmail(ctx.Request.Context(), email)
			switch {
			case errors.Is(err, repository.ErrNotFound):
				// unknown email browses anonymously
			case err != nil:
				sendInternalError(ctx, err)
				return
			default:
				userID = id
			}
		}

		flagged, err := products.ListWithFlags(ctx.Request.Context(), userID)
		if err != nil {
			sendInternalError(ctx, err)
			return
		}

		for i := range flagged {
			flagged[i].Image = absoluteImageURL(ctx, flagged[i].Image)
		}
		ctx.JSON(http.StatusOK, flagged)
	}
}

// GetFilteredProduct pages through the catalog with an optional keyword.
func GetFilteredProduct(products *repository.Products) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
		if err != nil || page < 1 {
			page = 1
		}
		keyword := ctx.Query("keyword")

		result, err := products.ListFiltered(ctx.Request.Context(), page, keyword)
		if err != nil {
			sendInternalError(ctx, err)
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{"data": result})
	}
}

// GetProductByID returns one active product. Missing and soft-deleted
// products are indistinguishable.
func GetProductByID(products *repository.Products) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
			return
		}

		product, err := products.GetByID(ctx.Request.Context(), id)
		if err != nil {
			sendInternalError(ctx, err)
			return
		}
		if product == nil {
			sendErrorResponse(ctx, http.StatusInternalServerError,
				fmt.Sprintf("Product with ID %d not found or inactive.", id))
			return
		}

		product.Image = absoluteImageURL(ctx, product.Image)
		ctx.JSON(http.StatusOK, product)
	}
}

// DeleteProduct soft-deactivates a product; the row survives with its
// active flag cleared.
func DeleteProduct(products *repository.Products) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, err := strconv.Atoi(ctx.Param("id"))
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Invalid product ID")
			return
		}

		if err := products.SetActive(ctx.Request.Context(), id, false); err != nil {
			sendInternalError(ctx, err)
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{"data": nil})
	}
}

// GetCategories lists the distinct categories of active products.
func GetCategories(products *repository.Products) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		categories, err := products.Categories(ctx.Request.Context())
		if err != nil {
			sendInternalError(ctx, err)
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{"data": categories})
	}
}

// GetCategoryProducts lists the active products of one category.
func GetCategoryProducts(products *repository.Products) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var body struct {
			Category string `json:"category"`
		}
		if err := ctx.ShouldBindJSON(&body); err != nil || strings.TrimSpace(body.Category) == "" {
			sendErrorResponse(ctx, http.StatusBadRequest, msgCategoryRequired)
			return
		}

		list, err := products.ListByCategory(ctx.Request.Context(), body.Category)
		if err != nil {
			sendInternalError(ctx, err)
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{"data": list})
	}
}
