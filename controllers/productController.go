package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/endabelyu/nakama-api/config"
	"github.com/endabelyu/nakama-api/models"
	"github.com/endabelyu/nakama-api/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.Atoi(ctx.Param(name))
	if err != nil || id < 1 {
		sendErrorMessage(ctx, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
		limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
		q := ctx.Query("q")
		sort := ctx.DefaultQuery("sort", "asc")

		products, pagination, err := services.GetProducts(db, page, limit, q, sort)
		if err != nil {
			sendError(ctx, err)
			return
		}

		sendSuccess(ctx, http.StatusOK, "Products fetched successfully", gin.H{
			"products":   products,
			"pagination": pagination,
		})
	}
}

func GetProductBySlug(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		product, err := services.GetProductBySlug(db, ctx.Param("slug"))
		if err != nil {
			sendError(ctx, err)
			return
		}

		sendSuccess(ctx, http.StatusOK, "Product fetched successfully", product)
	}
}

func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var product models.Product
		if err := ctx.ShouldBindJSON(&product); err != nil {
			sendErrorMessage(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		created, err := services.CreateProduct(db, product)
		if err != nil {
			sendError(ctx, err)
			return
		}

		sendSuccess(ctx, http.StatusCreated, "Product created successfully", created)
	}
}

func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		productID, ok := parseIDParam(ctx, "id")
		if !ok {
			return
		}

		var data models.ProductUpdateData
		if err := ctx.ShouldBindJSON(&data); err != nil {
			sendErrorMessage(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		product, err := services.UpdateProduct(db, productID, data)
		if err != nil {
			sendError(ctx, err)
			return
		}

		sendSuccess(ctx, http.StatusOK, "Product updated successfully", product)
	}
}

func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		productID, ok := parseIDParam(ctx, "id")
		if !ok {
			return
		}

		if err := services.DeleteProduct(db, productID); err != nil {
			sendError(ctx, err)
			return
		}

		sendSuccess(ctx, http.StatusOK, "Product deleted successfully", nil)
	}
}

func getS3Uploader() (*manager.Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

// UploadProductImages stores multipart image uploads in S3 and records their
// URLs against the product.
func UploadProductImages(db *gorm.DB, cfg *config.Config) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		productID, ok := parseIDParam(ctx, "id")
		if !ok {
			return
		}

		form, err := ctx.MultipartForm()
		if err != nil {
			sendErrorMessage(ctx, http.StatusBadRequest, "invalid form data")
			return
		}

		files := form.File["images"]
		if len(files) == 0 {
			sendErrorMessage(ctx, http.StatusBadRequest, "no files uploaded")
			return
		}

		if _, err := services.GetProductByID(db, productID); err != nil {
			sendError(ctx, err)
			return
		}

		uploader, err := getS3Uploader()
		if err != nil {
			log.Println("AWS configuration error:", err)
			sendErrorMessage(ctx, http.StatusInternalServerError, "failed to configure uploads")
			return
		}

		var uploadedUrls []string
		var failedUploads []string

		for _, file := range files {
			f, openErr := file.Open()
			if openErr != nil {
				log.Printf("Error opening file %s: %v", file.Filename, openErr)
				failedUploads = append(failedUploads, file.Filename)
				continue
			}

			// Unique key so repeated uploads never overwrite each other.
			key := fmt.Sprintf("%d-%s-%s", productID, time.Now().Format("20060102150405"), file.Filename)

			result, uploadErr := uploader.Upload(ctx.Request.Context(), &s3.PutObjectInput{
				Bucket:      aws.String(cfg.S3Bucket),
				Key:         aws.String(key),
				Body:        f,
				ACL:         "public-read",
				ContentType: aws.String(file.Header.Get("Content-Type")),
			})
			f.Close()

			if uploadErr != nil {
				log.Printf("Error uploading file %s: %v", file.Filename, uploadErr)
				failedUploads = append(failedUploads, file.Filename)
				continue
			}
			uploadedUrls = append(uploadedUrls, result.Location)
		}

		images, err := services.AddProductImages(db, productID, uploadedUrls)
		if err != nil {
			sendError(ctx, err)
			return
		}

		data := gin.H{"images": images}
		if len(failedUploads) > 0 {
			data["failed"] = failedUploads
		}
		sendSuccess(ctx, http.StatusOK, "Files processed", data)
	}
}
