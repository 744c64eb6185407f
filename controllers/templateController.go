package controllers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/webirent/webirent-api/errs"
	"github.com/webirent/webirent-api/models"
	"github.com/webirent/webirent-api/store"
)

type TemplateController struct {
	Templates store.TemplateStore
	S3Bucket  string
}

func (tc *TemplateController) CreateTemplate(ctx *gin.Context) {
	var template models.Template
	if err := ctx.ShouldBindJSON(&template); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	if err := tc.Templates.Create(ctx.Request.Context(), &template); err != nil {
		if errors.Is(err, errs.ErrValidation) {
			sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
			return
		}
		log.Println("Template creation error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to add template")
		return
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message":  "Template added successfully",
		"template": template,
	})
}

func (tc *TemplateController) GetTemplates(ctx *gin.Context) {
	search := ctx.Query("search")
	category := ctx.Query("category")

	templates, err := tc.Templates.List(ctx.Request.Context(), search, category)
	if err != nil {
		log.Println("Template list error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to fetch templates")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"templates": templates})
}

func (tc *TemplateController) GetTemplate(ctx *gin.Context) {
	templateID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid template ID")
		return
	}

	template, err := tc.Templates.FindByID(ctx.Request.Context(), uint(templateID))
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgTemplateNotFound)
			return
		}
		log.Println("Template fetch error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to retrieve template")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"template": template})
}

// getAWSUploader returns a configured S3 uploader
func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

// UploadTemplateImage uploads a preview image to S3 and stores the
// resulting URL on the template.
func (tc *TemplateController) UploadTemplateImage(ctx *gin.Context) {
	if tc.S3Bucket == "" {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Image uploads are not configured")
		return
	}

	templateID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid template ID")
		return
	}

	if _, err := tc.Templates.FindByID(ctx.Request.Context(), uint(templateID)); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			sendErrorResponse(ctx, http.StatusNotFound, msgTemplateNotFound)
			return
		}
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to validate template")
		return
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "No file uploaded")
		return
	}

	f, err := file.Open()
	if err != nil {
		log.Printf("Error opening file %s: %v", file.Filename, err)
		sendErrorResponse(ctx, http.StatusBadRequest, "Unable to read uploaded file")
		return
	}
	defer f.Close()

	uploader, err := getAWSUploader()
	if err != nil {
		log.Println("AWS config error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	// Unique filename to prevent overwrites
	uniqueFilename := fmt.Sprintf("templates/%d-%s-%s", templateID, time.Now().Format("20060102150405"), file.Filename)

	result, err := uploader.Upload(ctx.Request.Context(), &s3.PutObjectInput{
		Bucket:      aws.String(tc.S3Bucket),
		Key:         aws.String(uniqueFilename),
		Body:        f,
		ACL:         "public-read",
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		log.Printf("Error uploading file %s: %v", file.Filename, err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	if err := tc.Templates.SetImageURL(ctx.Request.Context(), uint(templateID), result.Location); err != nil {
		log.Printf("Image uploaded but URL not saved for template %d: %v", templateID, err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Image uploaded but could not be saved")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Image uploaded successfully",
		"url":     result.Location,
	})
}
