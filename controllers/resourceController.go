package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/UpliftAfrika/initializers"
	"github.com/UpliftAfrika/models"
	"github.com/doug-martin/goqu/v9"
)

func GetResourceCategories(c *gin.Context) {
	var categories []models.ResourceCategory

	err := initializers.DB.From("resource_category").
		Order(goqu.I("name").Asc()).
		ScanStructs(&categories)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// GetResources lists resources, optionally filtered by category slug or
// resource type.
func GetResources(c *gin.Context) {
	var exprs []goqu.Expression

	if categorySlug := c.Query("category"); categorySlug != "" {
		var category models.ResourceCategory
		found, err := initializers.DB.From("resource_category").
			Where(goqu.C("slug").Eq(categorySlug)).
			ScanStruct(&category)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category"})
			return
		}
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		exprs = append(exprs, goqu.C("resource_category_id").Eq(category.Category_ID))
	}

	if resourceType := c.Query("type"); resourceType != "" {
		exprs = append(exprs, goqu.C("resource_type").Eq(resourceType))
	}

	if c.Query("featured") == "true" {
		exprs = append(exprs, goqu.C("is_featured").IsTrue())
	}

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := "%" + search + "%"
		exprs = append(exprs, goqu.Or(
			goqu.C("title").ILike(pattern),
			goqu.C("description").ILike(pattern),
		))
	}

	var resources []models.Resource
	err := initializers.DB.From("resource").
		Where(exprs...).
		Order(goqu.I("datetime_create").Desc()).
		ScanStructs(&resources)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch resources"})
		return
	}

	c.JSON(http.StatusOK, resources)
}

func GetResourceBySlug(c *gin.Context) {
	slug := c.Param("slug")

	var resource models.Resource
	found, err := initializers.DB.From("resource").
		Where(goqu.C("slug").Eq(slug)).
		ScanStruct(&resource)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch resource"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
		return
	}

	c.JSON(http.StatusOK, resource)
}

// DownloadResource bumps the download counter and returns the file location.
func DownloadResource(c *gin.Context) {
	slug := c.Param("slug")

	var resource models.Resource
	found, err := initializers.DB.From("resource").
		Where(goqu.C("slug").Eq(slug)).
		ScanStruct(&resource)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch resource"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
		return
	}

	url := resource.File_URL
	if url == "" {
		url = resource.External_URL
	}
	if url == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource has no file attached"})
		return
	}

	_, err = initializers.DB.Update("resource").
		Set(goqu.Record{"download_count": goqu.L("download_count + 1")}).
		Where(goqu.C("resource_id").Eq(resource.Resource_ID)).
		Executor().Exec()
	if err == nil {
		resource.Download_Count++
	}

	c.JSON(http.StatusOK, gin.H{"url": url, "resource": resource})
}

func CreateResourceCategory(c *gin.Context) {
	var req models.ResourceCategoryCreate

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Name)
	}

	category := models.ResourceCategory{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
	}

	insert := initializers.DB.Insert("resource_category").Rows(category).Executor()
	if _, err := insert.Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Category created successfully.",
		"category": category,
	})
}

func CreateResource(c *gin.Context) {
	var req models.ResourceCreate

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.File_URL == "" && req.External_URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A resource needs a file URL or an external URL"})
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Title)
	}

	resource := models.Resource{
		Title:         req.Title,
		Slug:          slug,
		Category_ID:   req.Category_ID,
		Resource_Type: req.Resource_Type,
		Description:   req.Description,
		File_URL:      req.File_URL,
		External_URL:  req.External_URL,
		Is_Featured:   req.Is_Featured,
	}

	insert := initializers.DB.Insert("resource").Rows(resource).Executor()
	if _, err := insert.Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Resource created successfully.",
		"resource": resource,
	})
}

func UpdateResource(c *gin.Context) {
	resourceID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resource ID"})
		return
	}

	var req models.ResourceCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record := goqu.Record{
		"title":                req.Title,
		"resource_category_id": req.Category_ID,
		"resource_type":        req.Resource_Type,
		"description":          req.Description,
		"file_url":             req.File_URL,
		"external_url":         req.External_URL,
		"is_featured":          req.Is_Featured,
		"datetime_update":      time.Now(),
	}
	if req.Slug != "" {
		record["slug"] = req.Slug
	}

	result, err := initializers.DB.Update("resource").
		Set(record).
		Where(goqu.C("resource_id").Eq(resourceID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Resource updated successfully."})
}

func DeleteResource(c *gin.Context) {
	resourceID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid resource ID"})
		return
	}

	result, err := initializers.DB.Delete("resource").
		Where(goqu.C("resource_id").Eq(resourceID)).
		Executor().Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Resource deleted successfully."})
}
