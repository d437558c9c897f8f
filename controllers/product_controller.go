package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"farmsoc-api/config"
	"farmsoc-api/models"
	"farmsoc-api/repositories"
	"farmsoc-api/services"
)

type ProductController struct {
	products    *services.ProductService
	productRepo *repositories.ProductRepository
	userRepo    *repositories.UserRepository
}

func NewProductController() *ProductController {
	return &ProductController{
		products:    services.NewProductService(),
		productRepo: repositories.NewProductRepository(),
		userRepo:    repositories.NewUserRepository(),
	}
}

func getProductCacheKey(page, limit int) string {
	return fmt.Sprintf("products_list_p%d_l%d", page, limit)
}

func invalidateProductCache() {
	if config.RedisClient == nil {
		return
	}
	ctx := context.Background()
	iter := config.RedisClient.Scan(ctx, 0, "products_list_*", 0).Iterator()
	for iter.Next(ctx) {
		config.RedisClient.Del(ctx, iter.Val())
	}
}

// @Summary Get all categories
// @Description Get the list of product categories
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *ProductController) GetAllCategories(c *gin.Context) {
	c.JSON(200, gin.H{
		"success": true,
		"message": "Categories retrieved",
		"data":    models.ProductCategories,
	})
}

// @Summary Get all products
// @Description Get paginated list of products
// @Tags Products
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginationResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	ctx := context.Background()
	cacheKey := getProductCacheKey(page, limit)

	if config.RedisClient != nil {
		cached, err := config.RedisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var response models.PaginationResponse
			if json.Unmarshal([]byte(cached), &response) == nil {
				c.JSON(200, response)
				return
			}
		}
	}

	response, err := ctrl.products.GetAllProducts(page, limit)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve products"})
		return
	}

	if config.RedisClient != nil {
		if jsonData, err := json.Marshal(response); err == nil {
			config.RedisClient.Set(ctx, cacheKey, string(jsonData), 5*time.Minute)
		}
	}

	c.JSON(200, response)
}

// @Summary Get product by ID
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	product, err := ctrl.productRepo.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Product retrieved successfully", "data": product})
}

// @Summary Create product
// @Description Create a new product listing (farmer only)
// @Tags Products
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateProductRequest true "Product data"
// @Success 201 {object} models.Response
// @Router /products [post]
func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	farmerID := c.GetString("user_id")
	profile, err := ctrl.userRepo.GetUserWithProfile(farmerID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to resolve farmer"})
		return
	}

	product, err := ctrl.products.CreateProduct(farmerID, profile.FullName, req)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create product"})
		return
	}

	invalidateProductCache()

	c.JSON(201, gin.H{"success": true, "message": "Product created successfully", "data": product})
}
