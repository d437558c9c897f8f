package controllers

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"farmsoc-api/config"
	"farmsoc-api/models"
	"farmsoc-api/utils"
)

type FeedController struct {
	cloudinary *models.CloudinaryService
}

func NewFeedController() *FeedController {
	cld, err := models.NewCloudinaryService()
	if err != nil {
		log.Println("Cloudinary disabled, feed images use local uploads:", err)
		cld = nil
	}
	return &FeedController{cloudinary: cld}
}

// @Summary Get feed
// @Description Get recent farmer posts with author info and attached products
// @Tags Feed
// @Produce json
// @Success 200 {object} models.Response
// @Router /feed [get]
func (ctrl *FeedController) GetFeed(c *gin.Context) {
	rows, err := config.DB.Query(context.Background(),
		`SELECT fp.id, fp.content, fp.image, fp.likes, fp.comments, fp.shares, fp.created_at,
		        f.id, f.name, f.avatar, f.location,
		        p.id, p.name, p.price, p.image, p.farmer_id, p.farmer_name, p.description, p.quantity, p.unit, p.category
		 FROM feed_posts fp
		 JOIN farmers f ON f.id = fp.farmer_id
		 LEFT JOIN products p ON p.id = fp.product_id
		 ORDER BY fp.created_at DESC
		 LIMIT 50`)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve feed"})
		return
	}
	defer rows.Close()

	entries := []models.FeedEntry{}
	for rows.Next() {
		var e models.FeedEntry
		var productID, productName, productImage, productFarmerID, productFarmerName, productDescription, productUnit, productCategory *string
		var productPrice *string
		var productQuantity *int

		err := rows.Scan(
			&e.ID, &e.Content, &e.Image, &e.Likes, &e.Comments, &e.Shares, &e.Timestamp,
			&e.User.ID, &e.User.Name, &e.User.Avatar, &e.User.Location,
			&productID, &productName, &productPrice, &productImage, &productFarmerID,
			&productFarmerName, &productDescription, &productQuantity, &productUnit, &productCategory,
		)
		if err != nil {
			log.Println("Feed scan error:", err)
			continue
		}

		if productID != nil {
			product, err := buildFeedProduct(*productID, *productName, *productPrice, *productImage,
				*productFarmerID, *productFarmerName, *productDescription, *productQuantity, *productUnit, *productCategory)
			if err != nil {
				log.Println("Feed product parse error:", err)
			} else {
				e.Product = product
			}
		}

		entries = append(entries, e)
	}

	c.JSON(200, gin.H{"success": true, "message": "Feed retrieved successfully", "data": entries})
}

func buildFeedProduct(id, name, price, image, farmerID, farmerName, description string, quantity int, unit, category string) (*models.Product, error) {
	parsedPrice, err := decimal.NewFromString(price)
	if err != nil {
		return nil, err
	}
	return &models.Product{
		ID:          id,
		Name:        name,
		Price:       parsedPrice,
		Image:       image,
		FarmerID:    farmerID,
		FarmerName:  farmerName,
		Description: description,
		Quantity:    quantity,
		Unit:        unit,
		Category:    category,
	}, nil
}

// @Summary Create feed post
// @Description Publish a post, optionally attaching one of your products and an image (farmer only)
// @Tags Feed
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param content formData string true "Post content"
// @Param product_id formData string false "Attached product ID"
// @Param image formData file false "Post image"
// @Success 201 {object} models.Response
// @Router /feed [post]
func (ctrl *FeedController) CreatePost(c *gin.Context) {
	content := c.PostForm("content")
	if content == "" {
		c.JSON(400, gin.H{"success": false, "message": "Content is required"})
		return
	}

	farmerID := c.GetString("user_id")

	var productID *string
	if pid := c.PostForm("product_id"); pid != "" {
		var owner string
		err := config.DB.QueryRow(context.Background(),
			`SELECT farmer_id FROM products WHERE id = $1`, pid).Scan(&owner)
		if err != nil || owner != farmerID {
			c.JSON(400, gin.H{"success": false, "message": "Product not found or not yours"})
			return
		}
		productID = &pid
	}

	imageURL := ""
	if fileHeader, err := c.FormFile("image"); err == nil {
		if ctrl.cloudinary != nil {
			if err := ctrl.cloudinary.ValidateImageFile(fileHeader); err != nil {
				c.JSON(400, gin.H{"success": false, "message": err.Error()})
				return
			}
			file, err := fileHeader.Open()
			if err != nil {
				c.JSON(500, gin.H{"success": false, "message": "Failed to read image"})
				return
			}
			defer file.Close()

			url, _, err := ctrl.cloudinary.UploadImage(c.Request.Context(), file, fileHeader.Filename, "feed")
			if err != nil {
				c.JSON(500, gin.H{"success": false, "message": "Failed to upload image"})
				return
			}
			imageURL = url
		} else {
			path, err := utils.UploadFile(c, fileHeader, "feed")
			if err != nil {
				c.JSON(400, gin.H{"success": false, "message": err.Error()})
				return
			}
			imageURL = path
		}
	}

	post := models.FeedPost{
		ID:        uuid.NewString(),
		FarmerID:  farmerID,
		Content:   content,
		Image:     imageURL,
		ProductID: productID,
		CreatedAt: time.Now(),
	}

	_, err := config.DB.Exec(context.Background(),
		`INSERT INTO feed_posts (id, farmer_id, content, image, product_id, likes, comments, shares, created_at)
		 VALUES ($1, $2, $3, $4, $5, 0, 0, 0, $6)`,
		post.ID, post.FarmerID, post.Content, post.Image, post.ProductID, post.CreatedAt)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create post"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Post created successfully", "data": post})
}
