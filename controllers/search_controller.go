package controllers

import (
	"context"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"farmsoc-api/config"
	"farmsoc-api/models"
	"farmsoc-api/repositories"
)

type SearchController struct {
	productRepo *repositories.ProductRepository
}

func NewSearchController() *SearchController {
	return &SearchController{productRepo: repositories.NewProductRepository()}
}

// @Summary Search
// @Description Search products or farmers by keyword. Products match name, description, category and farmer name; farmers match name, location and bio
// @Tags Search
// @Produce json
// @Param q query string false "Search query"
// @Param category query string false "products, farmers or fundraisers" default(products)
// @Success 200 {object} models.Response
// @Router /search [get]
func (ctrl *SearchController) Search(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	category := c.DefaultQuery("category", "products")

	switch category {
	case "products":
		products, err := ctrl.productRepo.Search(q)
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Search failed"})
			return
		}
		c.JSON(200, gin.H{
			"success": true,
			"message": "Search results retrieved",
			"data":    gin.H{"category": category, "results": products},
		})

	case "farmers":
		farmers, err := searchFarmers(q)
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Search failed"})
			return
		}
		c.JSON(200, gin.H{
			"success": true,
			"message": "Search results retrieved",
			"data":    gin.H{"category": category, "results": farmers},
		})

	case "fundraisers":
		// Not launched yet; the client renders a coming-soon state.
		c.JSON(200, gin.H{
			"success": true,
			"message": "Fundraisers coming soon",
			"data":    gin.H{"category": category, "results": []any{}},
		})

	default:
		c.JSON(400, gin.H{"success": false, "message": "Unknown search category"})
	}
}

func searchFarmers(q string) ([]models.Farmer, error) {
	rows, err := config.DB.Query(context.Background(),
		`SELECT id, name, avatar, location, bio, rating, followers, products, created_at
		 FROM farmers
		 WHERE name ILIKE $1 OR location ILIKE $1 OR bio ILIKE $1
		 ORDER BY rating DESC`, "%"+q+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	farmers := []models.Farmer{}
	for rows.Next() {
		var f models.Farmer
		if err := rows.Scan(&f.ID, &f.Name, &f.Avatar, &f.Location, &f.Bio,
			&f.Rating, &f.Followers, &f.Products, &f.CreatedAt); err != nil {
			log.Println("Farmer scan error:", err)
			continue
		}
		farmers = append(farmers, f)
	}
	return farmers, rows.Err()
}
