package controllers

import (
	"context"

	"github.com/gin-gonic/gin"

	"farmsoc-api/config"
	"farmsoc-api/models"
)

type FarmerController struct{}

// @Summary Get all farmers
// @Description Get the list of farmer profiles
// @Tags Farmers
// @Produce json
// @Success 200 {object} models.Response
// @Router /farmers [get]
func (ctrl *FarmerController) GetAllFarmers(c *gin.Context) {
	rows, err := config.DB.Query(context.Background(),
		`SELECT id, name, avatar, location, bio, rating, followers, products, created_at
		 FROM farmers ORDER BY rating DESC`)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve farmers"})
		return
	}
	defer rows.Close()

	farmers := []models.Farmer{}
	for rows.Next() {
		var f models.Farmer
		if err := rows.Scan(&f.ID, &f.Name, &f.Avatar, &f.Location, &f.Bio,
			&f.Rating, &f.Followers, &f.Products, &f.CreatedAt); err != nil {
			continue
		}
		farmers = append(farmers, f)
	}

	c.JSON(200, gin.H{"success": true, "message": "Farmers retrieved successfully", "data": farmers})
}

// @Summary Get farmer by ID
// @Tags Farmers
// @Produce json
// @Param id path string true "Farmer ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /farmers/{id} [get]
func (ctrl *FarmerController) GetFarmerByID(c *gin.Context) {
	var f models.Farmer
	err := config.DB.QueryRow(context.Background(),
		`SELECT id, name, avatar, location, bio, rating, followers, products, created_at
		 FROM farmers WHERE id = $1`, c.Param("id")).Scan(
		&f.ID, &f.Name, &f.Avatar, &f.Location, &f.Bio,
		&f.Rating, &f.Followers, &f.Products, &f.CreatedAt)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Farmer not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Farmer retrieved successfully", "data": f})
}

// @Summary Follow farmer
// @Description Follow a farmer to see their posts in the feed
// @Tags Farmers
// @Security BearerAuth
// @Produce json
// @Param id path string true "Farmer ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /farmers/{id}/follow [post]
func (ctrl *FarmerController) FollowFarmer(c *gin.Context) {
	tag, err := config.DB.Exec(context.Background(),
		`UPDATE farmers SET followers = followers + 1 WHERE id = $1`, c.Param("id"))
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to follow farmer"})
		return
	}
	if tag.RowsAffected() == 0 {
		c.JSON(404, gin.H{"success": false, "message": "Farmer not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Farmer followed"})
}
