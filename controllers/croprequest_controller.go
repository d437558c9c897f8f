package controllers

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"farmsoc-api/config"
	"farmsoc-api/models"
)

type CropRequestController struct{}

// @Summary Get crop requests
// @Description Get crop requests ordered by popularity
// @Tags Crop Requests
// @Produce json
// @Success 200 {object} models.Response
// @Router /crop-requests [get]
func (ctrl *CropRequestController) GetCropRequests(c *gin.Context) {
	rows, err := config.DB.Query(context.Background(),
		`SELECT id, crop_name, description, quantity_needed, unit, location,
		        consumer_count, popularity, is_fulfilled, farmer_fulfilling, COALESCE(created_by, ''), created_at
		 FROM crop_requests ORDER BY popularity DESC`)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve crop requests"})
		return
	}
	defer rows.Close()

	requests := []models.CropRequest{}
	for rows.Next() {
		var r models.CropRequest
		err := rows.Scan(&r.ID, &r.CropName, &r.Description, &r.QuantityNeeded, &r.Unit,
			&r.Location, &r.ConsumerCount, &r.Popularity, &r.IsFulfilled,
			&r.FarmerFulfilling, &r.CreatedBy, &r.CreatedAt)
		if err != nil {
			log.Println("Crop request scan error:", err)
			continue
		}
		requests = append(requests, r)
	}

	c.JSON(200, gin.H{"success": true, "message": "Crop requests retrieved successfully", "data": requests})
}

// @Summary Create crop request
// @Description Ask farmers for a crop that is not currently listed
// @Tags Crop Requests
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateCropRequestRequest true "Crop request data"
// @Success 201 {object} models.Response
// @Router /crop-requests [post]
func (ctrl *CropRequestController) CreateCropRequest(c *gin.Context) {
	var req models.CreateCropRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	request := models.CropRequest{
		ID:             uuid.NewString(),
		CropName:       req.CropName,
		Description:    req.Description,
		QuantityNeeded: req.QuantityNeeded,
		Unit:           req.Unit,
		Location:       req.Location,
		ConsumerCount:  1,
		Popularity:     1,
		CreatedBy:      c.GetString("user_id"),
		CreatedAt:      time.Now(),
	}

	_, err := config.DB.Exec(context.Background(),
		`INSERT INTO crop_requests (id, crop_name, description, quantity_needed, unit, location,
		                            consumer_count, popularity, is_fulfilled, farmer_fulfilling, created_by, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, false, NULL, $9, $10)`,
		request.ID, request.CropName, request.Description, request.QuantityNeeded, request.Unit,
		request.Location, request.ConsumerCount, request.Popularity, request.CreatedBy, request.CreatedAt)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create crop request"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Crop request created successfully", "data": request})
}

// @Summary Fulfill crop request
// @Description Mark an open crop request as fulfilled by the signed-in farmer
// @Tags Crop Requests
// @Security BearerAuth
// @Produce json
// @Param id path string true "Crop request ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /crop-requests/{id}/fulfill [post]
func (ctrl *CropRequestController) FulfillCropRequest(c *gin.Context) {
	farmerID := c.GetString("user_id")

	var farmerName string
	err := config.DB.QueryRow(context.Background(),
		`SELECT COALESCE(p.full_name, u.email)
		 FROM users u LEFT JOIN user_profiles p ON p.user_id = u.id
		 WHERE u.id = $1`, farmerID).Scan(&farmerName)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to resolve farmer"})
		return
	}

	tag, err := config.DB.Exec(context.Background(),
		`UPDATE crop_requests SET is_fulfilled = true, farmer_fulfilling = $1
		 WHERE id = $2 AND is_fulfilled = false`,
		farmerName, c.Param("id"))
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to fulfill crop request"})
		return
	}
	if tag.RowsAffected() == 0 {
		c.JSON(404, gin.H{"success": false, "message": "Crop request not found or already fulfilled"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Crop request fulfilled"})
}
