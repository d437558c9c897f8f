package controllers

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"farmsoc-api/config"
)

type DashboardController struct{}

// @Summary Farmer dashboard
// @Description Order, revenue and audience stats for the signed-in farmer
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /farmer/dashboard [get]
func (ctrl *DashboardController) GetDashboard(c *gin.Context) {
	ctx := context.Background()
	farmerID := c.GetString("user_id")

	var totalOrders, pendingOrders int
	err := config.DB.QueryRow(ctx,
		`SELECT COUNT(DISTINCT o.id),
		        COUNT(DISTINCT o.id) FILTER (WHERE o.status = 'pending')
		 FROM orders o
		 JOIN order_items oi ON oi.order_id = o.id
		 JOIN products p ON p.id = oi.product_id
		 WHERE p.farmer_id = $1`, farmerID).Scan(&totalOrders, &pendingOrders)
	if err != nil {
		log.Println("Dashboard order count error:", err)
	}

	monthStart := time.Now().AddDate(0, 0, 1-time.Now().Day()).Truncate(24 * time.Hour)

	var monthRevenue string
	err = config.DB.QueryRow(ctx,
		`SELECT COALESCE(SUM(oi.price * oi.quantity), 0)
		 FROM orders o
		 JOIN order_items oi ON oi.order_id = o.id
		 JOIN products p ON p.id = oi.product_id
		 WHERE p.farmer_id = $1 AND o.created_at >= $2`, farmerID, monthStart).Scan(&monthRevenue)
	if err != nil {
		log.Println("Dashboard revenue error:", err)
		monthRevenue = "0"
	}

	var followers, productCount int
	err = config.DB.QueryRow(ctx,
		`SELECT COALESCE(MAX(followers), 0),
		        (SELECT COUNT(*) FROM products WHERE farmer_id = $1)
		 FROM farmers WHERE id = $1`, farmerID).Scan(&followers, &productCount)
	if err != nil {
		log.Println("Dashboard audience error:", err)
	}

	popular := []gin.H{}
	rows, err := config.DB.Query(ctx,
		`SELECT p.id, p.name, p.unit, COALESCE(SUM(oi.quantity), 0) AS sold
		 FROM products p
		 LEFT JOIN order_items oi ON oi.product_id = p.id
		 WHERE p.farmer_id = $1
		 GROUP BY p.id, p.name, p.unit
		 ORDER BY sold DESC
		 LIMIT 5`, farmerID)
	if err == nil {
		defer rows.Close()
		for rows.Next() {
			var id, name, unit string
			var sold int
			if err := rows.Scan(&id, &name, &unit, &sold); err != nil {
				continue
			}
			popular = append(popular, gin.H{"id": id, "name": name, "unit": unit, "sold": sold})
		}
	}

	pendingDeliveries := []gin.H{}
	rows, err = config.DB.Query(ctx,
		`SELECT DISTINCT o.id, o.delivery_address, o.subtotal, o.created_at
		 FROM orders o
		 JOIN order_items oi ON oi.order_id = o.id
		 JOIN products p ON p.id = oi.product_id
		 WHERE p.farmer_id = $1 AND o.status = 'pending'
		 ORDER BY o.created_at DESC
		 LIMIT 10`, farmerID)
	if err == nil {
		defer rows.Close()
		for rows.Next() {
			var id, address, subtotal string
			var createdAt time.Time
			if err := rows.Scan(&id, &address, &subtotal, &createdAt); err != nil {
				continue
			}
			pendingDeliveries = append(pendingDeliveries, gin.H{
				"order_id":         id,
				"delivery_address": address,
				"subtotal":         subtotal,
				"created_at":       createdAt,
			})
		}
	}

	c.JSON(200, gin.H{
		"success": true,
		"message": "Dashboard retrieved successfully",
		"data": gin.H{
			"orders": gin.H{
				"total":   totalOrders,
				"pending": pendingOrders,
			},
			"revenue": gin.H{
				"current_month": monthRevenue,
			},
			"followers":          followers,
			"products":           productCount,
			"popular_products":   popular,
			"pending_deliveries": pendingDeliveries,
		},
	})
}
