package controllers

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"farmsoc-api/cart"
	"farmsoc-api/config"
	"farmsoc-api/models"
)

type CheckoutController struct {
	carts *cart.Manager
	email *models.EmailService
}

func NewCheckoutController(carts *cart.Manager) *CheckoutController {
	emailService, err := models.NewEmailService()
	if err != nil {
		log.Println("Email service disabled:", err)
		emailService = nil
	}
	return &CheckoutController{carts: carts, email: emailService}
}

// @Summary Checkout
// @Description Turn the current cart into an order. Stock is checked and decremented here, not at add-to-cart time. The cart is cleared on success
// @Tags Checkout
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Delivery details"
// @Success 201 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /checkout [post]
func (ctrl *CheckoutController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	userID := c.GetString("user_id")
	store := ctrl.carts.Acquire(c.Request.Context(), userID)

	items := store.Items()
	if len(items) == 0 {
		c.JSON(400, gin.H{"success": false, "message": "Cart is empty"})
		return
	}
	subtotal := store.Total()

	ctx := context.Background()
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to start transaction"})
		return
	}
	defer tx.Rollback(ctx)

	for _, line := range items {
		tag, err := tx.Exec(ctx,
			`UPDATE products SET quantity = quantity - $1, updated_at = $2
			 WHERE id = $3 AND quantity >= $1`,
			line.Quantity, time.Now(), line.Product.ID)
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to reserve stock"})
			return
		}
		if tag.RowsAffected() == 0 {
			c.JSON(400, gin.H{
				"success": false,
				"message": fmt.Sprintf("Insufficient stock for %s", line.Product.Name),
			})
			return
		}
	}

	orderID := uuid.NewString()
	now := time.Now()

	var notes *string
	if req.Notes != "" {
		notes = &req.Notes
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO orders (id, user_id, subtotal, status, delivery_address, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, 'pending', $4, $5, $6, $6)`,
		orderID, userID, subtotal, req.DeliveryAddress, notes, now)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create order"})
		return
	}

	for _, line := range items {
		_, err = tx.Exec(ctx,
			`INSERT INTO order_items (id, order_id, product_id, product_name, price, quantity, unit)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			uuid.NewString(), orderID, line.Product.ID, line.Product.Name,
			line.Product.Price, line.Quantity, line.Product.Unit)
		if err != nil {
			c.JSON(500, gin.H{"success": false, "message": "Failed to create order items"})
			return
		}
	}

	if err = tx.Commit(ctx); err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to commit transaction"})
		return
	}

	store.Clear()
	invalidateProductCache()

	if ctrl.email != nil {
		email := c.GetString("user_email")
		go func() {
			if err := ctrl.email.SendOrderConfirmationEmail(email, orderID, subtotal); err != nil {
				log.Println("Failed to send order confirmation:", err)
			}
		}()
	}

	c.JSON(201, gin.H{
		"success": true,
		"message": "Order placed successfully",
		"data": gin.H{
			"order_id": orderID,
			"subtotal": subtotal,
			"status":   "pending",
		},
	})
}
