package controllers

import (
	"context"

	"github.com/gin-gonic/gin"

	"farmsoc-api/cart"
	"farmsoc-api/models"
)

// ProductFinder supplies catalog records for snapshotting into cart lines.
type ProductFinder interface {
	FindByID(ctx context.Context, id string) (*models.Product, error)
}

type CartController struct {
	carts    *cart.Manager
	products ProductFinder
}

func NewCartController(carts *cart.Manager, products ProductFinder) *CartController {
	return &CartController{carts: carts, products: products}
}

func (ctrl *CartController) cartPayload(s *cart.Store) gin.H {
	return gin.H{
		"items": s.Items(),
		"total": s.Total(),
	}
}

// @Summary Get cart
// @Description Get the current user's cart lines and total
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	userID := c.GetString("user_id")
	store := ctrl.carts.Acquire(c.Request.Context(), userID)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Cart retrieved successfully",
		"data":    ctrl.cartPayload(store),
	})
}

// @Summary Add item to cart
// @Description Add a product to the cart; adding the same product again merges quantities into one line
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Item to add"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	product, err := ctrl.products.FindByID(c.Request.Context(), req.ProductID)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	userID := c.GetString("user_id")
	store := ctrl.carts.Acquire(c.Request.Context(), userID)
	store.Add(*product, req.Quantity)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Item added to cart",
		"data":    ctrl.cartPayload(store),
	})
}

// @Summary Update cart item quantity
// @Description Set the quantity of a cart line. Values below 1 are clamped to 1; unknown products are a no-op
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param request body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.Response
// @Router /cart/items/{productId} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	userID := c.GetString("user_id")
	store := ctrl.carts.Acquire(c.Request.Context(), userID)
	store.SetQuantity(c.Param("productId"), req.Quantity)

	c.JSON(200, gin.H{
		"success": true,
		"message": "Cart updated",
		"data":    ctrl.cartPayload(store),
	})
}

// @Summary Remove cart item
// @Description Remove a product's line from the cart. Removing an absent product is a no-op
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{productId} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	userID := c.GetString("user_id")
	store := ctrl.carts.Acquire(c.Request.Context(), userID)
	store.Remove(c.Param("productId"))

	c.JSON(200, gin.H{
		"success": true,
		"message": "Item removed from cart",
		"data":    ctrl.cartPayload(store),
	})
}

// @Summary Clear cart
// @Description Remove every line from the cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	userID := c.GetString("user_id")
	store := ctrl.carts.Acquire(c.Request.Context(), userID)
	store.Clear()

	c.JSON(200, gin.H{
		"success": true,
		"message": "Cart cleared",
		"data":    ctrl.cartPayload(store),
	})
}
