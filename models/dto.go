package models

import "github.com/shopspring/decimal"

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required,min=3"`
	Phone    string `json:"phone" binding:"omitempty"`
	Role     string `json:"role" binding:"omitempty,oneof=consumer farmer influencer"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SetRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=consumer farmer influencer"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Quantity    int             `json:"quantity" binding:"required,min=0"`
	Unit        string          `json:"unit" binding:"required"`
	Category    string          `json:"category" binding:"required"`
	Image       string          `json:"image"`
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// Quantity carries no lower bound on purpose: decrement buttons send 0 or
// negative values and the cart clamps them to 1 instead of rejecting.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

type CheckoutRequest struct {
	DeliveryAddress string `json:"delivery_address" binding:"required"`
	Notes           string `json:"notes"`
}

type CreateFeedPostRequest struct {
	Content   string  `json:"content" binding:"required"`
	Image     string  `json:"image"`
	ProductID *string `json:"product_id"`
}

type CreateEventRequest struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description" binding:"required"`
	Date        string           `json:"date" binding:"required"`
	Time        string           `json:"time" binding:"required"`
	Location    string           `json:"location" binding:"required"`
	Image       string           `json:"image"`
	IsFree      bool             `json:"is_free"`
	Price       *decimal.Decimal `json:"price"`
}

type CreateCropRequestRequest struct {
	CropName       string `json:"crop_name" binding:"required"`
	Description    string `json:"description" binding:"required"`
	QuantityNeeded int    `json:"quantity_needed" binding:"required,min=1"`
	Unit           string `json:"unit" binding:"required"`
	Location       string `json:"location" binding:"required"`
}
