package services

import (
	"math"

	"farmsoc-api/models"
	"farmsoc-api/repositories"
)

type ProductService struct {
	productRepo *repositories.ProductRepository
}

func NewProductService() *ProductService {
	return &ProductService{
		productRepo: repositories.NewProductRepository(),
	}
}

func (s *ProductService) GetAllProducts(page, limit int) (*models.PaginationResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	products, total, err := s.productRepo.GetAll(page, limit)
	if err != nil {
		return nil, err
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))

	return &models.PaginationResponse{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    products,
		Meta: models.MetaData{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}, nil
}

func (s *ProductService) CreateProduct(farmerID, farmerName string, req models.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		Name:        req.Name,
		Price:       req.Price,
		Image:       req.Image,
		FarmerID:    farmerID,
		FarmerName:  farmerName,
		Description: req.Description,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Category:    req.Category,
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}
