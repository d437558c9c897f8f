package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"farmsoc-api/config"
	"farmsoc-api/models"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

const productColumns = `id, name, price, image, farmer_id, farmer_name, description, quantity, unit, category, created_at, updated_at`

func scanProduct(row interface{ Scan(dest ...any) error }, p *models.Product) error {
	return row.Scan(
		&p.ID,
		&p.Name,
		&p.Price,
		&p.Image,
		&p.FarmerID,
		&p.FarmerName,
		&p.Description,
		&p.Quantity,
		&p.Unit,
		&p.Category,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}

func (r *ProductRepository) GetAll(page, limit int) ([]models.Product, int, error) {
	offset := (page - 1) * limit

	var total int
	if err := config.DB.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + productColumns + `
	          FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := config.DB.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, rows.Err()
}

func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	var p models.Product
	if err := scanProduct(config.DB.QueryRow(ctx, query, id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) ListByFarmer(farmerID string) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE farmer_id = $1 ORDER BY created_at DESC`

	rows, err := config.DB.Query(context.Background(), query, farmerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// Search matches the query against name, description, category and farmer
// name, case-insensitively.
func (r *ProductRepository) Search(q string) ([]models.Product, error) {
	query := `SELECT ` + productColumns + `
	          FROM products
	          WHERE name ILIKE $1 OR description ILIKE $1 OR category ILIKE $1 OR farmer_name ILIKE $1
	          ORDER BY name`

	rows, err := config.DB.Query(context.Background(), query, "%"+q+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) Create(product *models.Product) error {
	query := `
		INSERT INTO products (id, name, price, image, farmer_id, farmer_name, description, quantity, unit, category, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at
	`
	product.ID = uuid.NewString()
	now := time.Now()
	return config.DB.QueryRow(context.Background(), query,
		product.ID,
		product.Name,
		product.Price,
		product.Image,
		product.FarmerID,
		product.FarmerName,
		product.Description,
		product.Quantity,
		product.Unit,
		product.Category,
		now,
		now,
	).Scan(&product.CreatedAt, &product.UpdatedAt)
}
