package repository

import (
	"context"
	"fmt"

	"catalog/sitegen/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository interface {
	EnsureSchema(ctx context.Context) error
	SaveProduct(ctx context.Context, product *domain.Product) error
}

type productRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) ProductRepository {
	return &productRepository{
		db: db,
	}
}

func (r *productRepository) EnsureSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS products (
		id       TEXT PRIMARY KEY,
		category TEXT NOT NULL,
		data     JSONB NOT NULL
	)`
	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure products table: %w", err)
	}

	return nil
}

func (r *productRepository) SaveProduct(ctx context.Context, product *domain.Product) error {
	query := `
	INSERT INTO products (id, category, data) 
	VALUES ($1, $2, $3) 
	ON CONFLICT (id) 
	DO UPDATE SET category = $2, data = $3`
	_, err := r.db.Exec(ctx, query, product.ID, product.Category, product)
	if err != nil {
		return fmt.Errorf("failed to save product %s: %w", product.ID, err)
	}

	return nil
}
