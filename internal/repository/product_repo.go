package repository

import (
	"context"

	"FredStoreAPI/internal/model"
)

const productColumns = `p.id, p.name, p.description, p.category, p.price, p.subscription,
	p.license_type, p.version, p.platform, p.stock, p.release_date, p.is_promoted`

// productDest lists scan targets in productColumns order; joins that embed a
// product append it to their own targets.
func productDest(p *model.Product) []any {
	return []any{&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.Subscription,
		&p.LicenseType, &p.Version, &p.Platform, &p.Stock, &p.ReleaseDate.Time, &p.IsPromoted}
}

func scanProduct(row scanner, p *model.Product) error {
	return row.Scan(productDest(p)...)
}

type ProductRepository struct {
	DB DBTX
}

func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) List(ctx context.Context) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p ORDER BY p.id`
	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	var p model.Product
	query := `SELECT ` + productColumns + ` FROM products p WHERE p.id=$1`
	if err := scanProduct(r.DB.QueryRow(ctx, query, id), &p); err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

// Create inserts p and sets p.ID.
func (r *ProductRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
		INSERT INTO products (name, description, category, price, subscription, license_type,
			version, platform, stock, release_date, is_promoted)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	err := r.DB.QueryRow(ctx, query, p.Name, p.Description, p.Category, p.Price, p.Subscription,
		p.LicenseType, p.Version, p.Platform, p.Stock, p.ReleaseDate.Time, p.IsPromoted).Scan(&p.ID)
	if err != nil {
		return writeErr(err)
	}
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
		UPDATE products SET name=$1, description=$2, category=$3, price=$4, subscription=$5,
			license_type=$6, version=$7, platform=$8, stock=$9, release_date=$10, is_promoted=$11
		WHERE id=$12
	`
	tag, err := r.DB.Exec(ctx, query, p.Name, p.Description, p.Category, p.Price, p.Subscription,
		p.LicenseType, p.Version, p.Platform, p.Stock, p.ReleaseDate.Time, p.IsPromoted, p.ID)
	if err != nil {
		return writeErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete refuses with ErrHasDependents while order items or subscriptions
// still reference the product.
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return deleteErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
