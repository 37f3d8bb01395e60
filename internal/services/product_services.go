package services

import (
	"context"
	"strings"
	"time"

	"FredStoreAPI/internal/model"
	"FredStoreAPI/internal/repository"
)

type ProductService struct {
	Repo *repository.ProductRepository
	Now  func() time.Time
}

func NewProductService(r *repository.ProductRepository) *ProductService {
	return &ProductService{Repo: r, Now: time.Now}
}

func validateProduct(p *model.Product) error {
	v := &ValidationError{}
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		v.add("name", "is required")
	}
	if p.Price < 0 {
		v.add("price", "must be >= 0")
	}
	if p.Stock < 0 {
		v.add("stock", "must be >= 0")
	}
	return v.err()
}

func (s *ProductService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.Repo.List(ctx)
}

func (s *ProductService) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	return s.Repo.GetByID(ctx, id)
}

// CreateProduct stores p and sets its id. A missing release date becomes
// today's date.
func (s *ProductService) CreateProduct(ctx context.Context, p *model.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}
	if p.ReleaseDate.IsZero() {
		p.ReleaseDate = model.DateOf(s.Now())
	}
	return s.Repo.Create(ctx, p)
}

// UpdateProduct replaces every writable field of the product with id p.ID.
// A zero release date keeps the stored one.
func (s *ProductService) UpdateProduct(ctx context.Context, p *model.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}
	if p.ReleaseDate.IsZero() {
		cur, err := s.Repo.GetByID(ctx, p.ID)
		if err != nil {
			return err
		}
		p.ReleaseDate = cur.ReleaseDate
	}
	return s.Repo.Update(ctx, p)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	return s.Repo.Delete(ctx, id)
}
