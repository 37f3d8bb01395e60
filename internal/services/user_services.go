package services

import (
	"context"
	"strings"
	"time"

	"FredStoreAPI/internal/model"
	"FredStoreAPI/internal/repository"

	"github.com/go-playground/validator/v10"
)

type UserService struct {
	Repo             *repository.UserRepository
	OrderRepo        *repository.OrderRepository
	SubscriptionRepo *repository.SubscriptionRepository
	Now              func() time.Time

	validate *validator.Validate
}

func NewUserService(r *repository.UserRepository, or *repository.OrderRepository,
	sr *repository.SubscriptionRepository) *UserService {
	return &UserService{Repo: r, OrderRepo: or, SubscriptionRepo: sr, Now: time.Now, validate: validator.New()}
}

// UserPatch carries the fields of a partial user update; nil means unchanged.
type UserPatch struct {
	Email   *string
	Name    *string
	Country *string
}

func (s *UserService) checkUser(u *model.User) error {
	v := &ValidationError{}
	u.Email = strings.TrimSpace(u.Email)
	u.Name = strings.TrimSpace(u.Name)
	u.Country = strings.TrimSpace(u.Country)
	if u.Email == "" {
		v.add("email", "is required")
	} else if s.validate.Var(u.Email, "email") != nil {
		v.add("email", "must be a valid email address")
	}
	if u.Name == "" {
		v.add("name", "is required")
	}
	if u.Country == "" {
		v.add("country", "is required")
	}
	return v.err()
}

func (s *UserService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.Repo.List(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	return s.Repo.GetByID(ctx, id)
}

// CreateUser registers a plain, non-admin user. A taken email yields
// repository.ErrDuplicate.
func (s *UserService) CreateUser(ctx context.Context, u *model.User) error {
	if err := s.checkUser(u); err != nil {
		return err
	}
	u.CreatedAt = s.Now().UTC().Truncate(time.Microsecond)
	u.IsAdmin = false
	u.AdminRole = model.RoleUser
	u.LastLogin = nil
	return s.Repo.Create(ctx, u)
}

func (s *UserService) UpdateUser(ctx context.Context, id int64, patch UserPatch) (*model.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Country != nil {
		u.Country = *patch.Country
	}
	if err := s.checkUser(u); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id int64) error {
	return s.Repo.Delete(ctx, id)
}

func (s *UserService) requireUser(ctx context.Context, id int64) error {
	ok, err := s.Repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return repository.ErrNotFound
	}
	return nil
}

func (s *UserService) ListUserOrders(ctx context.Context, id int64) ([]model.Order, error) {
	if err := s.requireUser(ctx, id); err != nil {
		return nil, err
	}
	return s.OrderRepo.ListByUser(ctx, id)
}

func (s *UserService) ListUserSubscriptions(ctx context.Context, id int64) ([]model.Subscription, error) {
	if err := s.requireUser(ctx, id); err != nil {
		return nil, err
	}
	return s.SubscriptionRepo.ListByUser(ctx, id)
}
