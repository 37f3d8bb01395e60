package services

import (
	"context"

	"FredStoreAPI/internal/model"
	"FredStoreAPI/internal/repository"
)

type SubscriptionService struct {
	Repo *repository.SubscriptionRepository
}

func NewSubscriptionService(r *repository.SubscriptionRepository) *SubscriptionService {
	return &SubscriptionService{Repo: r}
}

// SubscriptionPatch holds the only mutable subscription fields.
type SubscriptionPatch struct {
	EndDate   *model.Date
	AutoRenew *bool
}

func (s *SubscriptionService) ListSubscriptions(ctx context.Context) ([]model.Subscription, error) {
	return s.Repo.List(ctx)
}

func (s *SubscriptionService) GetSubscription(ctx context.Context, id int64) (*model.Subscription, error) {
	return s.Repo.GetByID(ctx, id)
}

// CreateSubscription stores sub and returns it re-read with its product
// embedded. Unknown user or product ids yield repository.ErrInvalidReference.
func (s *SubscriptionService) CreateSubscription(ctx context.Context, sub *model.Subscription) (*model.Subscription, error) {
	v := &ValidationError{}
	if sub.UserID <= 0 {
		v.add("user_id", "is required")
	}
	if sub.ProductID <= 0 {
		v.add("product_id", "is required")
	}
	if sub.StartDate.IsZero() {
		v.add("start_date", "is required")
	}
	if sub.EndDate.IsZero() {
		v.add("end_date", "is required")
	}
	if !sub.StartDate.IsZero() && !sub.EndDate.IsZero() && sub.EndDate.Before(sub.StartDate) {
		v.add("end_date", "must not be before start_date")
	}
	if err := v.err(); err != nil {
		return nil, err
	}

	if err := s.Repo.Create(ctx, sub); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(ctx, sub.ID)
}

// UpdateSubscription changes end_date and/or auto_renew. The owner, the
// product and start_date are never touched.
func (s *SubscriptionService) UpdateSubscription(ctx context.Context, id int64, patch SubscriptionPatch) (*model.Subscription, error) {
	sub, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.EndDate != nil {
		if patch.EndDate.IsZero() {
			return nil, invalid("end_date", "must not be null")
		}
		sub.EndDate = *patch.EndDate
	}
	if patch.AutoRenew != nil {
		sub.AutoRenew = *patch.AutoRenew
	}
	if sub.EndDate.Before(sub.StartDate) {
		return nil, invalid("end_date", "must not be before start_date")
	}
	if err := s.Repo.Update(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *SubscriptionService) DeleteSubscription(ctx context.Context, id int64) error {
	return s.Repo.Delete(ctx, id)
}
