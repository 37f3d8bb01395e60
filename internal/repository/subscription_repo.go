package repository

import (
	"context"

	"FredStoreAPI/internal/model"
)

const subscriptionSelect = `
	SELECT s.id, s.user_id, s.product_id, s.start_date, s.end_date, s.auto_renew, ` + productColumns + `
	FROM subscriptions s
	JOIN products p ON p.id = s.product_id
`

func scanSubscription(row scanner, s *model.Subscription) error {
	var p model.Product
	dest := append([]any{&s.ID, &s.UserID, &s.ProductID, &s.StartDate.Time, &s.EndDate.Time, &s.AutoRenew},
		productDest(&p)...)
	if err := row.Scan(dest...); err != nil {
		return err
	}
	s.Product = &p
	return nil
}

type SubscriptionRepository struct {
	DB DBTX
}

func NewSubscriptionRepository(db DBTX) *SubscriptionRepository {
	return &SubscriptionRepository{DB: db}
}

func (r *SubscriptionRepository) list(ctx context.Context, query string, args ...any) ([]model.Subscription, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Subscription{}
	for rows.Next() {
		var s model.Subscription
		if err := scanSubscription(rows, &s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SubscriptionRepository) List(ctx context.Context) ([]model.Subscription, error) {
	return r.list(ctx, subscriptionSelect+` ORDER BY s.id`)
}

func (r *SubscriptionRepository) ListByUser(ctx context.Context, userID int64) ([]model.Subscription, error) {
	return r.list(ctx, subscriptionSelect+` WHERE s.user_id=$1 ORDER BY s.id`, userID)
}

func (r *SubscriptionRepository) GetByID(ctx context.Context, id int64) (*model.Subscription, error) {
	var s model.Subscription
	if err := scanSubscription(r.DB.QueryRow(ctx, subscriptionSelect+` WHERE s.id=$1`, id), &s); err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}

// Create inserts s and sets s.ID. Unknown user or product ids yield
// ErrInvalidReference.
func (r *SubscriptionRepository) Create(ctx context.Context, s *model.Subscription) error {
	query := `
		INSERT INTO subscriptions (user_id, product_id, start_date, end_date, auto_renew)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.DB.QueryRow(ctx, query, s.UserID, s.ProductID, s.StartDate.Time, s.EndDate.Time, s.AutoRenew).Scan(&s.ID)
	if err != nil {
		return writeErr(err)
	}
	return nil
}

// Update writes the mutable columns only: end_date and auto_renew.
func (r *SubscriptionRepository) Update(ctx context.Context, s *model.Subscription) error {
	tag, err := r.DB.Exec(ctx, `UPDATE subscriptions SET end_date=$1, auto_renew=$2 WHERE id=$3`,
		s.EndDate.Time, s.AutoRenew, s.ID)
	if err != nil {
		return writeErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SubscriptionRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM subscriptions WHERE id=$1`, id)
	if err != nil {
		return deleteErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
