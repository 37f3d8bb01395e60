package repository

import (
	"context"

	"FredStoreAPI/internal/model"
)

const orderColumns = `o.id, o.user_id, o.created_at, o.status, o.total_amount`

func scanOrder(row scanner, o *model.Order) error {
	var status string
	if err := row.Scan(&o.ID, &o.UserID, &o.CreatedAt, &status, &o.TotalAmount); err != nil {
		return err
	}
	o.Status = model.OrderStatus(status)
	o.Items = []model.OrderItem{}
	return nil
}

type OrderRepository struct {
	DB DBTX
}

func NewOrderRepository(db DBTX) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) list(ctx context.Context, query string, args ...any) ([]model.Order, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Order{}
	for rows.Next() {
		var o model.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.attachItems(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *OrderRepository) List(ctx context.Context) ([]model.Order, error) {
	return r.list(ctx, `SELECT `+orderColumns+` FROM orders o ORDER BY o.id`)
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return r.list(ctx, `SELECT `+orderColumns+` FROM orders o WHERE o.user_id=$1 ORDER BY o.id`, userID)
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	var o model.Order
	if err := scanOrder(r.DB.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders o WHERE o.id=$1`, id), &o); err != nil {
		return nil, notFound(err)
	}
	orders := []model.Order{o}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// attachItems loads the items of every order in one query, each item with its
// product embedded.
func (r *OrderRepository) attachItems(ctx context.Context, orders []model.Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]int64, 0, len(orders))
	index := make(map[int64]int, len(orders))
	for i, o := range orders {
		ids = append(ids, o.ID)
		index[o.ID] = i
	}

	query := `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price_at_purchase, ` + productColumns + `
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.id
	`
	rows, err := r.DB.Query(ctx, query, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var it model.OrderItem
		var p model.Product
		dest := append([]any{&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.PriceAtPurchase}, productDest(&p)...)
		if err := rows.Scan(dest...); err != nil {
			return err
		}
		it.Product = &p
		if i, ok := index[it.OrderID]; ok {
			orders[i].Items = append(orders[i].Items, it)
		}
	}
	return rows.Err()
}

// Create inserts the order header and all of its items, setting the ids on o
// and o.Items. It does not open a transaction; callers run it on a pgx.Tx so
// that a failing item leaves nothing behind.
func (r *OrderRepository) Create(ctx context.Context, o *model.Order) error {
	query := `
		INSERT INTO orders (user_id, created_at, status, total_amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	if err := r.DB.QueryRow(ctx, query, o.UserID, o.CreatedAt, string(o.Status), o.TotalAmount).Scan(&o.ID); err != nil {
		return writeErr(err)
	}

	itemQuery := `
		INSERT INTO order_items (order_id, product_id, quantity, price_at_purchase)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	for i := range o.Items {
		it := &o.Items[i]
		it.OrderID = o.ID
		if err := r.DB.QueryRow(ctx, itemQuery, o.ID, it.ProductID, it.Quantity, it.PriceAtPurchase).Scan(&it.ID); err != nil {
			return writeErr(err)
		}
	}
	return nil
}

// UpdateHeader writes status and total_amount. Items are immutable once placed.
func (r *OrderRepository) UpdateHeader(ctx context.Context, o *model.Order) error {
	tag, err := r.DB.Exec(ctx, `UPDATE orders SET status=$1, total_amount=$2 WHERE id=$3`,
		string(o.Status), o.TotalAmount, o.ID)
	if err != nil {
		return writeErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the order; its items go with it (ON DELETE CASCADE).
func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	if err != nil {
		return deleteErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
