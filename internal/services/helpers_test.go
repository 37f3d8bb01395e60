package services

import (
	"context"
	"testing"
	"time"

	"FredStoreAPI/internal/model"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	productCols = []string{"id", "name", "description", "category", "price", "subscription",
		"license_type", "version", "platform", "stock", "release_date", "is_promoted"}
	orderCols = []string{"id", "user_id", "created_at", "status", "total_amount"}
	itemCols  = append([]string{"id", "order_id", "product_id", "quantity", "price_at_purchase"}, productCols...)
	subCols   = append([]string{"id", "user_id", "product_id", "start_date", "end_date", "auto_renew"}, productCols...)
	userCols  = []string{"id", "email", "name", "country", "created_at", "is_admin", "admin_role", "last_login"}

	fixedNow = time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)
	released = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int { return &i }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool { return &b }
func clock() time.Time { return fixedNow }
func statusPtr(s model.OrderStatus) *model.OrderStatus { return &s }

func productRow(id int64, name string, price float64) []any {
	return []any{id, name, strPtr("desc"), strPtr("Photo Editing"), price, true,
		strPtr("Single User"), strPtr("2024"), strPtr("Windows, macOS"), 100, released, false}
}

func itemRow(id, orderID, productID int64, qty int, price float64) []any {
	return append([]any{id, orderID, productID, qty, price}, productRow(productID, "Adobe Photoshop", price)...)
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	m, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(m.Close)
	return m
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, ev model.OrderEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func (m *mockPublisher) Close() error {
	return m.Called().Error(0)
}
