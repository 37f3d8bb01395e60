package repository

import (
	"testing"
	"time"

	"FredStoreAPI/internal/model"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

var productCols = []string{"id", "name", "description", "category", "price", "subscription",
	"license_type", "version", "platform", "stock", "release_date", "is_promoted"}

var released = time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func productValues(id int64, name string, price float64) []any {
	return []any{id, name, strPtr(name + " description"), strPtr("Photo Editing"), price, true,
		strPtr("Single User"), strPtr("2024"), strPtr("Windows, macOS"), 1000, released, false}
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func expectedProduct(id int64, name string, price float64) model.Product {
	return model.Product{
		ID:           id,
		Name:         name,
		Description:  strPtr(name + " description"),
		Category:     strPtr("Photo Editing"),
		Price:        price,
		Subscription: true,
		LicenseType:  strPtr("Single User"),
		Version:      strPtr("2024"),
		Platform:     strPtr("Windows, macOS"),
		Stock:        1000,
		ReleaseDate:  model.Date{Time: released},
	}
}
