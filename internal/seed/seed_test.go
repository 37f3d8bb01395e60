package seed

import (
	"context"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"FredStoreAPI/internal/model"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var now = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

func fixtures() ([]model.User, []model.Product) {
	users := catalogUsers()
	for i := range users {
		users[i].ID = int64(i + 1)
	}
	products := catalogProducts()
	for i := range products {
		products[i].ID = int64(i + 1)
	}
	return users, products
}

func plan(seed uint64) Plan {
	users, products := fixtures()
	return BuildPlan(rand.New(rand.NewPCG(seed, seed)), now, users, products)
}

func TestCatalogSize(t *testing.T) {
	users, products := fixtures()
	assert.Len(t, products, 20)
	assert.Len(t, users, 15)

	emails := map[string]bool{}
	for _, u := range users {
		assert.False(t, emails[u.Email], "duplicate email %s", u.Email)
		emails[u.Email] = true
	}
}

func TestBuildPlanIsDeterministic(t *testing.T) {
	assert.Equal(t, plan(42), plan(42))
	assert.NotEqual(t, plan(42), plan(7))
}

func TestBuildPlanRanges(t *testing.T) {
	p := plan(42)
	users, products := fixtures()
	priceOf := map[int64]float64{}
	for _, pr := range products {
		priceOf[pr.ID] = pr.Price
	}

	subsPerUser := map[int64]map[int64]bool{}
	for _, s := range p.Subscriptions {
		if subsPerUser[s.UserID] == nil {
			subsPerUser[s.UserID] = map[int64]bool{}
		}
		assert.False(t, subsPerUser[s.UserID][s.ProductID], "user %d subscribed twice to %d", s.UserID, s.ProductID)
		subsPerUser[s.UserID][s.ProductID] = true
		assert.Equal(t, "2024-01-01", s.StartDate.String())
		assert.Equal(t, "2024-12-31", s.EndDate.String())
	}
	require.Len(t, subsPerUser, len(users))
	for id, set := range subsPerUser {
		assert.GreaterOrEqual(t, len(set), 2, "user %d", id)
		assert.LessOrEqual(t, len(set), 4, "user %d", id)
	}

	ordersPerUser := map[int64]int{}
	for _, o := range p.Orders {
		ordersPerUser[o.UserID]++
		assert.True(t, o.Status.Valid())
		assert.True(t, o.CreatedAt.Before(now.AddDate(0, 0, -1).Add(time.Second)))
		assert.False(t, o.CreatedAt.Before(now.AddDate(0, 0, -60)))
		require.GreaterOrEqual(t, len(o.Items), 1)
		require.LessOrEqual(t, len(o.Items), 5)

		seen := map[int64]bool{}
		total := decimal.Zero
		for _, it := range o.Items {
			assert.False(t, seen[it.ProductID])
			seen[it.ProductID] = true
			assert.Contains(t, []int{1, 2}, it.Quantity)
			assert.Equal(t, priceOf[it.ProductID], it.PriceAtPurchase)
			total = total.Add(decimal.NewFromFloat(it.PriceAtPurchase).Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
		assert.Equal(t, total.Round(2).InexactFloat64(), o.TotalAmount)
	}
	require.Len(t, ordersPerUser, len(users))
	for id, n := range ordersPerUser {
		assert.GreaterOrEqual(t, n, 1, "user %d", id)
		assert.LessOrEqual(t, n, 3, "user %d", id)
	}
}

func TestBuildPlanWithoutProducts(t *testing.T) {
	users, _ := fixtures()
	p := BuildPlan(rand.New(rand.NewPCG(1, 1)), now, users, nil)
	assert.Empty(t, p.Subscriptions)
	assert.Empty(t, p.Orders)
}

func newSeeder(t *testing.T, db pgxmock.PgxPoolIface) *Seeder {
	s := New(db, zaptest.NewLogger(t), 42)
	s.Now = func() time.Time { return now }
	return s
}

func productArgs(p model.Product) []any {
	return []any{p.Name, p.Description, p.Category, p.Price, p.Subscription, p.LicenseType,
		p.Version, p.Platform, p.Stock, p.ReleaseDate.Time, p.IsPromoted}
}

func idRow(id int64) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id"}).AddRow(id)
}

func TestRunSkipsWhenProductsExist(t *testing.T) {
	db, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer db.Close()

	db.ExpectBegin()
	db.ExpectQuery("SELECT COUNT").WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(20)))
	db.ExpectCommit()

	require.NoError(t, newSeeder(t, db).Run(context.Background()))
	assert.NoError(t, db.ExpectationsWereMet())
}

func TestRunRollsBackOnFailure(t *testing.T) {
	db, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer db.Close()

	_, products := fixtures()

	db.ExpectBegin()
	db.ExpectQuery("SELECT COUNT").WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
	db.ExpectQuery("INSERT INTO products").WithArgs(productArgs(products[0])...).WillReturnRows(idRow(1))
	db.ExpectQuery("INSERT INTO products").WithArgs(productArgs(products[1])...).
		WillReturnError(errors.New("disk full"))
	db.ExpectRollback()

	err = newSeeder(t, db).Run(context.Background())
	assert.EqualError(t, err, "disk full")
	assert.NoError(t, db.ExpectationsWereMet())
}

func TestRunWritesWholeFixtureSet(t *testing.T) {
	db, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer db.Close()

	users, products := fixtures()
	want := plan(42)

	db.ExpectBegin()
	db.ExpectQuery("SELECT COUNT").WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
	for _, p := range products {
		db.ExpectQuery("INSERT INTO products").
			WithArgs(productArgs(p)...).
			WillReturnRows(idRow(p.ID))
	}
	for _, u := range users {
		db.ExpectQuery("INSERT INTO users").
			WithArgs(u.Email, u.Name, u.Country, now, false, "user", pgxmock.AnyArg()).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(u.ID, now))
	}
	for i, s := range want.Subscriptions {
		db.ExpectQuery("INSERT INTO subscriptions").
			WithArgs(s.UserID, s.ProductID, s.StartDate.Time, s.EndDate.Time, s.AutoRenew).
			WillReturnRows(idRow(int64(i + 1)))
	}
	itemID := int64(0)
	for i, o := range want.Orders {
		orderID := int64(i + 1)
		db.ExpectQuery("INSERT INTO orders").
			WithArgs(o.UserID, o.CreatedAt, string(o.Status), o.TotalAmount).
			WillReturnRows(idRow(orderID))
		for _, it := range o.Items {
			itemID++
			db.ExpectQuery("INSERT INTO order_items").
				WithArgs(orderID, it.ProductID, it.Quantity, it.PriceAtPurchase).
				WillReturnRows(idRow(itemID))
		}
	}
	db.ExpectCommit()

	require.NoError(t, newSeeder(t, db).Run(context.Background()))
	assert.NoError(t, db.ExpectationsWereMet())
}
