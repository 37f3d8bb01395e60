package seed

import (
	"context"
	"math/rand/v2"
	"time"

	"FredStoreAPI/internal/model"
	"FredStoreAPI/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	subscriptionStart = model.NewDate(2024, time.January, 1)
	subscriptionEnd   = model.NewDate(2024, time.December, 31)

	// weighted towards Completed
	orderStatuses = []model.OrderStatus{
		model.OrderStatusCompleted,
		model.OrderStatusCompleted,
		model.OrderStatusCompleted,
		model.OrderStatusPending,
		model.OrderStatusFailed,
	}
)

// Plan is the randomized part of the fixture set: what each user subscribed
// to and ordered.
type Plan struct {
	Subscriptions []model.Subscription
	Orders        []model.Order
}

// BuildPlan derives subscriptions and orders for users from products. users and
// products must already carry their ids. The result depends only on the
// arguments, so equal seeds give equal plans.
func BuildPlan(rng *rand.Rand, now time.Time, users []model.User, products []model.Product) Plan {
	var plan Plan
	if len(products) == 0 {
		return plan
	}

	for _, u := range users {
		n := min(2+rng.IntN(3), len(products))
		for _, idx := range rng.Perm(len(products))[:n] {
			plan.Subscriptions = append(plan.Subscriptions, model.Subscription{
				UserID:    u.ID,
				ProductID: products[idx].ID,
				StartDate: subscriptionStart,
				EndDate:   subscriptionEnd,
				AutoRenew: rng.IntN(3) < 2,
			})
		}
	}

	for _, u := range users {
		orders := 1 + rng.IntN(3)
		for range orders {
			o := model.Order{
				UserID:    u.ID,
				Status:    orderStatuses[rng.IntN(len(orderStatuses))],
				CreatedAt: now.AddDate(0, 0, -(1 + rng.IntN(60))),
			}
			total := decimal.Zero
			n := min(1+rng.IntN(5), len(products))
			for _, idx := range rng.Perm(len(products))[:n] {
				p := products[idx]
				qty := 1 + rng.IntN(2)
				o.Items = append(o.Items, model.OrderItem{
					ProductID:       p.ID,
					Quantity:        qty,
					PriceAtPurchase: p.Price,
				})
				total = total.Add(decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(qty))))
			}
			o.TotalAmount = total.Round(2).InexactFloat64()
			plan.Orders = append(plan.Orders, o)
		}
	}
	return plan
}

// Seeder fills an empty database with the demo catalog.
type Seeder struct {
	DB     repository.DBTX
	Logger *zap.Logger
	Seed   uint64
	Now    func() time.Time
}

func New(db repository.DBTX, logger *zap.Logger, seed uint64) *Seeder {
	return &Seeder{DB: db, Logger: logger, Seed: seed, Now: time.Now}
}

// Run seeds inside a single transaction. It does nothing when products
// already exist. On error nothing is written.
func (s *Seeder) Run(ctx context.Context) error {
	err := repository.WithTx(ctx, s.DB, func(tx pgx.Tx) error {
		productRepo := repository.NewProductRepository(tx)
		count, err := productRepo.Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			s.Logger.Info("database already initialized", zap.Int64("products", count))
			return nil
		}

		products := catalogProducts()
		for i := range products {
			if err := productRepo.Create(ctx, &products[i]); err != nil {
				return err
			}
		}

		now := s.Now().UTC().Truncate(time.Microsecond)
		userRepo := repository.NewUserRepository(tx)
		users := catalogUsers()
		for i := range users {
			users[i].CreatedAt = now
			users[i].AdminRole = model.RoleUser
			if err := userRepo.Create(ctx, &users[i]); err != nil {
				return err
			}
		}

		plan := BuildPlan(rand.New(rand.NewPCG(s.Seed, s.Seed)), now, users, products)

		subRepo := repository.NewSubscriptionRepository(tx)
		for i := range plan.Subscriptions {
			if err := subRepo.Create(ctx, &plan.Subscriptions[i]); err != nil {
				return err
			}
		}
		orderRepo := repository.NewOrderRepository(tx)
		for i := range plan.Orders {
			if err := orderRepo.Create(ctx, &plan.Orders[i]); err != nil {
				return err
			}
		}

		s.Logger.Info("database seeded",
			zap.Int("products", len(products)),
			zap.Int("users", len(users)),
			zap.Int("subscriptions", len(plan.Subscriptions)),
			zap.Int("orders", len(plan.Orders)),
			zap.Uint64("seed", s.Seed),
		)
		return nil
	})
	if err != nil {
		s.Logger.Error("seeding failed, rolled back", zap.Error(err))
		return err
	}
	return nil
}
