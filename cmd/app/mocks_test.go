package main

import (
	"context"
	"testing"

	"FredStoreAPI/internal/model"
	"FredStoreAPI/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"
)

type mockProductService struct{ mock.Mock }

func (m *mockProductService) ListProducts(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]model.Product)
	return list, args.Error(1)
}

func (m *mockProductService) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*model.Product)
	return p, args.Error(1)
}

func (m *mockProductService) CreateProduct(ctx context.Context, p *model.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProductService) UpdateProduct(ctx context.Context, p *model.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProductService) DeleteProduct(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockUserService struct{ mock.Mock }

func (m *mockUserService) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]model.User)
	return list, args.Error(1)
}

func (m *mockUserService) GetUser(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *mockUserService) CreateUser(ctx context.Context, u *model.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserService) UpdateUser(ctx context.Context, id int64, patch services.UserPatch) (*model.User, error) {
	args := m.Called(ctx, id, patch)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *mockUserService) DeleteUser(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockUserService) ListUserOrders(ctx context.Context, id int64) ([]model.Order, error) {
	args := m.Called(ctx, id)
	list, _ := args.Get(0).([]model.Order)
	return list, args.Error(1)
}

func (m *mockUserService) ListUserSubscriptions(ctx context.Context, id int64) ([]model.Subscription, error) {
	args := m.Called(ctx, id)
	list, _ := args.Get(0).([]model.Subscription)
	return list, args.Error(1)
}

type mockOrderService struct{ mock.Mock }

func (m *mockOrderService) ListOrders(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]model.Order)
	return list, args.Error(1)
}

func (m *mockOrderService) GetOrder(ctx context.Context, id int64) (*model.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*model.Order)
	return o, args.Error(1)
}

func (m *mockOrderService) CreateOrder(ctx context.Context, in services.CreateOrderInput) (*model.Order, error) {
	args := m.Called(ctx, in)
	o, _ := args.Get(0).(*model.Order)
	return o, args.Error(1)
}

func (m *mockOrderService) UpdateOrder(ctx context.Context, id int64, patch services.OrderPatch) (*model.Order, error) {
	args := m.Called(ctx, id, patch)
	o, _ := args.Get(0).(*model.Order)
	return o, args.Error(1)
}

func (m *mockOrderService) DeleteOrder(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockSubscriptionService struct{ mock.Mock }

func (m *mockSubscriptionService) ListSubscriptions(ctx context.Context) ([]model.Subscription, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]model.Subscription)
	return list, args.Error(1)
}

func (m *mockSubscriptionService) GetSubscription(ctx context.Context, id int64) (*model.Subscription, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*model.Subscription)
	return s, args.Error(1)
}

func (m *mockSubscriptionService) CreateSubscription(ctx context.Context, s *model.Subscription) (*model.Subscription, error) {
	args := m.Called(ctx, s)
	out, _ := args.Get(0).(*model.Subscription)
	return out, args.Error(1)
}

func (m *mockSubscriptionService) UpdateSubscription(ctx context.Context, id int64, patch services.SubscriptionPatch) (*model.Subscription, error) {
	args := m.Called(ctx, id, patch)
	s, _ := args.Get(0).(*model.Subscription)
	return s, args.Error(1)
}

func (m *mockSubscriptionService) DeleteSubscription(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

type testServer struct {
	e             *echo.Echo
	products      *mockProductService
	users         *mockUserService
	orders        *mockOrderService
	subscriptions *mockSubscriptionService
}

func newTestServer(t *testing.T) *testServer {
	ts := &testServer{
		products:      &mockProductService{},
		users:         &mockUserService{},
		orders:        &mockOrderService{},
		subscriptions: &mockSubscriptionService{},
	}
	ts.e = newServer(zaptest.NewLogger(t), fakePinger{}, handlers{
		products:      ts.products,
		users:         ts.users,
		orders:        ts.orders,
		subscriptions: ts.subscriptions,
	})
	t.Cleanup(func() {
		ts.products.AssertExpectations(t)
		ts.users.AssertExpectations(t)
		ts.orders.AssertExpectations(t)
		ts.subscriptions.AssertExpectations(t)
	})
	return ts
}
