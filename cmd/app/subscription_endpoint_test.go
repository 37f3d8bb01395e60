package main

import (
	"net/http"
	"testing"

	"FredStoreAPI/internal/model"
	"FredStoreAPI/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateSubscriptionDefaultsAutoRenew(t *testing.T) {
	ts := newTestServer(t)
	ts.subscriptions.On("CreateSubscription", mock.Anything, mock.MatchedBy(func(s *model.Subscription) bool {
		return s.UserID == 1 && s.ProductID == 2 && s.AutoRenew &&
			s.StartDate.String() == "2024-01-01" && s.EndDate.String() == "2024-12-31"
	})).Return(&model.Subscription{
		ID: 5, UserID: 1, ProductID: 2,
		StartDate: model.NewDate(2024, 1, 1), EndDate: model.NewDate(2024, 12, 31), AutoRenew: true,
		Product: &model.Product{ID: 2, Name: "Adobe Illustrator"},
	}, nil)

	rec := ts.do(http.MethodPost, "/subscriptions",
		`{"user_id":1,"product_id":2,"start_date":"2024-01-01","end_date":"2024-12-31"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, "2024-12-31", body["end_date"])
	assert.Equal(t, "Adobe Illustrator", body["product"].(map[string]any)["name"])
}

func TestCreateSubscriptionMissingDates(t *testing.T) {
	ts := newTestServer(t)
	rec := ts.do(http.MethodPost, "/subscriptions", `{"user_id":1,"product_id":2,"start_date":null}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	details := decode(t, rec)["details"].(map[string]any)
	assert.Contains(t, details, "start_date")
	assert.Contains(t, details, "end_date")
}

func TestUpdateSubscriptionIgnoresImmutableFields(t *testing.T) {
	ts := newTestServer(t)
	end := model.NewDate(2025, 1, 31)
	ts.subscriptions.On("UpdateSubscription", mock.Anything, int64(5), services.SubscriptionPatch{EndDate: &end}).
		Return(&model.Subscription{ID: 5, UserID: 1, ProductID: 2, StartDate: model.NewDate(2024, 1, 1), EndDate: end}, nil)

	rec := ts.do(http.MethodPut, "/subscriptions/5", `{"end_date":"2025-01-31","user_id":77,"start_date":"2020-01-01"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.EqualValues(t, 1, body["user_id"])
	assert.Equal(t, "2024-01-01", body["start_date"])
}

func TestUpdateSubscriptionValidationFromService(t *testing.T) {
	ts := newTestServer(t)
	ts.subscriptions.On("UpdateSubscription", mock.Anything, int64(5), mock.Anything).
		Return(nil, &services.ValidationError{Fields: map[string]string{"end_date": "must not be before start_date"}})

	rec := ts.do(http.MethodPut, "/subscriptions/5", `{"end_date":"2000-01-01"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"error":"validation failed","details":{"end_date":"must not be before start_date"}}`, rec.Body.String())
}

func TestDeleteSubscription(t *testing.T) {
	ts := newTestServer(t)
	ts.subscriptions.On("DeleteSubscription", mock.Anything, int64(5)).Return(nil)

	rec := ts.do(http.MethodDelete, "/subscriptions/5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Subscription deleted successfully"}`, rec.Body.String())
}

func TestListSubscriptions(t *testing.T) {
	ts := newTestServer(t)
	ts.subscriptions.On("ListSubscriptions", mock.Anything).Return([]model.Subscription{
		{ID: 1, UserID: 1, ProductID: 2, StartDate: model.NewDate(2024, 1, 1), EndDate: model.NewDate(2024, 12, 31)},
	}, nil)

	rec := ts.do(http.MethodGet, "/subscriptions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"start_date":"2024-01-01"`)
}
