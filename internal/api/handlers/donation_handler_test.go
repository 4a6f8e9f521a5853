package handlers

import (
	"FoodShare-Backend/domain"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDonationService records the GetCenters arguments so route-level
// defaults can be asserted.
type fakeDonationService struct {
	lat, lng, radius float64
}

func (f *fakeDonationService) CreateCenter(_ context.Context, _ domain.DonationCenterRequest) (*domain.DonationCenterResponse, error) {
	return nil, nil
}

func (f *fakeDonationService) GetCenters(_ context.Context, lat, lng, radius float64) ([]*domain.DonationCenterResponse, error) {
	f.lat, f.lng, f.radius = lat, lng, radius
	return []*domain.DonationCenterResponse{}, nil
}

func (f *fakeDonationService) UpdateCenter(_ context.Context, _ string, _ domain.DonationCenterRequest) (*domain.DonationCenterResponse, error) {
	return nil, nil
}

func (f *fakeDonationService) DeleteCenter(_ context.Context, _ string) error {
	return nil
}

func (f *fakeDonationService) CreateDonation(_ context.Context, _ domain.DonationRequest, _ string) (*domain.DonationResponse, error) {
	return nil, nil
}

func (f *fakeDonationService) GetDonationByID(_ context.Context, _ string, _ string) (*domain.DonationResponse, error) {
	return nil, nil
}

func (f *fakeDonationService) GetDonations(_ context.Context, _ string, _, _ int) ([]*domain.DonationResponse, int64, error) {
	return nil, 0, nil
}

func (f *fakeDonationService) DeleteDonation(_ context.Context, _ string, _ string) error {
	return nil
}

func (f *fakeDonationService) CreateMultiDonation(_ context.Context, _ domain.MultiDonationRequest, _ string) ([]*domain.DonationResponse, error) {
	return nil, nil
}

func TestGetCentersQueryDefaults(t *testing.T) {
	newApp := func(service *fakeDonationService) *fiber.App {
		handler := NewDonationHandler(service, validator.New())
		app := fiber.New()
		app.Get("/donation-centers", handler.GetCenters)
		return app
	}

	t.Run("no query params lists every center", func(t *testing.T) {
		service := &fakeDonationService{}
		app := newApp(service)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/donation-centers", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, 0.0, service.radius)
	})

	t.Run("radius query takes the nearby branch", func(t *testing.T) {
		service := &fakeDonationService{}
		app := newApp(service)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/donation-centers?lat=8.95&lng=125.54&radius=10", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, 8.95, service.lat)
		assert.Equal(t, 125.54, service.lng)
		assert.Equal(t, 10.0, service.radius)
	})
}
