package routes

import (
	"FoodShare-Backend/internal/api/handlers"
	"FoodShare-Backend/internal/middleware"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestSetupRegistersOwnedListingRoutes(t *testing.T) {
	config := Config{
		App:             fiber.New(),
		UserHandler:     handlers.NewUserHandler(nil, nil),
		FoodHandler:     handlers.NewFoodHandler(nil, nil),
		DonationHandler: handlers.NewDonationHandler(nil, nil),
		WasteHandler:    handlers.NewWasteHandler(nil, nil),
		Middleware:      middleware.NewMiddleware(),
	}
	config.Setup()

	registered := map[string]bool{}
	for _, route := range config.App.GetRoutes() {
		registered[route.Method+" "+route.Path] = true
	}

	assert.True(t, registered["GET /api/v1/food-logs/my"])
	assert.True(t, registered["GET /api/v1/donations/my"])
	assert.True(t, registered["GET /api/v1/waste-logs/my"])
	assert.True(t, registered["GET /api/v1/donations/:id"])
	assert.True(t, registered["GET /api/v1/donation-centers"])
}
