package routes

import (
	"FoodShare-Backend/internal/api/handlers"
	"FoodShare-Backend/internal/middleware"
	"FoodShare-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	FoodHandler     handlers.FoodHandler
	DonationHandler handlers.DonationHandler
	WasteHandler    handlers.WasteHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.FoodLogs()
	c.Categories()
	c.DonationCenters()
	c.Donations()
	c.WasteLogs()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Delete("/delete", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.DeleteUser)
		user.Get("/stats", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.GetUserStats)
	}
}

func (c *Config) FoodLogs() {
	foodLogs := c.App.Group("/api/v1/food-logs", c.Middleware.AuthMiddleware(c.JWTService))

	foodLogs.Post("", c.FoodHandler.AddFoodLog)
	foodLogs.Get("", c.FoodHandler.GetFoodLogs)
	foodLogs.Get("/my", c.FoodHandler.GetMyFoodLogs)
	foodLogs.Get("/:id", c.FoodHandler.GetFoodLogDetails)
	foodLogs.Put("/:id", c.FoodHandler.UpdateFoodLog)
	foodLogs.Delete("/:id", c.FoodHandler.DeleteFoodLog)
}

func (c *Config) Categories() {
	categories := c.App.Group("/api/v1/categories", c.Middleware.AuthMiddleware(c.JWTService))

	categories.Get("", c.FoodHandler.GetCategories)
	categories.Post("", c.FoodHandler.AddCategory)
	categories.Put("/:id", c.FoodHandler.UpdateCategory)
	categories.Delete("/:id", c.FoodHandler.DeleteCategory)
}

func (c *Config) DonationCenters() {
	centers := c.App.Group("/api/v1/donation-centers", c.Middleware.AuthMiddleware(c.JWTService))

	centers.Get("", c.DonationHandler.GetCenters)
	centers.Post("", c.DonationHandler.CreateCenter)
	centers.Put("/:id", c.DonationHandler.UpdateCenter)
	centers.Delete("/:id", c.DonationHandler.DeleteCenter)
}

func (c *Config) Donations() {
	donations := c.App.Group("/api/v1/donations", c.Middleware.AuthMiddleware(c.JWTService))

	donations.Post("", c.DonationHandler.CreateDonation)
	donations.Get("", c.DonationHandler.GetDonations)
	donations.Get("/my", c.DonationHandler.GetDonations)
	donations.Post("/multi", c.DonationHandler.CreateMultiDonation)
	donations.Get("/:id", c.DonationHandler.GetDonationDetails)
	donations.Delete("/:id", c.DonationHandler.DeleteDonation)
}

func (c *Config) WasteLogs() {
	wasteLogs := c.App.Group("/api/v1/waste-logs", c.Middleware.AuthMiddleware(c.JWTService))

	wasteLogs.Post("", c.WasteHandler.AddWasteLog)
	wasteLogs.Get("", c.WasteHandler.GetWasteLogs)
	wasteLogs.Get("/my", c.WasteHandler.GetWasteLogs)
	wasteLogs.Delete("/:id", c.WasteHandler.DeleteWasteLog)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
