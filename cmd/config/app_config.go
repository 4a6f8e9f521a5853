package config

import (
	"FoodShare-Backend/internal/api/handlers"
	"FoodShare-Backend/internal/api/routes"
	"FoodShare-Backend/internal/middleware"
	"FoodShare-Backend/internal/utils"
	"FoodShare-Backend/pkg/donation"
	"FoodShare-Backend/pkg/food"
	"FoodShare-Backend/pkg/jwt"
	"FoodShare-Backend/pkg/reconcile"
	"FoodShare-Backend/pkg/sweep"
	"FoodShare-Backend/pkg/user"
	"FoodShare-Backend/pkg/waste"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Manila",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// Repository
	userRepository := user.NewUserRepository(db)
	foodRepository := food.NewFoodRepository(db)
	donationRepository := donation.NewDonationRepository(db)
	wasteRepository := waste.NewWasteRepository(db)
	ledgerRepository := reconcile.NewLedgerRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	engine := reconcile.NewEngine(ledgerRepository)
	userService := user.NewUserService(userRepository, jwtService)
	foodService := food.NewFoodService(foodRepository, engine)
	donationService := donation.NewDonationService(donationRepository, foodRepository, engine)
	wasteService := waste.NewWasteService(wasteRepository, engine)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	foodHandler := handlers.NewFoodHandler(foodService, validator)
	donationHandler := handlers.NewDonationHandler(donationService, validator)
	wasteHandler := handlers.NewWasteHandler(wasteService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		FoodHandler:     foodHandler,
		DonationHandler: donationHandler,
		WasteHandler:    wasteHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}

// NewSweeper wires the expiration sweep separately from the HTTP app so the
// scheduler can run it without a fiber dependency.
func NewSweeper(db *gorm.DB) sweep.SweepService {
	ledgerRepository := reconcile.NewLedgerRepository(db)
	engine := reconcile.NewEngine(ledgerRepository)
	wasteService := waste.NewWasteService(waste.NewWasteRepository(db), engine)
	return sweep.NewSweepService(sweep.NewSweepRepository(db), wasteService, engine)
}
