package routes

import (
	"ZWH-Backend/internal/api/handlers"
	"ZWH-Backend/internal/middleware"
	"ZWH-Backend/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	UserHandler    handlers.UserHandler
	ProductHandler handlers.ProductHandler
	HoldingHandler handlers.HoldingHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Products()
	c.Holdings()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Products() {
	products := c.App.Group("/api/v1/products", c.Middleware.AuthMiddleware(c.JWTService))

	// registered before /:barcode so "search" is not taken for a barcode
	products.Get("/search", c.ProductHandler.SearchByName)

	products.Post("", c.ProductHandler.CreateProduct)
	products.Get("", c.ProductHandler.GetProducts)
	products.Get("/:barcode", c.ProductHandler.GetProduct)
	products.Put("/:barcode", c.ProductHandler.UpdateProduct)
	products.Delete("/:barcode", c.ProductHandler.DeleteProduct)
	products.Post("/:barcode/image", c.ProductHandler.UploadProductImage)
}

func (c *Config) Holdings() {
	holdings := c.App.Group("/api/v1/holdings", c.Middleware.AuthMiddleware(c.JWTService))

	holdings.Get("/stats", c.HoldingHandler.GetHoldingStats)
	holdings.Post("/:location", c.HoldingHandler.AddHolding)
	holdings.Get("/:location", c.HoldingHandler.GetHoldings)
	holdings.Put("/:location/:id", c.HoldingHandler.UpdateHolding)
	holdings.Delete("/:location/:id", c.HoldingHandler.DeleteHolding)
}
