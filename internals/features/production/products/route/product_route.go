// file: internals/features/production/products/route/product_route.go
package route

import (
	productsController "pabrikku_backend/internals/features/production/products/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ProductRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &productsController.ProductsController{DB: db}

	r.Get("/", ctl.GetProducts)
	r.Post("/", ctl.CreateProduct)
	r.Get("/:id", ctl.GetProductByID)
	r.Put("/:id", ctl.UpdateProduct)
	r.Delete("/:id", ctl.DeleteProduct)
}
