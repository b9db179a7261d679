package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/supplychain/database"
	"github.com/supplychain/models"
)

// ProductList returns all products with their supplier
func ProductList(c *fiber.Ctx) error {
	var products []models.Product
	if err := database.DB.Preload("Supplier").Order("product_id").Find(&products).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch products"})
	}
	return c.JSON(products)
}

// ProductCreate creates a new product
func ProductCreate(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := database.DB.Create(&product).Error; err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(product)
}

// ProductDelete removes a product. No cascade is declared on this edge, so
// the delete is rejected while order details or inventories reference it.
func ProductDelete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var product models.Product
	if err := database.DB.First(&product, uint(id)).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Product not found"})
	}

	if err := database.DB.Delete(&product).Error; err != nil {
		if isForeignKeyViolation(err) {
			return c.Status(409).JSON(fiber.Map{"error": "Product is still referenced"})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStatus(204)
}
