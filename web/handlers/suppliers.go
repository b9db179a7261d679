package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/supplychain/database"
	"github.com/supplychain/models"
)

// SupplierList returns all suppliers
func SupplierList(c *fiber.Ctx) error {
	var suppliers []models.Supplier
	if err := database.DB.Order("supplier_id").Find(&suppliers).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch suppliers"})
	}
	return c.JSON(suppliers)
}

// SupplierCreate creates a new supplier
func SupplierCreate(c *fiber.Ctx) error {
	var supplier models.Supplier
	if err := c.BodyParser(&supplier); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := database.DB.Create(&supplier).Error; err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(supplier)
}

// SupplierDelete removes a supplier. The engine cascades the delete to the
// supplier's orders and shipments and their dependent rows.
func SupplierDelete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid supplier ID"})
	}

	var supplier models.Supplier
	if err := database.DB.First(&supplier, uint(id)).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Supplier not found"})
	}

	if err := database.DB.Delete(&supplier).Error; err != nil {
		if isForeignKeyViolation(err) {
			return c.Status(409).JSON(fiber.Map{"error": "Supplier is still referenced"})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStatus(204)
}
