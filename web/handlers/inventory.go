package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/supplychain/database"
	"github.com/supplychain/models"
)

// InventoryList returns all inventory rows with product and warehouse
func InventoryList(c *fiber.Ctx) error {
	var inventories []models.Inventory
	err := database.DB.Preload("Product").Preload("Warehouse").
		Order("inventory_id").Find(&inventories).Error
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch inventories"})
	}
	return c.JSON(inventories)
}

// InventoryCreate creates a new inventory row
func InventoryCreate(c *fiber.Ctx) error {
	var inventory models.Inventory
	if err := c.BodyParser(&inventory); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := database.DB.Create(&inventory).Error; err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(inventory)
}
