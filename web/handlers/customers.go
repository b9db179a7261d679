package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/supplychain/database"
	"github.com/supplychain/models"
)

// CustomerList returns all customers
func CustomerList(c *fiber.Ctx) error {
	var customers []models.Customer
	if err := database.DB.Order("customer_id").Find(&customers).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch customers"})
	}
	return c.JSON(customers)
}

// CustomerCreate creates a new customer
func CustomerCreate(c *fiber.Ctx) error {
	var customer models.Customer
	if err := c.BodyParser(&customer); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := database.DB.Create(&customer).Error; err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(customer)
}
