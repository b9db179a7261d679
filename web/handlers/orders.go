package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/supplychain/database"
	"github.com/supplychain/models"
	"gorm.io/gorm"
)

// OrderList returns all orders with related rows
func OrderList(c *fiber.Ctx) error {
	var orders []models.Order
	err := database.DB.Preload("Customer").Preload("Product").Preload("Supplier").
		Order("order_date DESC").Find(&orders).Error
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch orders"})
	}
	return c.JSON(orders)
}

type orderDetailRequest struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type orderCreateRequest struct {
	CustomerID uint                 `json:"customer_id"`
	ProductID  uint                 `json:"product_id"`
	SupplierID uint                 `json:"supplier_id"`
	Status     models.OrderStatus   `json:"status"`
	Details    []orderDetailRequest `json:"details"`
}

// OrderCreate creates an order and its detail lines in one transaction
func OrderCreate(c *fiber.Ctx) error {
	var req orderCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	status := req.Status
	if status == "" {
		status = models.OrderPending
	}

	order := models.Order{
		OrderNo:    newOrderNo("ORD"),
		CustomerID: req.CustomerID,
		ProductID:  req.ProductID,
		SupplierID: req.SupplierID,
		OrderDate:  time.Now(),
		Status:     status,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, d := range req.Details {
			detail := models.OrderDetail{
				OrderID:   order.OrderID,
				ProductID: d.ProductID,
				Quantity:  d.Quantity,
			}
			if err := tx.Create(&detail).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(order)
}

// OrderDelete removes an order; its detail lines cascade
func OrderDelete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	var order models.Order
	if err := database.DB.First(&order, uint(id)).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Order not found"})
	}

	if err := database.DB.Delete(&order).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStatus(204)
}

// newOrderNo generates a unique business code like ORD-1A2B3C4D
func newOrderNo(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.NewString()[:8])
}
