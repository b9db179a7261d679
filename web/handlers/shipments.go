package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/supplychain/database"
	"github.com/supplychain/models"
	"gorm.io/gorm"
)

// ShipmentList returns all shipments with related rows
func ShipmentList(c *fiber.Ctx) error {
	var shipments []models.Shipment
	err := database.DB.Preload("Supplier").Preload("Warehouse").
		Order("shipment_id").Find(&shipments).Error
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch shipments"})
	}
	return c.JSON(shipments)
}

type movementRequest struct {
	ProductID    uint                `json:"product_id"`
	WarehouseID  uint                `json:"warehouse_id"`
	Quantity     int                 `json:"quantity"`
	MovementType models.MovementType `json:"movement_type"`
}

type shipmentCreateRequest struct {
	SupplierID   uint                  `json:"supplier_id"`
	WarehouseID  uint                  `json:"warehouse_id"`
	DeliveryDate *time.Time            `json:"delivery_date"`
	Status       models.ShipmentStatus `json:"status"`
	Weight       float64               `json:"weight"`
	Movements    []movementRequest     `json:"movements"`
}

// ShipmentCreate creates a shipment and its product movements in one transaction
func ShipmentCreate(c *fiber.Ctx) error {
	var req shipmentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	status := req.Status
	if status == "" {
		status = models.ShipmentPending
	}

	shipment := models.Shipment{
		ShipmentNo:   newOrderNo("SHP"),
		SupplierID:   req.SupplierID,
		WarehouseID:  req.WarehouseID,
		DeliveryDate: req.DeliveryDate,
		Status:       status,
		Weight:       req.Weight,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&shipment).Error; err != nil {
			return err
		}
		for _, m := range req.Movements {
			movement := models.ProductMovement{
				ShipmentID:   shipment.ShipmentID,
				ProductID:    m.ProductID,
				WarehouseID:  m.WarehouseID,
				Quantity:     m.Quantity,
				MovementType: m.MovementType,
			}
			if err := tx.Create(&movement).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(shipment)
}
