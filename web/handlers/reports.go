package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/supplychain/database"
	"github.com/supplychain/reports"
)

func reportService() *reports.Service {
	return reports.NewService(database.GetDB())
}

// ReportOrders returns all orders joined to customer and product
func ReportOrders(c *fiber.Ctx) error {
	rows, err := reportService().OrdersWithCustomerAndProduct()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(rows)
}

// ReportCompletedOrders returns orders with status 'Completed'
func ReportCompletedOrders(c *fiber.Ctx) error {
	rows, err := reportService().CompletedOrders()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(rows)
}

// ReportOrdersBetween returns orders in a date range (default: last 30 days)
func ReportOrdersBetween(c *fiber.Ctx) error {
	to := time.Now()
	from := to.AddDate(0, 0, -30)

	if v := c.Query("from"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid from date"})
		}
		from = parsed
	}
	if v := c.Query("to"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid to date"})
		}
		to = parsed
	}

	rows, err := reportService().OrdersBetween(from, to)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(rows)
}

// ReportHighValueOrderLines returns order lines with quantity * unit_price
// above a threshold (default 500)
func ReportHighValueOrderLines(c *fiber.Ctx) error {
	minTotal := 500.0
	if v := c.Query("min_total"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid min_total"})
		}
		minTotal = parsed
	}

	rows, err := reportService().HighValueOrderLines(minTotal)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(rows)
}

// ReportLowStock returns stock below a threshold (default 50) for a category
func ReportLowStock(c *fiber.Ctx) error {
	threshold := 50
	if v := c.Query("threshold"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid threshold"})
		}
		threshold = parsed
	}
	category := c.Query("category", "Electronics")

	rows, err := reportService().LowStockByCategory(threshold, category)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(rows)
}

// ReportHeavyShipments returns shipments heavier than a threshold (default 1000)
func ReportHeavyShipments(c *fiber.Ctx) error {
	minWeight := 1000.0
	if v := c.Query("min_weight"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid min_weight"})
		}
		minWeight = parsed
	}

	rows, err := reportService().HeavyShipments(minWeight)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(rows)
}

// ReportShipmentsReceived returns received shipments for a warehouse
func ReportShipmentsReceived(c *fiber.Ctx) error {
	warehouseID, err := strconv.ParseUint(c.Query("warehouse_id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid warehouse ID"})
	}

	rows, err := reportService().ShipmentsReceivedAt(uint(warehouseID))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(rows)
}

// ReportShipmentMovements returns the product movements of one shipment
func ReportShipmentMovements(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid shipment ID"})
	}

	rows, err := reportService().MovementsForShipment(uint(id))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(rows)
}

// ReportCustomerHistory returns a customer's order lines
func ReportCustomerHistory(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid customer ID"})
	}

	rows, err := reportService().CustomerOrderHistory(uint(id))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(rows)
}

// ReportStockedCategories returns each stocked product category exactly once
func ReportStockedCategories(c *fiber.Ctx) error {
	categories, err := reportService().DistinctStockedCategories()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(categories)
}

// ReportSupplierRegions returns each supplier region exactly once
func ReportSupplierRegions(c *fiber.Ctx) error {
	regions, err := reportService().DistinctSupplierRegions()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(regions)
}

// ReportProductsByPrice returns the product catalog sorted by unit price
func ReportProductsByPrice(c *fiber.Ctx) error {
	descending := c.Query("sort", "asc") == "desc"

	products, err := reportService().ProductsByPrice(descending)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(products)
}
