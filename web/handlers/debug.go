package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/supplychain/database"
)

// GetSQLLogs returns recently executed SQL statements
func GetSQLLogs(c *fiber.Ctx) error {
	n := len(database.SQLLogger.GetQueries())
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid limit"})
		}
		n = parsed
	}

	return c.JSON(database.SQLLogger.GetRecentQueries(n))
}

// ClearSQLLogs empties the query log ring
func ClearSQLLogs(c *fiber.Ctx) error {
	database.SQLLogger.Clear()
	return c.SendStatus(204)
}
