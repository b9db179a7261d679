package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/supplychain/database"
)

// SQLDebugMiddleware records how many SQL statements each request executed
func SQLDebugMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		beforeCount := len(database.SQLLogger.GetQueries())

		err := c.Next()

		afterQueries := database.SQLLogger.GetQueries()
		requestQueries := []database.QueryLog{}

		if len(afterQueries) > beforeCount {
			diff := len(afterQueries) - beforeCount
			if diff > 0 && diff <= len(afterQueries) {
				requestQueries = afterQueries[:diff]
			}
		}

		c.Locals("SQLQueries", requestQueries)
		c.Locals("TotalSQLQueries", len(requestQueries))

		return err
	}
}
