package web

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/supplychain/database"
	"github.com/supplychain/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestServer points the global database handle at a seeded in-memory
// database and returns a server ready for app.Test requests.
func newTestServer(t *testing.T, name string) *Server {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatal(err)
	}
	if err := database.SeedData(db); err != nil {
		t.Fatal(err)
	}

	database.DB = db
	return NewServer()
}

func TestProductListEndpoint(t *testing.T) {
	srv := newTestServer(t, "web_products")

	req := httptest.NewRequest("GET", "/api/products", nil)
	resp, err := srv.app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var products []models.Product
	if err := json.Unmarshal(body, &products); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(products) != 4 {
		t.Fatalf("expected 4 products, got %d", len(products))
	}
	if products[0].Supplier.SupplierName == "" {
		t.Fatal("expected supplier preloaded on product rows")
	}
}

func TestInvalidLoyaltyStatusRejected(t *testing.T) {
	srv := newTestServer(t, "web_loyalty")

	payload := `{"customer_name":"Eve","loyalty_status":"Platinum"}`
	req := httptest.NewRequest("POST", "/api/customers", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 400 {
		t.Fatalf("expected 400 for CHECK violation, got %d", resp.StatusCode)
	}

	var n int64
	database.DB.Model(&models.Customer{}).Where("customer_name = ?", "Eve").Count(&n)
	if n != 0 {
		t.Fatal("rejected insert must not add a row")
	}
}

func TestReferencedProductDeleteConflicts(t *testing.T) {
	srv := newTestServer(t, "web_restrict")

	var phone models.Product
	if err := database.DB.Where("product_name = ?", "Phone").First(&phone).Error; err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("DELETE", fmt.Sprintf("/api/products/%d", phone.ProductID), nil)
	resp, err := srv.app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 409 {
		t.Fatalf("expected 409 for referenced product, got %d", resp.StatusCode)
	}

	var n int64
	database.DB.Model(&models.Product{}).Where("product_id = ?", phone.ProductID).Count(&n)
	if n != 1 {
		t.Fatal("product must survive rejected delete")
	}
}

func TestSupplierDeleteCascadesOverHTTP(t *testing.T) {
	srv := newTestServer(t, "web_cascade")

	// fresh supplier without products, so only cascade edges are involved
	supplier := models.Supplier{SupplierName: "Transient", Region: "Asia", Phone: "1", Email: "t@t.example"}
	if err := database.DB.Create(&supplier).Error; err != nil {
		t.Fatal(err)
	}

	var customer models.Customer
	if err := database.DB.First(&customer).Error; err != nil {
		t.Fatal(err)
	}
	var product models.Product
	if err := database.DB.First(&product).Error; err != nil {
		t.Fatal(err)
	}

	order := models.Order{
		OrderNo:    "ORD-TRANSIENT",
		CustomerID: customer.CustomerID,
		ProductID:  product.ProductID,
		SupplierID: supplier.SupplierID,
		Status:     models.OrderPending,
	}
	if err := database.DB.Create(&order).Error; err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest("DELETE", fmt.Sprintf("/api/suppliers/%d", supplier.SupplierID), nil)
	resp, err := srv.app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 204 {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}

	var n int64
	database.DB.Model(&models.Order{}).Where("order_id = ?", order.OrderID).Count(&n)
	if n != 0 {
		t.Fatal("expected supplier's order removed by cascade")
	}
}

func TestHighValueReportEndpoint(t *testing.T) {
	srv := newTestServer(t, "web_high_value")

	req := httptest.NewRequest("GET", "/api/reports/orders/high-value?min_total=500", nil)
	resp, err := srv.app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var rows []struct {
		ProductName string  `json:"product_name"`
		LineTotal   float64 `json:"line_total"`
	}
	if err := json.Unmarshal(body, &rows); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 high value lines, got %d", len(rows))
	}
	if rows[0].LineTotal != 1000 || rows[1].LineTotal != 600 {
		t.Fatalf("unexpected line totals: %+v", rows)
	}
}

func TestDistinctCategoriesEndpoint(t *testing.T) {
	srv := newTestServer(t, "web_categories")

	req := httptest.NewRequest("GET", "/api/reports/categories", nil)
	resp, err := srv.app.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var categories []string
	if err := json.Unmarshal(body, &categories); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(categories) != 3 {
		t.Fatalf("expected 3 distinct categories, got %v", categories)
	}
}
