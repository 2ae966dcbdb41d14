// Package dbtest opens isolated in-memory SQLite databases carrying the
// service schema, for repository, service and handler tests.
package dbtest

import (
	"fmt"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/angelmondragon/pantrycost-backend/pkg/db"
	"github.com/angelmondragon/pantrycost-backend/pkg/db/models"
	"github.com/angelmondragon/pantrycost-backend/pkg/enums"
	"github.com/angelmondragon/pantrycost-backend/pkg/types"
)

// Numeric columns are TEXT so decimals round-trip exactly. Each one carries a
// CHECK holding it to the scale of its NUMERIC column in the migrations, so a
// write Postgres would silently round fails here instead.
var schema = []string{
	`CREATE TABLE ingredients (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		price TEXT NOT NULL ` + scale("price", 2) + `,
		store TEXT,
		measurement_value TEXT NOT NULL ` + scale("measurement_value", 3) + `,
		measurement_type TEXT NOT NULL,
		description TEXT,
		date_added TEXT NOT NULL
	)`,
	`CREATE TABLE recipes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		recipe_name TEXT NOT NULL,
		instructions TEXT NOT NULL,
		date_created TEXT NOT NULL,
		total_cost TEXT NOT NULL DEFAULT '0' ` + scale("total_cost", 4) + `
	)`,
	`CREATE TABLE recipe_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		recipe_id INTEGER NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
		ingredient_id INTEGER NOT NULL REFERENCES ingredients(id),
		quantity TEXT NOT NULL ` + scale("quantity", 3) + `,
		measurement_type TEXT NOT NULL,
		price TEXT NOT NULL ` + scale("price", 4) + `
	)`,
	`CREATE TABLE orders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		order_name TEXT NOT NULL,
		order_date TEXT NOT NULL,
		notes TEXT,
		labor_cost TEXT NOT NULL DEFAULT '0' ` + scale("labor_cost", 2) + `,
		profit_margin TEXT NOT NULL DEFAULT '0.4' ` + scale("profit_margin", 4) + `,
		subtotal TEXT NOT NULL DEFAULT '0' ` + scale("subtotal", 4) + `,
		total_price TEXT NOT NULL DEFAULT '0' ` + scale("total_price", 2) + `,
		created_at DATETIME
	)`,
	`CREATE TABLE order_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		item_id INTEGER NOT NULL,
		item_type TEXT NOT NULL,
		item_name TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		unit_price TEXT NOT NULL ` + scale("unit_price", 4) + `,
		price TEXT NOT NULL ` + scale("price", 4) + `
	)`,
}

// scale renders a CHECK that allows at most places digits after the point.
func scale(column string, places int) string {
	return fmt.Sprintf("CHECK (instr(%[1]s, '.') = 0 OR length(%[1]s) - instr(%[1]s, '.') <= %[2]d)", column, places)
}

// Open returns a client over a fresh database private to t.
func Open(t *testing.T) *db.Client {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name)

	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                 gormlogger.New(log.New(io.Discard, "", 0), gormlogger.Config{LogLevel: gormlogger.Silent}),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("sql handle: %v", err)
	}
	// one connection keeps the shared in-memory database alive and
	// serializes transactions the way a single writer would see them
	sqlDB.SetMaxOpenConns(1)

	for _, stmt := range schema {
		if err := conn.Exec(stmt).Error; err != nil {
			t.Fatalf("apply schema: %v", err)
		}
	}

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db.FromGorm(conn)
}

// Count returns the number of rows in table.
func Count(t *testing.T, client *db.Client, table string) int64 {
	t.Helper()
	var n int64
	if err := client.DB().Table(table).Count(&n).Error; err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

// MustCreateIngredient inserts an ingredient priced at price for qty units.
func MustCreateIngredient(t *testing.T, client *db.Client, name, price, qty string, unit enums.MeasurementUnit) *models.Ingredient {
	t.Helper()
	ingredient := &models.Ingredient{
		Name:             name,
		Price:            decimal.RequireFromString(price),
		MeasurementValue: decimal.RequireFromString(qty),
		MeasurementType:  unit,
		DateAdded:        types.Today(),
	}
	if err := client.DB().Create(ingredient).Error; err != nil {
		t.Fatalf("create ingredient: %v", err)
	}
	return ingredient
}

// MustCreateRecipe inserts a recipe with a fixed total and no lines.
func MustCreateRecipe(t *testing.T, client *db.Client, name, totalCost string) *models.Recipe {
	t.Helper()
	recipe := &models.Recipe{
		Name:         name,
		Instructions: "mix",
		DateCreated:  types.Today(),
		TotalCost:    decimal.RequireFromString(totalCost),
	}
	if err := client.DB().Create(recipe).Error; err != nil {
		t.Fatalf("create recipe: %v", err)
	}
	return recipe
}
