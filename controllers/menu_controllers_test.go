package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/mariahavens/restaurant-pos/models"
)

func setupMenuRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	catCtrl := NewMenuCategoryController(db)
	itemCtrl := NewMenuItemController(db)
	r.GET("/api/menu/categories", catCtrl.GetAllCategories)
	r.POST("/api/menu/categories", catCtrl.CreateCategory)
	r.PUT("/api/menu/categories/:id", catCtrl.UpdateCategory)
	r.DELETE("/api/menu/categories/:id", catCtrl.DeleteCategory)
	r.GET("/api/menu/items", itemCtrl.GetAllItems)
	r.POST("/api/menu/items", itemCtrl.CreateItem)
	r.PUT("/api/menu/items/:id", itemCtrl.UpdateItem)
	r.DELETE("/api/menu/items/:id", itemCtrl.DeleteItem)
	return r
}

func TestMenuCatalogScenario(t *testing.T) {
	db := setupTestDB(t)
	r := setupMenuRouter(db)

	w := doJSON(t, r, "POST", "/api/menu/categories", gin.H{
		"name":          "Appetizers",
		"display_order": 1,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	catID := decodeBody(t, w)["id"]

	w = doJSON(t, r, "POST", "/api/menu/items", gin.H{
		"category_id":      catID,
		"name":             "Samosas",
		"price":            350,
		"preparation_time": 10,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "GET", "/api/menu/items", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	items := decodeList(t, w)
	assert.Len(t, items, 1)
	assert.Equal(t, "Samosas", items[0]["name"])
	assert.Equal(t, "Appetizers", items[0]["category_name"])
	assert.Equal(t, float64(350), items[0]["price"])
	assert.Equal(t, float64(10), items[0]["preparation_time"])
}

func TestCreateItemDefaultsPreparationTime(t *testing.T) {
	db := setupTestDB(t)
	r := setupMenuRouter(db)

	doJSON(t, r, "POST", "/api/menu/categories", gin.H{"name": "Mains"})
	w := doJSON(t, r, "POST", "/api/menu/items", gin.H{
		"category_id": 1,
		"name":        "Ugali",
		"price":       200,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var item models.MenuItem
	assert.NoError(t, db.First(&item, 1).Error)
	assert.Equal(t, 15, item.PreparationTime)
}

func TestCreateItemRejectsNegativePriceAndMissingCategory(t *testing.T) {
	db := setupTestDB(t)
	r := setupMenuRouter(db)
	doJSON(t, r, "POST", "/api/menu/categories", gin.H{"name": "Mains"})

	negative := doJSON(t, r, "POST", "/api/menu/items", gin.H{
		"category_id": 1,
		"name":        "Broken",
		"price":       -5,
	})
	assert.Equal(t, http.StatusBadRequest, negative.Code)

	orphan := doJSON(t, r, "POST", "/api/menu/items", gin.H{
		"category_id": 42,
		"name":        "Orphan",
		"price":       100,
	})
	assert.Equal(t, http.StatusNotFound, orphan.Code)
}

func TestSoftDeletedItemHiddenFromListing(t *testing.T) {
	db := setupTestDB(t)
	r := setupMenuRouter(db)

	doJSON(t, r, "POST", "/api/menu/categories", gin.H{"name": "Drinks"})
	doJSON(t, r, "POST", "/api/menu/items", gin.H{"category_id": 1, "name": "Chai", "price": 80})

	w := doJSON(t, r, "DELETE", "/api/menu/items/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Row survives but the listing excludes it.
	var item models.MenuItem
	assert.NoError(t, db.First(&item, 1).Error)
	assert.False(t, item.IsAvailable)

	list := doJSON(t, r, "GET", "/api/menu/items", nil)
	assert.Len(t, decodeList(t, list), 0)
}

func TestInactiveCategoryHidesItsItems(t *testing.T) {
	db := setupTestDB(t)
	r := setupMenuRouter(db)

	doJSON(t, r, "POST", "/api/menu/categories", gin.H{"name": "Seasonal"})
	doJSON(t, r, "POST", "/api/menu/items", gin.H{"category_id": 1, "name": "Mango Salad", "price": 450})

	w := doJSON(t, r, "DELETE", "/api/menu/categories/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	categories := doJSON(t, r, "GET", "/api/menu/categories", nil)
	assert.Len(t, decodeList(t, categories), 0)

	items := doJSON(t, r, "GET", "/api/menu/items", nil)
	assert.Len(t, decodeList(t, items), 0)

	// The item itself is still available; only the category join hides it.
	var item models.MenuItem
	assert.NoError(t, db.First(&item, 1).Error)
	assert.True(t, item.IsAvailable)
}

func TestItemsOrderedByCategoryDisplayOrder(t *testing.T) {
	db := setupTestDB(t)
	r := setupMenuRouter(db)

	doJSON(t, r, "POST", "/api/menu/categories", gin.H{"name": "Mains", "display_order": 2})
	doJSON(t, r, "POST", "/api/menu/categories", gin.H{"name": "Starters", "display_order": 1})
	doJSON(t, r, "POST", "/api/menu/items", gin.H{"category_id": 1, "name": "Pilau", "price": 500})
	doJSON(t, r, "POST", "/api/menu/items", gin.H{"category_id": 2, "name": "Bhajia", "price": 150})

	w := doJSON(t, r, "GET", "/api/menu/items", nil)
	items := decodeList(t, w)
	assert.Len(t, items, 2)
	assert.Equal(t, "Bhajia", items[0]["name"])
	assert.Equal(t, "Pilau", items[1]["name"])
}
