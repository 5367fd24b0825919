package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/mariahavens/restaurant-pos/models"
)

func setupTableRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	ctrl := NewTableController(db)
	r.GET("/api/tables", ctrl.GetAllTables)
	r.POST("/api/tables", ctrl.CreateTable)
	r.PUT("/api/tables/:id/status", ctrl.UpdateTableStatus)
	return r
}

func TestCreateTableValidatesCapacity(t *testing.T) {
	db := setupTestDB(t)
	r := setupTableRouter(db)

	tooBig := doJSON(t, r, "POST", "/api/tables", gin.H{"table_number": "1", "capacity": 25})
	assert.Equal(t, http.StatusBadRequest, tooBig.Code)

	missing := doJSON(t, r, "POST", "/api/tables", gin.H{"capacity": 4})
	assert.Equal(t, http.StatusBadRequest, missing.Code)

	ok := doJSON(t, r, "POST", "/api/tables", gin.H{"table_number": "1", "capacity": 4})
	assert.Equal(t, http.StatusCreated, ok.Code)

	var count int64
	db.Model(&models.Table{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestTableOccupancyScenario(t *testing.T) {
	db := setupTestDB(t)
	r := setupTableRouter(db)

	w := doJSON(t, r, "POST", "/api/tables", gin.H{"table_number": "5", "capacity": 4})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "PUT", "/api/tables/1/status", gin.H{"is_occupied": true})
	assert.Equal(t, http.StatusOK, w.Code)

	list := doJSON(t, r, "GET", "/api/tables", nil)
	tables := decodeList(t, list)
	assert.Len(t, tables, 1)
	assert.Equal(t, "5", tables[0]["table_number"])
	assert.Equal(t, true, tables[0]["is_occupied"])

	// Check-in against the now-occupied table must conflict.
	checkin := gin.New()
	checkin.POST("/api/receptionist/checkin", asStaff(1, models.RoleReceptionist), NewReceptionistController(db).CheckinGuest)
	conflict := doJSON(t, checkin, "POST", "/api/receptionist/checkin", gin.H{
		"guest_name": "Walk In",
		"party_size": 2,
		"table_id":   1,
	})
	assert.Equal(t, http.StatusConflict, conflict.Code)
}

func TestUpdateStatusUnknownTable(t *testing.T) {
	db := setupTestDB(t)
	r := setupTableRouter(db)

	w := doJSON(t, r, "PUT", "/api/tables/99/status", gin.H{"is_occupied": false})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
