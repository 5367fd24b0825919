package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mariahavens/restaurant-pos/models"
	"github.com/mariahavens/restaurant-pos/utils"
)

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

func (tc *TableController) GetAllTables(c *gin.Context) {
	var tables []models.Table
	if err := tc.DB.Order("room_name, table_number").Find(&tables).Error; err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tables)
}

func (tc *TableController) CreateTable(c *gin.Context) {
	var req struct {
		TableNumber string  `json:"table_number" binding:"required"`
		RoomName    *string `json:"room_name"`
		Capacity    int     `json:"capacity" binding:"required,min=1,max=20"`
		QRCodeURL   *string `json:"qr_code_url"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("table_number and a capacity between 1 and 20 are required"))
		return
	}

	table := models.Table{
		TableNumber: req.TableNumber,
		RoomName:    req.RoomName,
		Capacity:    req.Capacity,
		QRCodeURL:   req.QRCodeURL,
	}

	if err := tc.DB.Create(&table).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("table created: %s (capacity=%d)", table.TableNumber, table.Capacity)
	c.JSON(http.StatusCreated, gin.H{"id": table.ID, "success": true})
}

// UpdateTableStatus flips the occupancy flag directly. Freeing a table with
// an open order is allowed; keeping those consistent is the caller's job.
func (tc *TableController) UpdateTableStatus(c *gin.Context) {
	var req struct {
		IsOccupied *bool `json:"is_occupied" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("is_occupied is required"))
		return
	}

	var table models.Table
	if err := tc.DB.First(&table, c.Param("id")).Error; err != nil {
		utils.RespondError(c, utils.NotFoundError("table not found"))
		return
	}

	if err := tc.DB.Model(&table).Update("is_occupied", *req.IsOccupied).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("table %s occupancy set to %v", table.TableNumber, *req.IsOccupied)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
