package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mariahavens/restaurant-pos/models"
	"github.com/mariahavens/restaurant-pos/utils"
)

type MenuItemController struct {
	DB *gorm.DB
}

func NewMenuItemController(db *gorm.DB) *MenuItemController {
	return &MenuItemController{DB: db}
}

// GetAllItems lists available items whose category is still active. The join
// filter is what keeps items of a soft-deleted category out of the catalog.
func (mc *MenuItemController) GetAllItems(c *gin.Context) {
	var items []models.MenuItem
	err := mc.DB.Model(&models.MenuItem{}).
		Select("menu_items.*, menu_categories.name AS category_name").
		Joins("INNER JOIN menu_categories ON menu_items.category_id = menu_categories.id").
		Where("menu_items.is_available = ? AND menu_categories.is_active = ?", true, true).
		Order("menu_categories.display_order, menu_items.name").
		Find(&items).Error
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (mc *MenuItemController) CreateItem(c *gin.Context) {
	var req struct {
		CategoryID      uint    `json:"category_id" binding:"required"`
		Name            string  `json:"name" binding:"required"`
		Description     *string `json:"description"`
		Price           float64 `json:"price"`
		ImageURL        *string `json:"image_url"`
		PreparationTime int     `json:"preparation_time"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("category_id and name are required"))
		return
	}
	if req.Price < 0 {
		utils.RespondError(c, utils.ValidationError("price must not be negative"))
		return
	}
	if req.PreparationTime <= 0 {
		req.PreparationTime = 15
	}

	var category models.MenuCategory
	if err := mc.DB.First(&category, req.CategoryID).Error; err != nil {
		utils.RespondError(c, utils.NotFoundError("category not found"))
		return
	}

	item := models.MenuItem{
		CategoryID:      req.CategoryID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		ImageURL:        req.ImageURL,
		PreparationTime: req.PreparationTime,
		IsAvailable:     true,
	}

	if err := mc.DB.Create(&item).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": item.ID, "success": true})
}

func (mc *MenuItemController) UpdateItem(c *gin.Context) {
	var item models.MenuItem
	if err := mc.DB.First(&item, c.Param("id")).Error; err != nil {
		utils.RespondError(c, utils.NotFoundError("menu item not found"))
		return
	}

	var req struct {
		CategoryID      *uint    `json:"category_id"`
		Name            *string  `json:"name"`
		Description     *string  `json:"description"`
		Price           *float64 `json:"price"`
		ImageURL        *string  `json:"image_url"`
		PreparationTime *int     `json:"preparation_time"`
		IsAvailable     *bool    `json:"is_available"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError(err.Error()))
		return
	}

	if req.CategoryID != nil {
		var category models.MenuCategory
		if err := mc.DB.First(&category, *req.CategoryID).Error; err != nil {
			utils.RespondError(c, utils.NotFoundError("category not found"))
			return
		}
		item.CategoryID = *req.CategoryID
	}
	if req.Name != nil {
		if *req.Name == "" {
			utils.RespondError(c, utils.ValidationError("name cannot be empty"))
			return
		}
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.Price != nil {
		if *req.Price < 0 {
			utils.RespondError(c, utils.ValidationError("price must not be negative"))
			return
		}
		item.Price = *req.Price
	}
	if req.ImageURL != nil {
		item.ImageURL = req.ImageURL
	}
	if req.PreparationTime != nil && *req.PreparationTime > 0 {
		item.PreparationTime = *req.PreparationTime
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := mc.DB.Save(&item).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (mc *MenuItemController) DeleteItem(c *gin.Context) {
	var item models.MenuItem
	if err := mc.DB.First(&item, c.Param("id")).Error; err != nil {
		utils.RespondError(c, utils.NotFoundError("menu item not found"))
		return
	}

	if err := mc.DB.Model(&item).Update("is_available", false).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
