package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mariahavens/restaurant-pos/models"
	"github.com/mariahavens/restaurant-pos/utils"
)

type StaffController struct {
	DB *gorm.DB
}

func NewStaffController(db *gorm.DB) *StaffController {
	return &StaffController{DB: db}
}

func validPin(pin string) bool {
	if len(pin) != 4 {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// GetAllStaff lists active staff ordered by name. The POS passes ?role=waiter
// to populate its waiter picker.
func (sc *StaffController) GetAllStaff(c *gin.Context) {
	query := sc.DB.Where("is_active = ?", true).Order("last_name, first_name")
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var staff []models.Staff
	if err := query.Find(&staff).Error; err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, staff)
}

// CreateStaff adds an employee. The plaintext password is required and is
// hashed before it ever touches the database. A zeroed performance row for
// today is created alongside so the reporting queries always have a base row.
func (sc *StaffController) CreateStaff(c *gin.Context) {
	var req struct {
		EmployeeID string  `json:"employee_id" binding:"required"`
		FirstName  string  `json:"first_name" binding:"required"`
		LastName   string  `json:"last_name" binding:"required"`
		Email      *string `json:"email"`
		Phone      *string `json:"phone"`
		Role       string  `json:"role" binding:"required"`
		Pin        *string `json:"pin"`
		Password   string  `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError(err.Error()))
		return
	}
	if req.Password == "" {
		utils.RespondError(c, utils.ValidationError("password is required"))
		return
	}
	if !models.IsValidRole(req.Role) {
		utils.RespondError(c, utils.ValidationError("unknown role"))
		return
	}
	if req.Pin != nil && *req.Pin != "" && !validPin(*req.Pin) {
		utils.RespondError(c, utils.ValidationError("pin must be 4 digits"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	staff := models.Staff{
		EmployeeID: req.EmployeeID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Role:       req.Role,
		Pin:        req.Pin,
		Password:   string(hashed),
		IsActive:   true,
	}

	err = sc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&staff).Error; err != nil {
			return err
		}
		perf := models.StaffPerformance{
			StaffID: staff.ID,
			Date:    time.Now().Format("2006-01-02"),
		}
		return tx.Create(&perf).Error
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("staff created: %s %s (%s, role=%s)",
		staff.FirstName, staff.LastName, staff.EmployeeID, staff.Role)

	c.JSON(http.StatusCreated, gin.H{"id": staff.ID, "success": true})
}

// UpdateStaff edits contact fields, role, PIN and active flag. A new password
// is re-hashed when supplied and left untouched otherwise.
func (sc *StaffController) UpdateStaff(c *gin.Context) {
	var staff models.Staff
	if err := sc.DB.First(&staff, c.Param("id")).Error; err != nil {
		utils.RespondError(c, utils.NotFoundError("staff member not found"))
		return
	}

	var req struct {
		EmployeeID *string `json:"employee_id"`
		FirstName  *string `json:"first_name"`
		LastName   *string `json:"last_name"`
		Email      *string `json:"email"`
		Phone      *string `json:"phone"`
		Role       *string `json:"role"`
		Pin        *string `json:"pin"`
		IsActive   *bool   `json:"is_active"`
		Password   *string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError(err.Error()))
		return
	}

	if req.Role != nil && !models.IsValidRole(*req.Role) {
		utils.RespondError(c, utils.ValidationError("unknown role"))
		return
	}
	if req.Pin != nil && *req.Pin != "" && !validPin(*req.Pin) {
		utils.RespondError(c, utils.ValidationError("pin must be 4 digits"))
		return
	}

	if req.EmployeeID != nil {
		staff.EmployeeID = *req.EmployeeID
	}
	if req.FirstName != nil {
		staff.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		staff.LastName = *req.LastName
	}
	if req.Email != nil {
		staff.Email = req.Email
	}
	if req.Phone != nil {
		staff.Phone = req.Phone
	}
	if req.Role != nil {
		staff.Role = *req.Role
	}
	if req.Pin != nil {
		staff.Pin = req.Pin
	}
	if req.IsActive != nil {
		staff.IsActive = *req.IsActive
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		staff.Password = string(hashed)
	}

	if err := sc.DB.Save(&staff).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteStaff is a soft delete: the row stays for referential history in
// orders and performance data.
func (sc *StaffController) DeleteStaff(c *gin.Context) {
	var staff models.Staff
	if err := sc.DB.First(&staff, c.Param("id")).Error; err != nil {
		utils.RespondError(c, utils.NotFoundError("staff member not found"))
		return
	}

	if err := sc.DB.Model(&staff).Update("is_active", false).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("staff deactivated: %s (%d)", staff.EmployeeID, staff.ID)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
