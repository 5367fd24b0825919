package controllers

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mariahavens/restaurant-pos/config"
	"github.com/mariahavens/restaurant-pos/models"
	"github.com/mariahavens/restaurant-pos/utils"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// Login checks email + password against the staff directory and returns a
// signed token plus the staff record. Unknown email and wrong password fail
// identically.
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.ValidationError("email and password are required"))
		return
	}

	var staff models.Staff
	if err := ac.DB.Where("email = ? AND is_active = ?", input.Email, true).First(&staff).Error; err != nil {
		utils.RespondError(c, utils.AuthenticationError())
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, utils.AuthenticationError())
		return
	}

	token, err := utils.GenerateToken(staff.ID, staff.Role, config.JWTExpiry())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("login: %s (role=%s)", input.Email, staff.Role)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user": gin.H{
			"email": input.Email,
			"staff": staff,
		},
		"redirect_to": models.DefaultLandingPage(staff.Role),
	})
}

// Logout revokes the presented token for the remainder of its lifetime.
func (ac *AuthController) Logout(c *gin.Context) {
	if token := c.GetString("token"); token != "" {
		utils.BlacklistToken(token, config.JWTExpiry())
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// VerifyPin confirms a waiter's 4-digit PIN before an order is submitted.
// The PIN is the dedicated verification field; the password hash is never
// consulted here.
func (ac *AuthController) VerifyPin(c *gin.Context) {
	var input struct {
		WaiterID uint   `json:"waiter_id" binding:"required"`
		Pin      string `json:"pin" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.ValidationError("waiter_id and pin are required"))
		return
	}

	var staff models.Staff
	err := ac.DB.Where("id = ? AND is_active = ?", input.WaiterID, true).First(&staff).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, utils.NotFoundError("waiter not found"))
		return
	}
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if staff.Pin == nil || *staff.Pin == "" {
		utils.RespondError(c, utils.ValidationError("no pin on file for this waiter"))
		return
	}

	if subtle.ConstantTimeCompare([]byte(*staff.Pin), []byte(input.Pin)) != 1 {
		utils.RespondError(c, utils.AuthenticationError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
