package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mariahavens/restaurant-pos/models"
	"github.com/mariahavens/restaurant-pos/utils"
)

type ReceptionistController struct {
	DB *gorm.DB
}

func NewReceptionistController(db *gorm.DB) *ReceptionistController {
	return &ReceptionistController{DB: db}
}

// GetDashboard returns the front-desk overview: table occupancy counts, the
// walk-in queue and today's reservations.
func (rc *ReceptionistController) GetDashboard(c *gin.Context) {
	today := time.Now().Format("2006-01-02")

	var totalTables, occupiedTables, waiting, todayCheckins int64
	rc.DB.Model(&models.Table{}).Count(&totalTables)
	rc.DB.Model(&models.Table{}).Where("is_occupied = ?", true).Count(&occupiedTables)
	rc.DB.Model(&models.WaitingGuest{}).Where("status = ?", models.WaitingGuestWaiting).Count(&waiting)
	rc.DB.Model(&models.GuestCheckin{}).Where("DATE(checked_in_at) = ?", today).Count(&todayCheckins)

	var avgWait float64
	rc.DB.Model(&models.WaitingGuest{}).
		Where("status = ?", models.WaitingGuestWaiting).
		Select("COALESCE(AVG(estimated_wait_minutes), 0)").
		Row().Scan(&avgWait)

	var waitingGuests []models.WaitingGuest
	rc.DB.Where("status = ?", models.WaitingGuestWaiting).
		Order("arrived_at").
		Find(&waitingGuests)

	var reservations []models.Reservation
	rc.DB.Where("reservation_date = ? AND status = ?", today, models.ReservationConfirmed).
		Order("reservation_time").
		Find(&reservations)

	c.JSON(http.StatusOK, gin.H{
		"stats": gin.H{
			"totalTables":     totalTables,
			"occupiedTables":  occupiedTables,
			"waitingGuests":   waiting,
			"todayCheckIns":   todayCheckins,
			"averageWaitTime": avgWait,
		},
		"waitingGuests": waitingGuests,
		"reservations":  reservations,
	})
}

func (rc *ReceptionistController) CreateReservation(c *gin.Context) {
	var req struct {
		GuestName       string  `json:"guest_name" binding:"required"`
		GuestPhone      *string `json:"guest_phone"`
		GuestEmail      *string `json:"guest_email"`
		PartySize       int     `json:"party_size" binding:"required,min=1"`
		ReservationDate string  `json:"reservation_date" binding:"required"`
		ReservationTime string  `json:"reservation_time" binding:"required"`
		SpecialRequests *string `json:"special_requests"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("guest_name, party_size, reservation_date and reservation_time are required"))
		return
	}
	if _, err := time.Parse("2006-01-02", req.ReservationDate); err != nil {
		utils.RespondError(c, utils.ValidationError("reservation_date must be YYYY-MM-DD"))
		return
	}
	if _, err := time.Parse("15:04", req.ReservationTime); err != nil {
		utils.RespondError(c, utils.ValidationError("reservation_time must be HH:MM"))
		return
	}

	reservation := models.Reservation{
		GuestName:       req.GuestName,
		GuestPhone:      req.GuestPhone,
		GuestEmail:      req.GuestEmail,
		PartySize:       req.PartySize,
		ReservationDate: req.ReservationDate,
		ReservationTime: req.ReservationTime,
		SpecialRequests: req.SpecialRequests,
		Status:          models.ReservationConfirmed,
	}

	if err := rc.DB.Create(&reservation).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": reservation.ID, "success": true})
}

func (rc *ReceptionistController) AddWaitingGuest(c *gin.Context) {
	var req struct {
		GuestName            string  `json:"guest_name" binding:"required"`
		GuestPhone           *string `json:"guest_phone"`
		PartySize            int     `json:"party_size" binding:"required,min=1"`
		EstimatedWaitMinutes int     `json:"estimated_wait_minutes"`
		Notes                *string `json:"notes"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("guest_name and party_size are required"))
		return
	}
	if req.EstimatedWaitMinutes <= 0 {
		req.EstimatedWaitMinutes = 15
	}

	guest := models.WaitingGuest{
		GuestName:            req.GuestName,
		GuestPhone:           req.GuestPhone,
		PartySize:            req.PartySize,
		ArrivedAt:            time.Now(),
		EstimatedWaitMinutes: req.EstimatedWaitMinutes,
		Notes:                req.Notes,
		Status:               models.WaitingGuestWaiting,
	}

	if err := rc.DB.Create(&guest).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": guest.ID, "success": true})
}

func (rc *ReceptionistController) GetAvailableTables(c *gin.Context) {
	var tables []models.Table
	err := rc.DB.Where("is_occupied = ?", false).
		Order("room_name, table_number").
		Find(&tables).Error
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tables)
}

// seatGuestTx performs the seating writes against an already-loaded table:
// occupy it, record the check-in, and transition the originating reservation
// or waiting-list entry. Callers run it inside a transaction so either all
// three writes land or none do.
func seatGuestTx(tx *gorm.DB, table *models.Table, checkin *models.GuestCheckin) error {
	if table.IsOccupied {
		return utils.ConflictError("table is already occupied")
	}

	if err := tx.Model(table).Update("is_occupied", true).Error; err != nil {
		return err
	}

	checkin.TableID = table.ID
	checkin.CheckedInAt = time.Now()
	if err := tx.Create(checkin).Error; err != nil {
		return err
	}

	now := time.Now()
	if checkin.ReservationID != nil {
		var reservation models.Reservation
		if err := tx.First(&reservation, *checkin.ReservationID).Error; err != nil {
			return utils.NotFoundError("reservation not found")
		}
		err := tx.Model(&reservation).Updates(map[string]interface{}{
			"status":    models.ReservationSeated,
			"table_id":  table.ID,
			"seated_at": now,
		}).Error
		if err != nil {
			return err
		}
	}

	if checkin.WaitingGuestID != nil {
		var guest models.WaitingGuest
		if err := tx.First(&guest, *checkin.WaitingGuestID).Error; err != nil {
			return utils.NotFoundError("waiting guest not found")
		}
		err := tx.Model(&guest).Updates(map[string]interface{}{
			"status":    models.WaitingGuestSeated,
			"table_id":  table.ID,
			"seated_at": now,
		}).Error
		if err != nil {
			return err
		}
	}

	return nil
}

// CheckinGuest seats a party at a table, optionally resolving a reservation
// or a waiting-list entry. On success the table is occupied and exactly one
// check-in row exists; any failure rolls the whole thing back.
func (rc *ReceptionistController) CheckinGuest(c *gin.Context) {
	var req struct {
		GuestName      string  `json:"guest_name" binding:"required"`
		PartySize      int     `json:"party_size" binding:"required,min=1"`
		TableID        uint    `json:"table_id" binding:"required"`
		ReservationID  *uint   `json:"reservation_id"`
		WaitingGuestID *uint   `json:"waiting_guest_id"`
		Notes          *string `json:"notes"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("guest_name, party_size and table_id are required"))
		return
	}
	if req.ReservationID != nil && req.WaitingGuestID != nil {
		utils.RespondError(c, utils.ValidationError("a check-in references at most one of reservation_id and waiting_guest_id"))
		return
	}

	checkin := models.GuestCheckin{
		ReservationID:  req.ReservationID,
		WaitingGuestID: req.WaitingGuestID,
		StaffID:        c.GetUint("staff_id"),
		GuestName:      req.GuestName,
		PartySize:      req.PartySize,
		Notes:          req.Notes,
	}

	err := rc.DB.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.First(&table, req.TableID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.NotFoundError("table not found")
			}
			return err
		}
		return seatGuestTx(tx, &table, &checkin)
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("check-in: %s (party of %d) at table %d", checkin.GuestName, checkin.PartySize, checkin.TableID)
	c.JSON(http.StatusCreated, gin.H{"checkin_id": checkin.ID, "success": true})
}

// SeatWaitingGuest is the one-click path from the walk-in queue: it resolves
// the table by its display number and requires the entry to still be
// waiting.
func (rc *ReceptionistController) SeatWaitingGuest(c *gin.Context) {
	var req struct {
		GuestID     uint   `json:"guestId" binding:"required"`
		TableNumber string `json:"tableNumber" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("guestId and tableNumber are required"))
		return
	}

	var checkin models.GuestCheckin

	err := rc.DB.Transaction(func(tx *gorm.DB) error {
		var guest models.WaitingGuest
		err := tx.Where("id = ? AND status = ?", req.GuestID, models.WaitingGuestWaiting).First(&guest).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFoundError("waiting guest not found")
		}
		if err != nil {
			return err
		}

		var table models.Table
		err = tx.Where("table_number = ?", req.TableNumber).First(&table).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFoundError("table not found")
		}
		if err != nil {
			return err
		}

		checkin = models.GuestCheckin{
			WaitingGuestID: &guest.ID,
			StaffID:        c.GetUint("staff_id"),
			GuestName:      guest.GuestName,
			PartySize:      guest.PartySize,
			Notes:          guest.Notes,
		}
		return seatGuestTx(tx, &table, &checkin)
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("seated waiting guest %d at table %s", req.GuestID, req.TableNumber)
	c.JSON(http.StatusOK, gin.H{"checkin_id": checkin.ID, "success": true})
}
