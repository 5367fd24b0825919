package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/mariahavens/restaurant-pos/models"
)

func setupReceptionistRouter(db *gorm.DB) *gin.Engine {
	r := gin.New()
	r.Use(asStaff(1, models.RoleReceptionist))
	ctrl := NewReceptionistController(db)
	grp := r.Group("/api/receptionist")
	{
		grp.GET("/dashboard", ctrl.GetDashboard)
		grp.POST("/reservations", ctrl.CreateReservation)
		grp.POST("/waiting", ctrl.AddWaitingGuest)
		grp.GET("/tables/available", ctrl.GetAvailableTables)
		grp.POST("/checkin", ctrl.CheckinGuest)
		grp.POST("/seat-waiting-guest", ctrl.SeatWaitingGuest)
	}
	return r
}

func seedTable(t *testing.T, db *gorm.DB, number string, occupied bool) models.Table {
	t.Helper()
	table := models.Table{TableNumber: number, Capacity: 4, IsOccupied: occupied}
	assert.NoError(t, db.Create(&table).Error)
	return table
}

func TestCheckinReservationSeatsGuest(t *testing.T) {
	db := setupTestDB(t)
	r := setupReceptionistRouter(db)

	table := seedTable(t, db, "3", false)
	today := time.Now().Format("2006-01-02")
	w := doJSON(t, r, "POST", "/api/receptionist/reservations", gin.H{
		"guest_name":       "John Doe",
		"party_size":       4,
		"reservation_date": today,
		"reservation_time": "19:00",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "POST", "/api/receptionist/checkin", gin.H{
		"guest_name":     "John Doe",
		"party_size":     4,
		"table_id":       table.ID,
		"reservation_id": 1,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])

	var reservation models.Reservation
	assert.NoError(t, db.First(&reservation, 1).Error)
	assert.Equal(t, models.ReservationSeated, reservation.Status)
	assert.NotNil(t, reservation.TableID)
	assert.Equal(t, table.ID, *reservation.TableID)
	assert.NotNil(t, reservation.SeatedAt)

	db.First(&table, table.ID)
	assert.True(t, table.IsOccupied)

	var checkins int64
	db.Model(&models.GuestCheckin{}).Count(&checkins)
	assert.Equal(t, int64(1), checkins)
}

func TestCheckinOccupiedTableRollsBack(t *testing.T) {
	db := setupTestDB(t)
	r := setupReceptionistRouter(db)

	seedTable(t, db, "1", true)

	w := doJSON(t, r, "POST", "/api/receptionist/checkin", gin.H{
		"guest_name": "Walk In",
		"party_size": 2,
		"table_id":   1,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Nothing from the failed attempt may survive.
	var checkins int64
	db.Model(&models.GuestCheckin{}).Count(&checkins)
	assert.Equal(t, int64(0), checkins)
}

func TestCheckinRejectsDualReference(t *testing.T) {
	db := setupTestDB(t)
	r := setupReceptionistRouter(db)
	seedTable(t, db, "1", false)

	w := doJSON(t, r, "POST", "/api/receptionist/checkin", gin.H{
		"guest_name":       "Confused",
		"party_size":       2,
		"table_id":         1,
		"reservation_id":   1,
		"waiting_guest_id": 1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckinUnknownTable(t *testing.T) {
	db := setupTestDB(t)
	r := setupReceptionistRouter(db)

	w := doJSON(t, r, "POST", "/api/receptionist/checkin", gin.H{
		"guest_name": "Nobody",
		"party_size": 2,
		"table_id":   42,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSeatWaitingGuestScenario(t *testing.T) {
	db := setupTestDB(t)
	r := setupReceptionistRouter(db)

	table := seedTable(t, db, "5", false)

	w := doJSON(t, r, "POST", "/api/receptionist/waiting", gin.H{
		"guest_name": "Jane",
		"party_size": 2,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "POST", "/api/receptionist/seat-waiting-guest", gin.H{
		"guestId":     1,
		"tableNumber": "5",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var guest models.WaitingGuest
	assert.NoError(t, db.First(&guest, 1).Error)
	assert.Equal(t, models.WaitingGuestSeated, guest.Status)
	assert.NotNil(t, guest.TableID)
	assert.Equal(t, table.ID, *guest.TableID)

	db.First(&table, table.ID)
	assert.True(t, table.IsOccupied)

	var checkin models.GuestCheckin
	assert.NoError(t, db.First(&checkin).Error)
	assert.NotNil(t, checkin.WaitingGuestID)
	assert.Equal(t, guest.ID, *checkin.WaitingGuestID)
	assert.Equal(t, "Jane", checkin.GuestName)

	// Already seated, a second attempt must 404 on the guest lookup.
	w = doJSON(t, r, "POST", "/api/receptionist/seat-waiting-guest", gin.H{
		"guestId":     1,
		"tableNumber": "5",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWaitingGuestDefaultEstimate(t *testing.T) {
	db := setupTestDB(t)
	r := setupReceptionistRouter(db)

	w := doJSON(t, r, "POST", "/api/receptionist/waiting", gin.H{
		"guest_name": "Default Wait",
		"party_size": 3,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var guest models.WaitingGuest
	assert.NoError(t, db.First(&guest).Error)
	assert.Equal(t, 15, guest.EstimatedWaitMinutes)
}

func TestAvailableTablesExcludesOccupied(t *testing.T) {
	db := setupTestDB(t)
	r := setupReceptionistRouter(db)

	seedTable(t, db, "1", true)
	seedTable(t, db, "2", false)

	w := doJSON(t, r, "GET", "/api/receptionist/tables/available", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	tables := decodeList(t, w)
	assert.Len(t, tables, 1)
	assert.Equal(t, "2", tables[0]["table_number"])
}

func TestReceptionistDashboardCounts(t *testing.T) {
	db := setupTestDB(t)
	r := setupReceptionistRouter(db)

	seedTable(t, db, "1", true)
	seedTable(t, db, "2", false)
	doJSON(t, r, "POST", "/api/receptionist/waiting", gin.H{"guest_name": "Q1", "party_size": 2})

	today := time.Now().Format("2006-01-02")
	doJSON(t, r, "POST", "/api/receptionist/reservations", gin.H{
		"guest_name":       "Tonight",
		"party_size":       2,
		"reservation_date": today,
		"reservation_time": "20:30",
	})

	w := doJSON(t, r, "GET", "/api/receptionist/dashboard", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)

	stats := body["stats"].(map[string]interface{})
	assert.EqualValues(t, 2, stats["totalTables"])
	assert.EqualValues(t, 1, stats["occupiedTables"])
	assert.EqualValues(t, 1, stats["waitingGuests"])

	assert.Len(t, body["waitingGuests"], 1)
	assert.Len(t, body["reservations"], 1)
}

func TestReservationDateValidation(t *testing.T) {
	db := setupTestDB(t)
	r := setupReceptionistRouter(db)

	w := doJSON(t, r, "POST", "/api/receptionist/reservations", gin.H{
		"guest_name":       "Bad Date",
		"party_size":       2,
		"reservation_date": "01/02/2026",
		"reservation_time": "19:00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "POST", "/api/receptionist/reservations", gin.H{
		"guest_name":       "Bad Time",
		"party_size":       2,
		"reservation_date": "2026-02-01",
		"reservation_time": "7pm",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
