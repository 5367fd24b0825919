package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/mariahavens/restaurant-pos/models"
	"github.com/mariahavens/restaurant-pos/utils"
)

type PerformanceController struct {
	DB *gorm.DB
}

func NewPerformanceController(db *gorm.DB) *PerformanceController {
	return &PerformanceController{DB: db}
}

const dateLayout = "2006-01-02"

// weekWindow returns today and the date 6 days back, inclusive bounds for
// the rolling 7-day reports.
func weekWindow() (start, today string) {
	now := time.Now()
	return now.AddDate(0, 0, -6).Format(dateLayout), now.Format(dateLayout)
}

type performanceRow struct {
	StaffID              uint    `json:"staff_id"`
	EmployeeID           string  `json:"employee_id"`
	FirstName            string  `json:"first_name"`
	LastName             string  `json:"last_name"`
	Role                 string  `json:"role"`
	Date                 string  `json:"date"`
	OrdersServed         int     `json:"orders_served"`
	TotalSales           float64 `json:"total_sales"`
	TablesServed         int     `json:"tables_served"`
	ShiftDurationMinutes int     `json:"shift_duration_minutes"`
	CustomerRatingAvg    float64 `json:"customer_rating_avg"`
	TipsEarned           float64 `json:"tips_earned"`

	// Derived; nil when the shift duration is zero so the client never
	// sees a division artifact.
	SalesPerHour  *float64 `json:"sales_per_hour"`
	OrdersPerHour *float64 `json:"orders_per_hour"`
}

func (r *performanceRow) derivePerHour() {
	if r.ShiftDurationMinutes <= 0 {
		return
	}
	sales := r.TotalSales / float64(r.ShiftDurationMinutes) * 60
	orders := float64(r.OrdersServed) / float64(r.ShiftDurationMinutes) * 60
	r.SalesPerHour = &sales
	r.OrdersPerHour = &orders
}

func (pc *PerformanceController) weeklyRows(staffID string) ([]performanceRow, error) {
	start, _ := weekWindow()

	query := pc.DB.Model(&models.StaffPerformance{}).
		Select(`staff_performance.staff_id, staff.employee_id, staff.first_name, staff.last_name, staff.role,
			staff_performance.date, staff_performance.orders_served, staff_performance.total_sales,
			staff_performance.tables_served, staff_performance.shift_duration_minutes,
			staff_performance.customer_rating_avg, staff_performance.tips_earned`).
		Joins("INNER JOIN staff ON staff.id = staff_performance.staff_id").
		Where("staff_performance.date >= ?", start).
		Order("staff_performance.date DESC, staff.last_name, staff.first_name")
	if staffID != "" {
		query = query.Where("staff_performance.staff_id = ?", staffID)
	}

	var rows []performanceRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].derivePerHour()
	}
	return rows, nil
}

// GetStaffPerformance returns the last-7-day rows for all staff.
func (pc *PerformanceController) GetStaffPerformance(c *gin.Context) {
	rows, err := pc.weeklyRows("")
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetStaffPerformanceByID returns the last-7-day rows for one staff member.
func (pc *PerformanceController) GetStaffPerformanceByID(c *gin.Context) {
	var staff models.Staff
	if err := pc.DB.First(&staff, c.Param("id")).Error; err != nil {
		utils.RespondError(c, utils.NotFoundError("staff member not found"))
		return
	}

	rows, err := pc.weeklyRows(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

type dayTotals struct {
	TotalOrders int64   `json:"total_orders"`
	TotalSales  float64 `json:"total_sales"`
	AvgRating   float64 `json:"avg_rating"`
}

func (pc *PerformanceController) totalsForDate(date string) dayTotals {
	var t dayTotals
	pc.DB.Model(&models.StaffPerformance{}).
		Where("date = ?", date).
		Select("COALESCE(SUM(orders_served), 0), COALESCE(SUM(total_sales), 0), COALESCE(AVG(customer_rating_avg), 0)").
		Row().Scan(&t.TotalOrders, &t.TotalSales, &t.AvgRating)
	return t
}

// GetSummary returns today's totals with yesterday's alongside for trend
// deltas, plus the top-5 sales leaderboard for today.
func (pc *PerformanceController) GetSummary(c *gin.Context) {
	today := time.Now().Format(dateLayout)
	yesterday := time.Now().AddDate(0, 0, -1).Format(dateLayout)

	var activeStaff int64
	pc.DB.Model(&models.Staff{}).Where("is_active = ?", true).Count(&activeStaff)

	type leaderboardEntry struct {
		StaffID    uint    `json:"staff_id"`
		FirstName  string  `json:"first_name"`
		LastName   string  `json:"last_name"`
		Role       string  `json:"role"`
		TotalSales float64 `json:"total_sales"`
	}
	var leaderboard []leaderboardEntry
	pc.DB.Model(&models.StaffPerformance{}).
		Select("staff_performance.staff_id, staff.first_name, staff.last_name, staff.role, staff_performance.total_sales").
		Joins("INNER JOIN staff ON staff.id = staff_performance.staff_id").
		Where("staff_performance.date = ?", today).
		Order("staff_performance.total_sales DESC").
		Limit(5).
		Scan(&leaderboard)

	c.JSON(http.StatusOK, gin.H{
		"active_staff": activeStaff,
		"today":        pc.totalsForDate(today),
		"yesterday":    pc.totalsForDate(yesterday),
		"leaderboard":  leaderboard,
	})
}

// GetTrends returns daily totals over the last 7 days.
func (pc *PerformanceController) GetTrends(c *gin.Context) {
	start, _ := weekWindow()

	type dailyTotals struct {
		Date        string  `json:"date"`
		TotalOrders int64   `json:"total_orders"`
		TotalSales  float64 `json:"total_sales"`
		AvgRating   float64 `json:"avg_rating"`
	}
	var days []dailyTotals
	err := pc.DB.Model(&models.StaffPerformance{}).
		Select("date, COALESCE(SUM(orders_served), 0) AS total_orders, COALESCE(SUM(total_sales), 0) AS total_sales, COALESCE(AVG(customer_rating_avg), 0) AS avg_rating").
		Where("date >= ?", start).
		Group("date").
		Order("date").
		Scan(&days).Error
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, days)
}

// GetByRole rolls the last 7 days up per staff role.
func (pc *PerformanceController) GetByRole(c *gin.Context) {
	start, _ := weekWindow()

	type roleTotals struct {
		Role        string  `json:"role"`
		StaffCount  int64   `json:"staff_count"`
		TotalOrders int64   `json:"total_orders"`
		TotalSales  float64 `json:"total_sales"`
		AvgRating   float64 `json:"avg_rating"`
		TotalTips   float64 `json:"total_tips"`
	}
	var roles []roleTotals
	err := pc.DB.Model(&models.StaffPerformance{}).
		Select(`staff.role,
			COUNT(DISTINCT staff.id) AS staff_count,
			COALESCE(SUM(staff_performance.orders_served), 0) AS total_orders,
			COALESCE(SUM(staff_performance.total_sales), 0) AS total_sales,
			COALESCE(AVG(staff_performance.customer_rating_avg), 0) AS avg_rating,
			COALESCE(SUM(staff_performance.tips_earned), 0) AS total_tips`).
		Joins("INNER JOIN staff ON staff.id = staff_performance.staff_id").
		Where("staff_performance.date >= ?", start).
		Group("staff.role").
		Order("staff.role").
		Scan(&roles).Error
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, roles)
}

// Initialize creates a zeroed performance row for today for every active
// staff member who does not already have one. Safe to call repeatedly.
func (pc *PerformanceController) Initialize(c *gin.Context) {
	today := time.Now().Format(dateLayout)

	var staff []models.Staff
	if err := pc.DB.Where("is_active = ?", true).Find(&staff).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	created := 0
	for _, s := range staff {
		var existing models.StaffPerformance
		err := pc.DB.Where("staff_id = ? AND date = ?", s.ID, today).First(&existing).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			utils.RespondError(c, err)
			return
		}

		row := models.StaffPerformance{StaffID: s.ID, Date: today}
		if err := pc.DB.Create(&row).Error; err != nil {
			utils.RespondError(c, err)
			return
		}
		created++
	}

	utils.InfoLogger.Printf("performance rows initialized for %s: %d created", today, created)
	c.JSON(http.StatusOK, gin.H{"success": true, "created": created})
}

// Export streams the last-7-day per-staff rollup as an xlsx workbook.
func (pc *PerformanceController) Export(c *gin.Context) {
	rows, err := pc.weeklyRows("")
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	headers := []string{
		"Date", "Employee ID", "First Name", "Last Name", "Role",
		"Orders Served", "Total Sales", "Tables Served",
		"Shift Minutes", "Rating", "Tips", "Sales/Hour", "Orders/Hour",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, r := range rows {
		values := []interface{}{
			r.Date, r.EmployeeID, r.FirstName, r.LastName, r.Role,
			r.OrdersServed, r.TotalSales, r.TablesServed,
			r.ShiftDurationMinutes, r.CustomerRatingAvg, r.TipsEarned,
		}
		if r.SalesPerHour != nil {
			values = append(values, *r.SalesPerHour)
		} else {
			values = append(values, "")
		}
		if r.OrdersPerHour != nil {
			values = append(values, *r.OrdersPerHour)
		} else {
			values = append(values, "")
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	filename := fmt.Sprintf("staff-performance-%s.xlsx", time.Now().Format(dateLayout))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		utils.ErrorLogger.Printf("xlsx export failed: %v", err)
	}
}
