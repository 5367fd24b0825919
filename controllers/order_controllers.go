package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mariahavens/restaurant-pos/models"
	"github.com/mariahavens/restaurant-pos/utils"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

var kitchenStatuses = []string{"pending", "preparing", "ready"}

func newOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}

// CreateOrder records a POS checkout: the order row and its price-snapshot
// lines are written in one transaction, and a dine-in table is marked
// occupied. Unit prices come from the catalog, not from the client.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req struct {
		WaiterID uint  `json:"waiter_id" binding:"required"`
		TableID  *uint `json:"table_id"`
		Items    []struct {
			MenuItemID uint   `json:"menu_item_id" binding:"required"`
			Quantity   int    `json:"quantity" binding:"required,min=1"`
			Notes      string `json:"notes"`
		} `json:"items" binding:"required,min=1"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("waiter_id and at least one item are required"))
		return
	}

	var waiter models.Staff
	if err := oc.DB.Where("id = ? AND is_active = ?", req.WaiterID, true).First(&waiter).Error; err != nil {
		utils.RespondError(c, utils.NotFoundError("waiter not found"))
		return
	}

	order := models.Order{
		OrderNumber: newOrderNumber(),
		WaiterID:    req.WaiterID,
		TableID:     req.TableID,
		Status:      "pending",
	}

	err := oc.DB.Transaction(func(tx *gorm.DB) error {
		if req.TableID != nil {
			var table models.Table
			if err := tx.First(&table, *req.TableID).Error; err != nil {
				return utils.NotFoundError("table not found")
			}
			if err := tx.Model(&table).Update("is_occupied", true).Error; err != nil {
				return err
			}
		}

		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		var total float64
		for _, line := range req.Items {
			var item models.MenuItem
			if err := tx.First(&item, line.MenuItemID).Error; err != nil {
				return utils.NotFoundError(fmt.Sprintf("menu item %d not found", line.MenuItemID))
			}
			if !item.IsAvailable {
				return utils.ValidationError(fmt.Sprintf("menu item %q is not available", item.Name))
			}

			orderItem := models.OrderItem{
				OrderID:    order.ID,
				MenuItemID: item.ID,
				Quantity:   line.Quantity,
				Price:      item.Price,
				Notes:      line.Notes,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
			total += float64(line.Quantity) * item.Price
		}

		order.TotalAmount = total
		return tx.Model(&order).Update("total_amount", total).Error
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("order %s created by waiter %d (total=%.2f)",
		order.OrderNumber, order.WaiterID, order.TotalAmount)

	c.JSON(http.StatusCreated, gin.H{
		"id":           order.ID,
		"order_number": order.OrderNumber,
		"total_amount": order.TotalAmount,
		"success":      true,
	})
}

type kitchenOrderItem struct {
	ID                  uint   `json:"id"`
	MenuItemName        string `json:"menu_item_name"`
	Quantity            int    `json:"quantity"`
	SpecialInstructions string `json:"special_instructions,omitempty"`
	PreparationTime     int    `json:"preparation_time"`
}

type kitchenOrder struct {
	ID          uint               `json:"id"`
	OrderNumber string             `json:"order_number"`
	TableNumber string             `json:"table_number,omitempty"`
	Status      string             `json:"status"`
	CreatedAt   time.Time          `json:"created_at"`
	Items       []kitchenOrderItem `json:"items"`
	WaiterName  string             `json:"waiter_name,omitempty"`
	Priority    string             `json:"priority"`
}

// orderPriority ranks a ticket for the kitchen display: anything waiting
// past 20 minutes is high, a single quick item is low.
func orderPriority(o models.Order) string {
	if time.Since(o.CreatedAt) > 20*time.Minute {
		return "high"
	}
	if len(o.OrderItems) == 1 && o.OrderItems[0].MenuItem.PreparationTime <= 10 {
		return "low"
	}
	return "normal"
}

// GetKitchenOrders lists open tickets. The kitchen display polls this on a
// fixed interval.
func (oc *OrderController) GetKitchenOrders(c *gin.Context) {
	var orders []models.Order
	err := oc.DB.Preload("OrderItems").Preload("OrderItems.MenuItem").
		Preload("Table").Preload("Waiter").
		Where("status IN ?", kitchenStatuses).
		Order("created_at").
		Find(&orders).Error
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	out := make([]kitchenOrder, 0, len(orders))
	for _, o := range orders {
		ko := kitchenOrder{
			ID:          o.ID,
			OrderNumber: o.OrderNumber,
			Status:      o.Status,
			CreatedAt:   o.CreatedAt,
			WaiterName:  strings.TrimSpace(o.Waiter.FirstName + " " + o.Waiter.LastName),
			Priority:    orderPriority(o),
		}
		if o.Table != nil {
			ko.TableNumber = o.Table.TableNumber
		}
		for _, it := range o.OrderItems {
			ko.Items = append(ko.Items, kitchenOrderItem{
				ID:                  it.ID,
				MenuItemName:        it.MenuItem.Name,
				Quantity:            it.Quantity,
				SpecialInstructions: it.Notes,
				PreparationTime:     it.MenuItem.PreparationTime,
			})
		}
		out = append(out, ko)
	}

	c.JSON(http.StatusOK, out)
}

// UpdateKitchenOrderStatus moves a ticket along pending → preparing → ready
// → completed. This is the kitchen's status view; the ledger row's lines and
// totals stay immutable.
func (oc *OrderController) UpdateKitchenOrderStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, utils.ValidationError("status is required"))
		return
	}

	switch req.Status {
	case "pending", "preparing", "ready", "completed":
	default:
		utils.RespondError(c, utils.ValidationError("unknown order status"))
		return
	}

	var order models.Order
	if err := oc.DB.First(&order, c.Param("id")).Error; err != nil {
		utils.RespondError(c, utils.NotFoundError("order not found"))
		return
	}

	if err := oc.DB.Model(&order).Update("status", req.Status).Error; err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.InfoLogger.Printf("order %s -> %s", order.OrderNumber, req.Status)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetWaiterDashboard aggregates today's activity for the authenticated
// waiter.
func (oc *OrderController) GetWaiterDashboard(c *gin.Context) {
	staffID := c.GetUint("staff_id")
	today := time.Now().Format("2006-01-02")

	var stats struct {
		TodaySales        float64 `json:"todaySales"`
		OrdersCount       int64   `json:"ordersCount"`
		AverageOrderValue float64 `json:"averageOrderValue"`
		CustomerRating    float64 `json:"customerRating"`
		ActiveOrders      int64   `json:"activeOrders"`
		CompletedOrders   int64   `json:"completedOrders"`
	}

	base := oc.DB.Model(&models.Order{}).
		Where("waiter_id = ? AND DATE(created_at) = ?", staffID, today)

	base.Session(&gorm.Session{}).Count(&stats.OrdersCount)
	base.Session(&gorm.Session{}).Select("COALESCE(SUM(total_amount), 0)").Row().Scan(&stats.TodaySales)
	base.Session(&gorm.Session{}).Where("status IN ?", kitchenStatuses).Count(&stats.ActiveOrders)
	base.Session(&gorm.Session{}).Where("status = ?", "completed").Count(&stats.CompletedOrders)

	if stats.OrdersCount > 0 {
		stats.AverageOrderValue = stats.TodaySales / float64(stats.OrdersCount)
	}

	var perf models.StaffPerformance
	if err := oc.DB.Where("staff_id = ? AND date = ?", staffID, today).First(&perf).Error; err == nil {
		stats.CustomerRating = perf.CustomerRatingAvg
	}

	var recent []models.Order
	oc.DB.Preload("OrderItems").Preload("Table").
		Where("waiter_id = ?", staffID).
		Order("created_at DESC").Limit(10).
		Find(&recent)

	type recentOrder struct {
		ID          uint      `json:"id"`
		OrderNumber string    `json:"order_number"`
		TableNumber string    `json:"table_number,omitempty"`
		Total       float64   `json:"total"`
		Status      string    `json:"status"`
		CreatedAt   time.Time `json:"created_at"`
		ItemsCount  int       `json:"items_count"`
	}

	recentOut := make([]recentOrder, 0, len(recent))
	for _, o := range recent {
		ro := recentOrder{
			ID:          o.ID,
			OrderNumber: o.OrderNumber,
			Total:       o.TotalAmount,
			Status:      o.Status,
			CreatedAt:   o.CreatedAt,
			ItemsCount:  len(o.OrderItems),
		}
		if o.Table != nil {
			ro.TableNumber = o.Table.TableNumber
		}
		recentOut = append(recentOut, ro)
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":        stats,
		"recentOrders": recentOut,
	})
}
