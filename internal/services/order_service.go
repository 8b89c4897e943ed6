package services

import (
	"errors"
	"time"

	"github.com/bimma2006/dhanukayaff/internal/database"
	"github.com/bimma2006/dhanukayaff/internal/models"

	"go.uber.org/zap"
)

var ErrOrderNotFound = errors.New("order not found")

// notifyNewOrder is swappable so tests can capture the dispatch.
var notifyNewOrder = NotifyNewOrder

// CreateOrderRequest carries the checkout payload. The pack is snapshotted
// into the order so later pack edits never change historical orders.
type CreateOrderRequest struct {
	PlayerID       string
	PlayerName     string
	UserIdentifier string
	Pack           models.PackSnapshot
	PaymentMethod  string
}

// CreateOrder persists a new pending order and kicks off the best-effort
// admin notification. The order id is derived from the creation time in
// milliseconds and bumped until unused, so ids are unique even when two
// checkouts land in the same millisecond.
func CreateOrder(req CreateOrderRequest) (*models.Order, error) {
	var orders []models.Order
	database.DB.Load(database.ResourceOrders, &orders)

	now := time.Now()
	id := now.UnixMilli()
	for orderExists(orders, id) {
		id++
	}

	order := models.Order{
		ID:             id,
		PlayerID:       req.PlayerID,
		PlayerName:     req.PlayerName,
		UserIdentifier: req.UserIdentifier,
		Pack:           req.Pack,
		PaymentMethod:  req.PaymentMethod,
		Status:         models.OrderStatusPending,
		Timestamp:      now,
	}

	// Newest first
	orders = append([]models.Order{order}, orders...)
	if err := database.DB.Save(database.ResourceOrders, orders); err != nil {
		return nil, err
	}

	if req.UserIdentifier != "" {
		LogAccountActivity(req.UserIdentifier, "Order Placed", &models.ActivityDetails{
			Pack:     req.Pack.Diamonds,
			Price:    req.Pack.Price,
			PlayerID: req.PlayerID,
			Method:   req.PaymentMethod,
		})
	}

	// Snapshot everything the alert needs before spawning; the goroutine
	// must not read the store after CreateOrder returns.
	settings, _ := GetSettings()
	go notifyNewOrder(order, settings.GetString("whatsappNumber"))

	zap.L().Info("new order saved", zap.Int64("order_id", order.ID), zap.String("player_id", order.PlayerID))
	return &order, nil
}

// GetOrderStatus returns the current status string for an order.
func GetOrderStatus(id int64) (string, error) {
	var orders []models.Order
	database.DB.Load(database.ResourceOrders, &orders)
	for i := range orders {
		if orders[i].ID == id {
			return orders[i].Status, nil
		}
	}
	return "", ErrOrderNotFound
}

// UpdateOrderStatus overwrites the status field unconditionally. Any status
// string is accepted; the admin panel is what keeps transitions sensible.
func UpdateOrderStatus(id int64, status string) error {
	var orders []models.Order
	database.DB.Load(database.ResourceOrders, &orders)
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			if err := database.DB.Save(database.ResourceOrders, orders); err != nil {
				return err
			}
			zap.L().Info("order status updated", zap.Int64("order_id", id), zap.String("status", status))
			return nil
		}
	}
	return ErrOrderNotFound
}

// DeleteOrder removes the order with the given id. Deleting an unknown id is
// a no-op success.
func DeleteOrder(id int64) error {
	var orders []models.Order
	database.DB.Load(database.ResourceOrders, &orders)
	kept := orders[:0]
	for _, o := range orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	return database.DB.Save(database.ResourceOrders, kept)
}

// DeleteAllOrders clears the whole order collection (admin bulk purge).
func DeleteAllOrders() error {
	return database.DB.Save(database.ResourceOrders, []models.Order{})
}

// ListOrders returns all orders, newest first.
func ListOrders() ([]models.Order, error) {
	orders := []models.Order{}
	database.DB.Load(database.ResourceOrders, &orders)
	return orders, nil
}

func orderExists(orders []models.Order, id int64) bool {
	for i := range orders {
		if orders[i].ID == id {
			return true
		}
	}
	return false
}
