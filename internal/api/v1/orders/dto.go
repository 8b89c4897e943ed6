package orders

import "github.com/bimma2006/dhanukayaff/internal/models"

// CreateOrderInput is the checkout payload the storefront posts.
type CreateOrderInput struct {
	PlayerID       string              `json:"playerId" binding:"required"`
	PlayerName     string              `json:"playerName"`
	UserIdentifier string              `json:"userIdentifier"`
	Pack           models.PackSnapshot `json:"pack" binding:"required"`
	PaymentMethod  string              `json:"paymentMethod"`
}

// UpdateStatusInput targets an order by id and overwrites its status.
type UpdateStatusInput struct {
	ID     int64  `json:"id" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// CreateOrderResponse mirrors the reference wire format: the persisted order
// plus the whatsappAlert flag the confirmation view reads.
type CreateOrderResponse struct {
	Success       bool         `json:"success"`
	Order         models.Order `json:"order"`
	WhatsappAlert bool         `json:"whatsappAlert"`
}

// StatusResponse is what the storefront polls every five seconds.
type StatusResponse struct {
	Status string `json:"status"`
}
