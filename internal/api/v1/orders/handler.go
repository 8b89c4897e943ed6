package orders

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/bimma2006/dhanukayaff/internal/services"
	"github.com/bimma2006/dhanukayaff/internal/utils"

	"github.com/gin-gonic/gin"
)

// ListOrders godoc
// @Summary List all orders
// @Description Returns the full order collection, newest first
// @Tags orders
// @Produce json
// @Success 200 {array} models.Order
// @Router /orders [get]
func ListOrders(c *gin.Context) {
	orders, err := services.ListOrders()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to load orders"))
		return
	}
	c.JSON(http.StatusOK, orders)
}

// CreateOrder godoc
// @Summary Place a new order
// @Description Persists a pending order and fires the best-effort admin notification
// @Tags orders
// @Accept json
// @Produce json
// @Param input body CreateOrderInput true "Checkout payload"
// @Success 200 {object} CreateOrderResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /orders [post]
func CreateOrder(c *gin.Context) {
	var input CreateOrderInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	order, err := services.CreateOrder(services.CreateOrderRequest{
		PlayerID:       input.PlayerID,
		PlayerName:     input.PlayerName,
		UserIdentifier: input.UserIdentifier,
		Pack:           input.Pack,
		PaymentMethod:  input.PaymentMethod,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to save order"))
		return
	}

	c.JSON(http.StatusOK, CreateOrderResponse{Success: true, Order: *order, WhatsappAlert: true})
}

// GetOrderStatus godoc
// @Summary Get the status of one order
// @Description Polled by the storefront until the order completes
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} StatusResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /orders/{id}/status [get]
func GetOrderStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse("Order not found"))
		return
	}

	status, err := services.GetOrderStatus(id)
	if err != nil {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse("Order not found"))
		return
	}
	c.JSON(http.StatusOK, StatusResponse{Status: status})
}

// UpdateOrderStatus godoc
// @Summary Overwrite an order's status
// @Tags orders
// @Accept json
// @Produce json
// @Param input body UpdateStatusInput true "Order id and new status"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /orders/update [post]
func UpdateOrderStatus(c *gin.Context) {
	var input UpdateStatusInput
	if !utils.BindAndValidate(c, &input) {
		return
	}

	if err := services.UpdateOrderStatus(input.ID, input.Status); err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Order not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to update order"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse())
}

// DeleteOrder godoc
// @Summary Delete one order
// @Description Idempotent; deleting an unknown id still succeeds
// @Tags orders
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} utils.SuccessResponse
// @Router /orders/{id} [delete]
func DeleteOrder(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	if err := services.DeleteOrder(id); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to delete order"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse())
}

// DeleteAllOrders godoc
// @Summary Purge the order collection
// @Tags orders
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /orders [delete]
func DeleteAllOrders(c *gin.Context) {
	if err := services.DeleteAllOrders(); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to delete orders"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse())
}
