// Package handler provides the HTTP handlers of the orders feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront_backend/internal/api"
	"storefront_backend/internal/feature/orders/domain/entity"
	"storefront_backend/internal/feature/orders/transport/http/dto"
	"storefront_backend/internal/feature/orders/usecase"
	"storefront_backend/internal/shared/apperr"
)

const (
	msgEmptyOrder    = "Pedido vacío."
	msgInvalidOrder  = "Pedido inválido."
	msgOrderFailed   = "Error al procesar pedido."
	msgOrderCreated  = "Pedido creado"
	msgInvalidUserID = "Usuario inválido."
	msgHistoryFailed = "Error al obtener pedidos."
)

// OrderUsecase defines the order operations used by the handler.
type OrderUsecase interface {
	PlaceOrder(ctx context.Context, userID uint, items []entity.Item) (uint, error)
	History(ctx context.Context, userID uint) ([]entity.Order, error)
}

// OrderHandler handles order placement and history.
type OrderHandler struct {
	orders OrderUsecase
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orders OrderUsecase) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Place handles POST /crear-pedido.
func (h *OrderHandler) Place(c *gin.Context) {
	var req dto.PlaceOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("place order bind failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.MessageResponse{Message: msgEmptyOrder})
		return
	}

	items := make([]entity.Item, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, entity.Item{ProductID: it.ID, Quantity: it.Quantity, Price: it.Price})
	}

	id, err := h.orders.PlaceOrder(c.Request.Context(), req.UserID, items)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmptyOrder):
			c.JSON(http.StatusBadRequest, api.MessageResponse{Message: msgEmptyOrder})
		case errors.Is(err, apperr.ErrValidation):
			slog.Warn("order rejected", "error", err, "user_id", req.UserID, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, api.MessageResponse{Message: msgInvalidOrder})
		default:
			slog.Error("place order failed", "error", err, "user_id", req.UserID, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: msgOrderFailed})
		}
		return
	}

	slog.Info("order placed", "order_id", id, "user_id", req.UserID, "lines", len(items), "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.OrderCreatedRes{Message: msgOrderCreated, OrderID: id})
}

// History handles GET /mis-pedidos/:id_usuario.
func (h *OrderHandler) History(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id_usuario"), 10, 64)
	if err != nil || userID == 0 {
		c.JSON(http.StatusBadRequest, api.MessageResponse{Message: msgInvalidUserID})
		return
	}

	orders, err := h.orders.History(c.Request.Context(), uint(userID))
	if err != nil {
		slog.Error("order history failed", "error", err, "user_id", userID, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, api.MessageResponse{Message: msgHistoryFailed})
		return
	}

	out := make([]dto.OrderRes, 0, len(orders))
	for _, o := range orders {
		lines := make([]dto.OrderLineRes, 0, len(o.Lines))
		for _, l := range o.Lines {
			lines = append(lines, dto.OrderLineRes{
				Quantity:  l.Quantity,
				UnitPrice: l.UnitPrice.InexactFloat64(),
				Name:      l.ProductName,
			})
		}
		out = append(out, dto.OrderRes{
			ID:        o.ID,
			UserID:    o.UserID,
			CreatedAt: o.CreatedAt,
			Total:     o.Total.InexactFloat64(),
			Status:    o.Status,
			Items:     lines,
		})
	}
	c.JSON(http.StatusOK, out)
}
