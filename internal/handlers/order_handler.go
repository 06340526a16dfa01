package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"kasir/internal/models"
	"kasir/internal/services"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: newValidator(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleListOrders)
	orderRoutes.Post("/", h.HandlePlaceOrder)
	// Body-only form used by the order management screen.
	orderRoutes.Post("/status", h.HandleUpdateStatusByBody)
	orderRoutes.Get("/:id", h.HandleGetOrder)
	orderRoutes.Post("/:id/status", h.HandleUpdateStatus)
	orderRoutes.Patch("/:id/status", h.HandleUpdateStatus)
}

// PlaceOrderRequest is the register's checkout payload. Total and unit
// prices are taken as sent.
type PlaceOrderRequest struct {
	CustomerName string             `json:"customer_name" validate:"required"`
	Total        *decimal.Decimal   `json:"total" validate:"required"`
	Details      []OrderLineRequest `json:"details" validate:"required,min=1,dive"`
}

// OrderLineRequest is one line of PlaceOrderRequest.
type OrderLineRequest struct {
	ProductID uint             `json:"product_id" validate:"required"`
	Quantity  int              `json:"quantity" validate:"required,gt=0"`
	UnitPrice *decimal.Decimal `json:"unit_price" validate:"required"`
}

// UpdateStatusRequest changes an order's status. OrderID is optional when
// the order is addressed by path.
type UpdateStatusRequest struct {
	OrderID *uint  `json:"order_id"`
	Status  string `json:"status" validate:"required"`
}

// HandlePlaceOrder records a sale and takes its items out of stock.
func (h *OrderHandler) HandlePlaceOrder(c *fiber.Ctx) error {
	var req PlaceOrderRequest
	if reqErr := bindRequest(c, h.validate, &req); reqErr != nil {
		return reqErr.send(c)
	}

	items := make([]services.OrderLine, 0, len(req.Details))
	for _, d := range req.Details {
		items = append(items, services.OrderLine{
			ProductID: d.ProductID,
			Quantity:  d.Quantity,
			UnitPrice: *d.UnitPrice,
		})
	}

	orderID, err := h.service.PlaceOrder(c.UserContext(), req.CustomerName, *req.Total, items)
	if err != nil {
		return respondError(c, "place order", err)
	}

	return c.JSON(fiber.Map{
		"status":   "success",
		"order_id": orderID,
		"message":  fmt.Sprintf("Order #%d placed successfully.", orderID),
	})
}

// HandleUpdateStatus updates the status of the order named in the path.
func (h *OrderHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid order ID")
	}

	var req UpdateStatusRequest
	if reqErr := bindRequest(c, h.validate, &req); reqErr != nil {
		return reqErr.send(c)
	}
	if req.OrderID != nil && *req.OrderID != id {
		return errorJSON(c, fiber.StatusBadRequest, "Order ID in body does not match the path")
	}
	return h.updateStatus(c, id, req.Status)
}

// HandleUpdateStatusByBody updates the status of the order named in the body.
func (h *OrderHandler) HandleUpdateStatusByBody(c *fiber.Ctx) error {
	var req UpdateStatusRequest
	if reqErr := bindRequest(c, h.validate, &req); reqErr != nil {
		return reqErr.send(c)
	}
	if req.OrderID == nil || *req.OrderID == 0 {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid update data submitted.")
	}
	return h.updateStatus(c, *req.OrderID, req.Status)
}

func (h *OrderHandler) updateStatus(c *fiber.Ctx, id uint, status string) error {
	changed, err := h.service.UpdateStatus(c.UserContext(), id, models.OrderStatus(status))
	if err != nil {
		return respondError(c, "update order status", err)
	}

	message := fmt.Sprintf("Order %d updated to %s.", id, status)
	if !changed {
		message = fmt.Sprintf("Order %d status was already %s.", id, status)
	}
	return success(c, message, nil)
}

// HandleListOrders lists the most recent orders.
func (h *OrderHandler) HandleListOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListRecentOrders(c.UserContext())
	if err != nil {
		return respondError(c, "retrieve orders", err)
	}

	message := "Orders retrieved successfully."
	if len(orders) == 0 {
		message = "No orders found."
	}
	return c.JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"orders":  orders,
	})
}

// HandleGetOrder retrieves a single order with its line items.
func (h *OrderHandler) HandleGetOrder(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return errorJSON(c, fiber.StatusBadRequest, "Invalid order ID")
	}

	order, err := h.service.GetOrder(c.UserContext(), id)
	if err != nil {
		return respondError(c, "retrieve order", err)
	}
	return success(c, "Order retrieved successfully.", order)
}
