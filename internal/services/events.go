package services

// Event types published after a successful write.
const (
	EventOrderPlaced        = "order.placed"
	EventOrderStatusChanged = "order.status_changed"
)

// EventPublisher sends domain events to the broker. Services accept a nil
// publisher and skip publishing.
type EventPublisher interface {
	Publish(eventType string, payload interface{}) error
}

// OrderPlacedEvent is the payload of EventOrderPlaced.
type OrderPlacedEvent struct {
	OrderID      uint        `json:"order_id"`
	CustomerName string      `json:"customer_name"`
	Total        string      `json:"total"`
	Items        []OrderLine `json:"items"`
}

// OrderStatusChangedEvent is the payload of EventOrderStatusChanged.
type OrderStatusChangedEvent struct {
	OrderID        uint   `json:"order_id"`
	PreviousStatus string `json:"previous_status"`
	Status         string `json:"status"`
}
