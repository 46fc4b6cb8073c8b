package store

import (
	"time"

	"sakura-backend/internal/models"
)

type TableStatus string

const (
	TableFree          TableStatus = "free"
	TableOccupied      TableStatus = "occupied"
	TableOrderSent     TableStatus = "order-sent"
	TableBillRequested TableStatus = "bill-requested"
)

type OrderStatus string

const (
	OrderActive    OrderStatus = "active"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

type ItemStatus string

const (
	ItemInPreparation ItemStatus = "in-preparation"
	ItemReady         ItemStatus = "ready"
	ItemServed        ItemStatus = "served"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

type OrderItem struct {
	Dish     models.Dish `json:"dish"`
	Quantity int         `json:"quantity"`
	Status   ItemStatus  `json:"status"`
}

type Order struct {
	ID        string      `json:"id"`
	TableID   string      `json:"table_id"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

type Table struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Status       TableStatus `json:"status"`
	ActiveOrder  *Order      `json:"active_order"`
	OrderHistory []Order     `json:"order_history"`
}

// CartItem is a takeaway cart line, held outside any table.
type CartItem struct {
	Dish     models.Dish `json:"dish"`
	Quantity int         `json:"quantity"`
}

type Notification struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	Read      bool      `json:"read"`
	Timestamp time.Time `json:"timestamp"`
}

// ReservationRequest carries the customer-provided fields of a booking.
type ReservationRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Guests int    `json:"guests"`
	Date   string `json:"date"` // YYYY-MM-DD
	Time   string `json:"time"` // HH:MM
	Notes  string `json:"notes"`
}

func cloneOrder(o *Order) Order {
	out := *o
	out.Items = make([]OrderItem, len(o.Items))
	copy(out.Items, o.Items)
	return out
}

func cloneTable(t *Table) Table {
	out := *t
	if t.ActiveOrder != nil {
		o := cloneOrder(t.ActiveOrder)
		out.ActiveOrder = &o
	}
	out.OrderHistory = make([]Order, len(t.OrderHistory))
	for i := range t.OrderHistory {
		out.OrderHistory[i] = cloneOrder(&t.OrderHistory[i])
	}
	return out
}
