// Package store holds the live operational state of the restaurant: tables
// with their active orders and history, the takeaway cart, the notification
// feed and the reservation book. One Store instance is created at startup and
// passed to every consumer; all mutations run under a single mutex, so each
// action is one atomic state transition.
package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"sakura-backend/internal/models"

	"github.com/google/uuid"
)

var (
	// ErrEmptyOrder is returned when an order with no items is sent to the kitchen.
	ErrEmptyOrder = errors.New("cannot send an empty order")
	// ErrTableNotFound is returned when an operation names an unknown table.
	ErrTableNotFound = errors.New("table not found")
)

// AuthClient resolves credentials to a user. A nil user with a nil error means
// the credentials were rejected.
type AuthClient interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, username, email, password string) (*models.User, error)
}

// Mailer delivers customer-facing messages. Send failures are logged and never
// propagate into store state.
type Mailer interface {
	Send(to, subject, body string) error
}

type Store struct {
	mu     sync.Mutex
	auth   AuthClient
	mailer Mailer

	now   func() time.Time
	newID func() string

	user          *models.User
	tables        []*Table
	reservations  []*models.Reservation
	notifications []*Notification
	notifSeq      int64
	cart          []CartItem
}

func New(auth AuthClient) *Store {
	return &Store{
		auth:  auth,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// SetMailer wires the customer-message sender. Optional; without it status
// changes only produce internal notifications.
func (s *Store) SetMailer(m Mailer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mailer = m
}

// --- Auth ---

func (s *Store) Login(ctx context.Context, email, password string) bool {
	if s.auth == nil {
		return false
	}
	user, err := s.auth.Login(ctx, email, password)
	if err != nil || user == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.pushNotification(fmt.Sprintf("User %s logged in.", user.Username), SeveritySuccess)
	return true
}

func (s *Store) Register(ctx context.Context, username, email, password string) bool {
	if s.auth == nil {
		return false
	}
	user, err := s.auth.Register(ctx, username, email, password)
	if err != nil || user == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
	s.pushNotification(fmt.Sprintf("New user registered: %s", user.Username), SeveritySuccess)
	return true
}

func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user != nil {
		s.pushNotification(fmt.Sprintf("User %s logged out.", s.user.Username), SeverityInfo)
	}
	s.user = nil
}

func (s *Store) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// --- Takeaway (asporto) cart ---

func (s *Store) AddToAsportoCart(dish models.Dish) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].Dish.ID == dish.ID {
			s.cart[i].Quantity++
			return
		}
	}
	s.cart = append(s.cart, CartItem{Dish: dish, Quantity: 1})
}

// RemoveFromAsportoCart decrements the line by one unit; the last unit deletes
// the line. Unknown dish ids are a no-op.
func (s *Store) RemoveFromAsportoCart(dishID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].Dish.ID == dishID {
			if s.cart[i].Quantity > 1 {
				s.cart[i].Quantity--
			} else {
				s.cart = append(s.cart[:i], s.cart[i+1:]...)
			}
			return
		}
	}
}

func (s *Store) ClearAsportoCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
}

func (s *Store) AsportoCart() []CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

func (s *Store) AsportoCartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total float64
	for _, item := range s.cart {
		total += item.Dish.Price * float64(item.Quantity)
	}
	return total
}

// --- Tables and orders ---

// AddTable registers a dine-in table. Used at startup and by tests.
func (s *Store) AddTable(id, name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables = append(s.tables, &Table{ID: id, Name: name, Status: TableFree})
}

func (s *Store) Tables() []Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Table, len(s.tables))
	for i, t := range s.tables {
		out[i] = cloneTable(t)
	}
	return out
}

func (s *Store) TableByID(tableID string) (Table, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t := s.findTable(tableID); t != nil {
		return cloneTable(t), true
	}
	return Table{}, false
}

func (s *Store) UpdateTableStatus(tableID string, status TableStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	table := s.findTable(tableID)
	if table == nil {
		return
	}
	table.Status = status
	s.pushNotification(fmt.Sprintf("Table %s status updated to %s.", table.Name, status), SeverityInfo)
}

// AddItemToTableOrder appends the dish to the table's active order, creating
// the order and marking the table occupied when needed. The total accumulates
// by exactly one unit price per call; every other mutation path leaves items
// and total untouched together, which keeps total == sum(price*qty).
func (s *Store) AddItemToTableOrder(tableID string, dish models.Dish) {
	s.mu.Lock()
	defer s.mu.Unlock()
	table := s.findTable(tableID)
	if table == nil {
		return
	}
	if table.ActiveOrder == nil {
		table.ActiveOrder = &Order{
			ID:        s.newID(),
			TableID:   tableID,
			Status:    OrderActive,
			CreatedAt: s.now(),
			UpdatedAt: s.now(),
		}
		table.Status = TableOccupied
	}
	order := table.ActiveOrder
	found := false
	for i := range order.Items {
		if order.Items[i].Dish.ID == dish.ID {
			order.Items[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		order.Items = append(order.Items, OrderItem{Dish: dish, Quantity: 1, Status: ItemInPreparation})
	}
	order.Total += dish.Price
	order.UpdatedAt = s.now()
}

// SendTableOrderToKitchen marks the table's order as sent. An unknown table is
// reported as ErrTableNotFound; an empty or missing order as ErrEmptyOrder.
// Either way the state is left untouched.
func (s *Store) SendTableOrderToKitchen(tableID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	table := s.findTable(tableID)
	if table == nil {
		return ErrTableNotFound
	}
	if table.ActiveOrder == nil || len(table.ActiveOrder.Items) == 0 {
		return ErrEmptyOrder
	}
	table.Status = TableOrderSent
	s.pushNotification(fmt.Sprintf("New order from %s sent to kitchen.", table.Name), SeverityInfo)
	return nil
}

func (s *Store) UpdateDishStatus(tableID string, dishID uint, status ItemStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	table := s.findTable(tableID)
	if table == nil || table.ActiveOrder == nil {
		return
	}
	for i := range table.ActiveOrder.Items {
		item := &table.ActiveOrder.Items[i]
		if item.Dish.ID == dishID {
			item.Status = status
			if status == ItemReady {
				s.pushNotification(fmt.Sprintf("%s for table %s is ready.", item.Dish.Name, table.Name), SeveritySuccess)
			}
			return
		}
	}
}

// MarkTableAsPaid closes out the active order: it is snapshotted as completed,
// appended to the table's history and detached, and the table goes back to free.
func (s *Store) MarkTableAsPaid(tableID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	table := s.findTable(tableID)
	if table == nil || table.ActiveOrder == nil {
		return
	}
	completed := cloneOrder(table.ActiveOrder)
	completed.Status = OrderCompleted
	completed.UpdatedAt = s.now()
	table.OrderHistory = append(table.OrderHistory, completed)
	table.ActiveOrder = nil
	table.Status = TableFree
	s.pushNotification(fmt.Sprintf("Payment for %s completed. Total: €%.2f", table.Name, completed.Total), SeveritySuccess)
}

// --- Reservations ---

func (s *Store) AddReservation(req ReservationRequest) models.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := models.Reservation{
		ID:        s.newID(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Guests:    req.Guests,
		Date:      req.Date,
		Time:      req.Time,
		Notes:     req.Notes,
		Status:    models.ReservationPending,
		CreatedAt: s.now(),
	}
	s.reservations = append([]*models.Reservation{&res}, s.reservations...)
	s.pushNotification(fmt.Sprintf("New reservation from %s for %d guests.", req.Name, req.Guests), SeverityInfo)
	return res
}

// LoadReservations replaces the reservation book, newest first. Used at
// startup to restore the archive from the database.
func (s *Store) LoadReservations(list []models.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations = make([]*models.Reservation, len(list))
	for i := range list {
		r := list[i]
		s.reservations[i] = &r
	}
}

// UpdateReservationStatus sets the status in place. Setting the status a
// reservation already has is a no-op, so applying the same transition twice
// leaves the same final state as once. Real transitions emit an internal
// notification and, when a mailer is wired, a customer-facing message.
func (s *Store) UpdateReservationStatus(id string, status models.ReservationStatus) (models.Reservation, bool) {
	s.mu.Lock()
	var out models.Reservation
	var found, changed bool
	var to, body string
	for _, r := range s.reservations {
		if r.ID == id {
			found = true
			if r.Status != status {
				r.Status = status
				changed = true
				s.pushNotification(fmt.Sprintf("Reservation by %s (%s) %s.", r.Name, r.ID, status), SeveritySuccess)
				to = r.Email
				body = fmt.Sprintf("Your reservation for %s at %s has been %s.", r.Date, r.Time, status)
			}
			out = *r
			break
		}
	}
	mailer := s.mailer
	s.mu.Unlock()

	if changed && mailer != nil {
		if err := mailer.Send(to, "Your reservation at Sakura", body); err != nil {
			log.Printf("reservation mail to %s failed: %v", to, err)
		}
	}
	return out, found
}

func (s *Store) Reservations() []models.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Reservation, len(s.reservations))
	for i, r := range s.reservations {
		out[i] = *r
	}
	return out
}

// --- Notifications ---

func (s *Store) AddNotification(message string, severity Severity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pushNotification(message, severity)
}

// pushNotification prepends to the feed. Caller holds the lock.
func (s *Store) pushNotification(message string, severity Severity) {
	s.notifSeq++
	n := &Notification{
		ID:        s.notifSeq,
		Message:   message,
		Severity:  severity,
		Timestamp: s.now(),
	}
	s.notifications = append([]*Notification{n}, s.notifications...)
}

func (s *Store) Notifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Notification, len(s.notifications))
	for i, n := range s.notifications {
		out[i] = *n
	}
	return out
}

func (s *Store) MarkAsRead(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.notifications {
		if n.ID == id {
			n.Read = true
			return
		}
	}
}

// ClearAllNotifications marks every notification read; the feed is never
// deleted.
func (s *Store) ClearAllNotifications() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.notifications {
		n.Read = true
	}
}

func (s *Store) findTable(tableID string) *Table {
	for _, t := range s.tables {
		if t.ID == tableID {
			return t
		}
	}
	return nil
}
