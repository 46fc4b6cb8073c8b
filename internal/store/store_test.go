package store

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"sakura-backend/internal/models"
)

// Fake auth client with one known account.
type fakeAuth struct {
	loginCalls int
}

func (f *fakeAuth) Login(_ context.Context, email, password string) (*models.User, error) {
	f.loginCalls++
	if email == "staff@sakura.it" && password == "staff" {
		return &models.User{ID: 2, Username: "Staff Member", Email: email, Role: models.RoleStaff}, nil
	}
	return nil, nil
}

func (f *fakeAuth) Register(_ context.Context, username, email, _ string) (*models.User, error) {
	if email == "taken@sakura.it" {
		return nil, nil
	}
	return &models.User{ID: 99, Username: username, Email: email, Role: models.RoleCustomer}, nil
}

// Fake mailer recording every send.
type fakeMailer struct {
	sent []string
}

func (f *fakeMailer) Send(to, _, body string) error {
	f.sent = append(f.sent, to+": "+body)
	return nil
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(&fakeAuth{})
	seq := 0
	s.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	s.now = func() time.Time {
		return time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	}
	return s
}

func sushi() models.Dish {
	return models.Dish{ID: 1, Name: "Sushi Misto", Category: "Sushi", Price: 10.00, Available: true}
}

func ramen() models.Dish {
	return models.Dish{ID: 2, Name: "Ramen Tonkotsu", Category: "Ramen", Price: 12.50, Available: true}
}

func TestLogin(t *testing.T) {
	s := newTestStore(t)

	if s.Login(context.Background(), "staff@sakura.it", "wrong") {
		t.Error("expected login with wrong password to fail")
	}
	if s.CurrentUser() != nil {
		t.Error("failed login must not set the current user")
	}

	if !s.Login(context.Background(), "staff@sakura.it", "staff") {
		t.Fatal("expected login to succeed")
	}
	user := s.CurrentUser()
	if user == nil || user.Username != "Staff Member" {
		t.Fatalf("unexpected current user: %+v", user)
	}

	notifs := s.Notifications()
	if len(notifs) != 1 || notifs[0].Severity != SeveritySuccess {
		t.Fatalf("expected one success notification, got %+v", notifs)
	}
}

func TestLogout(t *testing.T) {
	s := newTestStore(t)
	if !s.Login(context.Background(), "staff@sakura.it", "staff") {
		t.Fatal("login failed")
	}

	s.Logout()
	if s.CurrentUser() != nil {
		t.Error("expected current user to be cleared")
	}
	// login + logout notifications
	if got := len(s.Notifications()); got != 2 {
		t.Errorf("expected 2 notifications, got %d", got)
	}
}

func TestRegister(t *testing.T) {
	s := newTestStore(t)

	if s.Register(context.Background(), "Taken", "taken@sakura.it", "pw") {
		t.Error("expected registration of an existing address to fail")
	}
	if !s.Register(context.Background(), "Mario", "mario@email.com", "pw") {
		t.Fatal("expected registration to succeed")
	}
	if user := s.CurrentUser(); user == nil || user.Role != models.RoleCustomer {
		t.Fatalf("unexpected current user: %+v", user)
	}
}

func TestAsportoCart(t *testing.T) {
	s := newTestStore(t)

	// Removing from an empty cart is a no-op.
	s.RemoveFromAsportoCart(1)
	if got := len(s.AsportoCart()); got != 0 {
		t.Fatalf("expected empty cart, got %d lines", got)
	}

	s.AddToAsportoCart(sushi())
	s.AddToAsportoCart(sushi())
	s.AddToAsportoCart(ramen())

	items := s.AsportoCart()
	if len(items) != 2 {
		t.Fatalf("expected 2 cart lines, got %d", len(items))
	}
	if items[0].Quantity != 2 {
		t.Errorf("expected sushi quantity 2, got %d", items[0].Quantity)
	}
	if total := s.AsportoCartTotal(); total != 32.50 {
		t.Errorf("expected total 32.50, got %.2f", total)
	}

	// Removing the last unit deletes the line.
	s.RemoveFromAsportoCart(ramen().ID)
	for _, item := range s.AsportoCart() {
		if item.Dish.ID == ramen().ID {
			t.Error("expected the ramen line to be removed")
		}
	}

	s.RemoveFromAsportoCart(sushi().ID)
	if items := s.AsportoCart(); len(items) != 1 || items[0].Quantity != 1 {
		t.Errorf("expected one sushi left, got %+v", items)
	}

	s.ClearAsportoCart()
	if got := len(s.AsportoCart()); got != 0 {
		t.Errorf("expected cleared cart, got %d lines", got)
	}
}

func TestAddItemToTableOrder_DoubleAdd(t *testing.T) {
	s := newTestStore(t)
	s.AddTable("T1", "T1")

	s.AddItemToTableOrder("T1", sushi())
	s.AddItemToTableOrder("T1", sushi())

	table, ok := s.TableByID("T1")
	if !ok {
		t.Fatal("table not found")
	}
	if table.Status != TableOccupied {
		t.Errorf("expected status occupied, got %s", table.Status)
	}
	order := table.ActiveOrder
	if order == nil {
		t.Fatal("expected an active order")
	}
	if len(order.Items) != 1 || order.Items[0].Quantity != 2 {
		t.Fatalf("expected one item with quantity 2, got %+v", order.Items)
	}
	if order.Items[0].Status != ItemInPreparation {
		t.Errorf("expected initial item status in-preparation, got %s", order.Items[0].Status)
	}
	if order.Total != 20.00 {
		t.Errorf("expected total 20.00, got %.2f", order.Total)
	}
}

func TestAddItemToTableOrder_TotalMatchesItems(t *testing.T) {
	s := newTestStore(t)
	s.AddTable("T1", "T1")

	// Mixed adds must keep total == sum(price * quantity).
	s.AddItemToTableOrder("T1", sushi())
	s.AddItemToTableOrder("T1", ramen())
	s.AddItemToTableOrder("T1", sushi())
	s.AddItemToTableOrder("T1", ramen())
	s.AddItemToTableOrder("T1", ramen())

	table, _ := s.TableByID("T1")
	var want float64
	for _, item := range table.ActiveOrder.Items {
		want += item.Dish.Price * float64(item.Quantity)
	}
	if table.ActiveOrder.Total != want {
		t.Errorf("total %.2f does not match items sum %.2f", table.ActiveOrder.Total, want)
	}
}

func TestAddItemToTableOrder_UnknownTable(t *testing.T) {
	s := newTestStore(t)
	s.AddTable("T1", "T1")

	s.AddItemToTableOrder("nope", sushi())

	table, _ := s.TableByID("T1")
	if table.ActiveOrder != nil || table.Status != TableFree {
		t.Errorf("unknown table id must be a no-op, got %+v", table)
	}
}

func TestSendTableOrderToKitchen_Empty(t *testing.T) {
	s := newTestStore(t)
	s.AddTable("T1", "T1")

	err := s.SendTableOrderToKitchen("T1")
	if !errors.Is(err, ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}
	table, _ := s.TableByID("T1")
	if table.Status != TableFree {
		t.Errorf("empty send must leave the table status unchanged, got %s", table.Status)
	}
}

func TestSendTableOrderToKitchen_UnknownTable(t *testing.T) {
	s := newTestStore(t)
	s.AddTable("T1", "T1")

	err := s.SendTableOrderToKitchen("nope")
	if !errors.Is(err, ErrTableNotFound) {
		t.Fatalf("expected ErrTableNotFound, got %v", err)
	}
	table, _ := s.TableByID("T1")
	if table.Status != TableFree {
		t.Errorf("unknown table id must leave other tables untouched, got %s", table.Status)
	}
}

func TestSendTableOrderToKitchen(t *testing.T) {
	s := newTestStore(t)
	s.AddTable("T1", "T1")
	s.AddItemToTableOrder("T1", sushi())

	if err := s.SendTableOrderToKitchen("T1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	table, _ := s.TableByID("T1")
	if table.Status != TableOrderSent {
		t.Errorf("expected status order-sent, got %s", table.Status)
	}
}

func TestUpdateDishStatus_ReadyNotifies(t *testing.T) {
	s := newTestStore(t)
	s.AddTable("T1", "T1")
	s.AddItemToTableOrder("T1", sushi())
	before := len(s.Notifications())

	s.UpdateDishStatus("T1", sushi().ID, ItemReady)

	table, _ := s.TableByID("T1")
	if table.ActiveOrder.Items[0].Status != ItemReady {
		t.Errorf("expected item status ready, got %s", table.ActiveOrder.Items[0].Status)
	}
	notifs := s.Notifications()
	if len(notifs) != before+1 || notifs[0].Severity != SeveritySuccess {
		t.Errorf("expected one new success notification, got %+v", notifs)
	}

	// Unknown dish id is a no-op.
	s.UpdateDishStatus("T1", 999, ItemServed)
	if got := len(s.Notifications()); got != before+1 {
		t.Errorf("no-op update must not notify, got %d notifications", got)
	}
}

func TestMarkTableAsPaid(t *testing.T) {
	s := newTestStore(t)
	s.AddTable("T1", "T1")
	s.AddItemToTableOrder("T1", sushi())
	s.AddItemToTableOrder("T1", sushi())

	s.MarkTableAsPaid("T1")

	table, _ := s.TableByID("T1")
	if table.ActiveOrder != nil {
		t.Error("expected the active order to be cleared")
	}
	if table.Status != TableFree {
		t.Errorf("expected status free, got %s", table.Status)
	}
	if len(table.OrderHistory) != 1 {
		t.Fatalf("expected one order in history, got %d", len(table.OrderHistory))
	}
	completed := table.OrderHistory[0]
	if completed.Status != OrderCompleted {
		t.Errorf("expected completed order, got %s", completed.Status)
	}
	if completed.Total != 20.00 {
		t.Errorf("expected total 20.00 in history, got %.2f", completed.Total)
	}

	// Paying again with no active order is a no-op.
	s.MarkTableAsPaid("T1")
	table, _ = s.TableByID("T1")
	if len(table.OrderHistory) != 1 {
		t.Errorf("repeated pay must not duplicate history, got %d", len(table.OrderHistory))
	}
}

func TestUpdateTableStatus(t *testing.T) {
	s := newTestStore(t)
	s.AddTable("T1", "T1")

	s.UpdateTableStatus("T1", TableBillRequested)
	table, _ := s.TableByID("T1")
	if table.Status != TableBillRequested {
		t.Errorf("expected bill-requested, got %s", table.Status)
	}

	s.UpdateTableStatus("nope", TableOccupied)
	table, _ = s.TableByID("T1")
	if table.Status != TableBillRequested {
		t.Error("unknown table id must be a no-op")
	}
}

func TestAddReservation(t *testing.T) {
	s := newTestStore(t)

	res := s.AddReservation(ReservationRequest{
		Name: "Mario Rossi", Email: "mario@email.com", Phone: "3331234567",
		Guests: 2, Date: "2025-06-20", Time: "20:30", Notes: "Window table please",
	})
	if res.ID == "" || res.Status != models.ReservationPending {
		t.Fatalf("unexpected reservation: %+v", res)
	}

	s.AddReservation(ReservationRequest{Name: "Giulia Bianchi", Email: "giulia@email.com", Guests: 4, Date: "2025-06-21", Time: "21:00"})
	list := s.Reservations()
	if len(list) != 2 || list[0].Name != "Giulia Bianchi" {
		t.Errorf("expected newest reservation first, got %+v", list)
	}
}

func TestUpdateReservationStatus_Idempotent(t *testing.T) {
	s := newTestStore(t)
	mailer := &fakeMailer{}
	s.SetMailer(mailer)

	res := s.AddReservation(ReservationRequest{Name: "Mario Rossi", Email: "mario@email.com", Guests: 2, Date: "2025-06-20", Time: "20:30"})

	first, ok := s.UpdateReservationStatus(res.ID, models.ReservationConfirmed)
	if !ok || first.Status != models.ReservationConfirmed {
		t.Fatalf("unexpected result: %+v ok=%v", first, ok)
	}
	notifsAfterFirst := len(s.Notifications())
	if len(mailer.sent) != 1 {
		t.Fatalf("expected one customer mail, got %d", len(mailer.sent))
	}

	// Applying the same transition again changes nothing.
	second, ok := s.UpdateReservationStatus(res.ID, models.ReservationConfirmed)
	if !ok || second.Status != models.ReservationConfirmed {
		t.Fatalf("unexpected result: %+v ok=%v", second, ok)
	}
	if got := len(s.Notifications()); got != notifsAfterFirst {
		t.Errorf("repeated transition must not notify again: %d != %d", got, notifsAfterFirst)
	}
	if len(mailer.sent) != 1 {
		t.Errorf("repeated transition must not mail again, got %d", len(mailer.sent))
	}

	// Unknown id reports not found.
	if _, ok := s.UpdateReservationStatus("nope", models.ReservationCancelled); ok {
		t.Error("expected unknown reservation id to report not found")
	}
}

func TestNotifications(t *testing.T) {
	s := newTestStore(t)

	s.AddNotification("first", SeverityInfo)
	s.AddNotification("second", SeverityError)

	notifs := s.Notifications()
	if len(notifs) != 2 || notifs[0].Message != "second" {
		t.Fatalf("expected newest first, got %+v", notifs)
	}

	s.MarkAsRead(notifs[1].ID)
	notifs = s.Notifications()
	if !notifs[1].Read || notifs[0].Read {
		t.Errorf("expected only the first notification read, got %+v", notifs)
	}

	s.ClearAllNotifications()
	for _, n := range s.Notifications() {
		if !n.Read {
			t.Errorf("expected every notification read, got %+v", n)
		}
	}
	if got := len(s.Notifications()); got != 2 {
		t.Errorf("clear must not delete, got %d", got)
	}
}

// The end-to-end walkthrough: seed T1, order two sushi, send, mark ready, pay.
func TestTableLifecycle(t *testing.T) {
	s := newTestStore(t)
	s.AddTable("T1", "T1")

	s.AddItemToTableOrder("T1", sushi())
	s.AddItemToTableOrder("T1", sushi())
	table, _ := s.TableByID("T1")
	if table.Status != TableOccupied || table.ActiveOrder.Total != 20.00 {
		t.Fatalf("after adds: %+v", table)
	}
	if len(table.ActiveOrder.Items) != 1 || table.ActiveOrder.Items[0].Quantity != 2 {
		t.Fatalf("after adds: %+v", table.ActiveOrder.Items)
	}

	if err := s.SendTableOrderToKitchen("T1"); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	table, _ = s.TableByID("T1")
	if table.Status != TableOrderSent {
		t.Fatalf("after send: %s", table.Status)
	}

	before := len(s.Notifications())
	s.UpdateDishStatus("T1", sushi().ID, ItemReady)
	table, _ = s.TableByID("T1")
	if table.ActiveOrder.Items[0].Status != ItemReady {
		t.Fatalf("after ready: %+v", table.ActiveOrder.Items)
	}
	notifs := s.Notifications()
	if len(notifs) != before+1 || notifs[0].Severity != SeveritySuccess {
		t.Fatalf("expected one new success notification, got %+v", notifs)
	}

	s.MarkTableAsPaid("T1")
	table, _ = s.TableByID("T1")
	if table.Status != TableFree || table.ActiveOrder != nil {
		t.Fatalf("after pay: %+v", table)
	}
	if len(table.OrderHistory) != 1 || table.OrderHistory[0].Total != 20.00 {
		t.Fatalf("after pay history: %+v", table.OrderHistory)
	}
}
