package store

import (
	"testing"
	"time"
)

// Builds a store with history on two tables across two days.
func seededAnalyticsStore(t *testing.T) *Store {
	t.Helper()
	s := newTestStore(t)
	s.AddTable("t1", "Tavolo 1")
	s.AddTable("t2", "Tavolo 2")

	day1 := time.Date(2025, 6, 14, 19, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// Yesterday: one sushi order on t1.
	s.now = func() time.Time { return day1 }
	s.AddItemToTableOrder("t1", sushi())
	s.AddItemToTableOrder("t1", sushi())
	s.MarkTableAsPaid("t1")

	// Today: ramen on t1, mixed on t2.
	s.now = func() time.Time { return day2 }
	s.AddItemToTableOrder("t1", ramen())
	s.MarkTableAsPaid("t1")
	s.AddItemToTableOrder("t2", sushi())
	s.AddItemToTableOrder("t2", ramen())
	s.AddItemToTableOrder("t2", ramen())
	s.MarkTableAsPaid("t2")

	return s
}

func TestRevenueByDay(t *testing.T) {
	s := seededAnalyticsStore(t)

	stats := s.RevenueByDay()
	if len(stats) != 2 {
		t.Fatalf("expected 2 days, got %+v", stats)
	}
	if stats[0].Date != "2025-06-14" || stats[0].Orders != 1 || stats[0].Revenue != 20.00 {
		t.Errorf("day 1: %+v", stats[0])
	}
	if stats[1].Date != "2025-06-15" || stats[1].Orders != 2 || stats[1].Revenue != 47.50 {
		t.Errorf("day 2: %+v", stats[1])
	}
}

func TestTopDishes(t *testing.T) {
	s := seededAnalyticsStore(t)

	top := s.TopDishes(5)
	if len(top) != 2 {
		t.Fatalf("expected 2 dishes, got %+v", top)
	}
	// 3 sushi vs 3 ramen: tie broken by name.
	if top[0].Name != "Ramen Tonkotsu" || top[0].Quantity != 3 {
		t.Errorf("top dish: %+v", top[0])
	}
	if top[1].Name != "Sushi Misto" || top[1].Quantity != 3 {
		t.Errorf("second dish: %+v", top[1])
	}

	if got := s.TopDishes(1); len(got) != 1 {
		t.Errorf("expected limit to apply, got %+v", got)
	}
}

func TestGlobalOrderHistory(t *testing.T) {
	s := seededAnalyticsStore(t)

	items := s.GlobalOrderHistory()
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	if total != 6 {
		t.Errorf("expected 6 units across history, got %d", total)
	}
}

func TestKitchenQueue(t *testing.T) {
	s := newTestStore(t)
	s.AddTable("t1", "Tavolo 1")
	s.AddTable("t2", "Tavolo 2")

	// t1 sent with one item ready and one pending; t2 occupied but not sent.
	s.AddItemToTableOrder("t1", sushi())
	s.AddItemToTableOrder("t1", ramen())
	if err := s.SendTableOrderToKitchen("t1"); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	s.UpdateDishStatus("t1", sushi().ID, ItemReady)
	s.AddItemToTableOrder("t2", sushi())

	queue := s.KitchenQueue()
	if len(queue) != 1 {
		t.Fatalf("expected one ticket, got %+v", queue)
	}
	ticket := queue[0]
	if ticket.TableID != "t1" {
		t.Errorf("unexpected ticket table: %s", ticket.TableID)
	}
	if len(ticket.Items) != 1 || ticket.Items[0].Dish.Name != "Ramen Tonkotsu" {
		t.Errorf("expected only the pending item, got %+v", ticket.Items)
	}

	// Everything ready empties the queue.
	s.UpdateDishStatus("t1", ramen().ID, ItemReady)
	if queue := s.KitchenQueue(); len(queue) != 0 {
		t.Errorf("expected empty queue, got %+v", queue)
	}
}

func TestLiveOrders(t *testing.T) {
	s := newTestStore(t)
	s.AddTable("t1", "Tavolo 1")
	s.AddTable("t2", "Tavolo 2")
	s.AddItemToTableOrder("t2", ramen())

	live := s.LiveOrders()
	if len(live) != 1 || live[0].TableName != "Tavolo 2" {
		t.Fatalf("expected one live order on Tavolo 2, got %+v", live)
	}

	s.MarkTableAsPaid("t2")
	if live := s.LiveOrders(); len(live) != 0 {
		t.Errorf("expected no live orders after pay, got %+v", live)
	}
}

func TestStats(t *testing.T) {
	s := seededAnalyticsStore(t)

	// An occupied table counts as active; history from today feeds the cards.
	s.AddItemToTableOrder("t1", sushi())

	stats := s.Stats()
	if stats.ActiveTables != 1 {
		t.Errorf("expected 1 active table, got %d", stats.ActiveTables)
	}
	if stats.OrdersToday != 2 {
		t.Errorf("expected 2 orders today, got %d", stats.OrdersToday)
	}
	if stats.RevenueToday != 47.50 {
		t.Errorf("expected 47.50 revenue today, got %.2f", stats.RevenueToday)
	}
}
