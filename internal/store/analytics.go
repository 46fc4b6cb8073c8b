package store

import "sort"

// Derived views over the live state. Everything here recomputes on each call
// by scanning the tables; expected data volumes make that cheap.

type KitchenTicket struct {
	TableID   string      `json:"table_id"`
	TableName string      `json:"table_name"`
	OrderID   string      `json:"order_id"`
	Items     []OrderItem `json:"items"`
}

type LiveOrder struct {
	TableName string `json:"table_name"`
	Order     Order  `json:"order"`
}

type DailyStat struct {
	Date    string  `json:"date"` // YYYY-MM-DD
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

type DishCount struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type DashboardStats struct {
	ActiveTables int     `json:"active_tables"`
	OrdersToday  int     `json:"orders_today"`
	RevenueToday float64 `json:"revenue_today"`
}

// KitchenQueue lists, per sent table, the items still in preparation.
func (s *Store) KitchenQueue() []KitchenTicket {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []KitchenTicket
	for _, t := range s.tables {
		if t.Status != TableOrderSent || t.ActiveOrder == nil {
			continue
		}
		var pending []OrderItem
		for _, item := range t.ActiveOrder.Items {
			if item.Status == ItemInPreparation {
				pending = append(pending, item)
			}
		}
		if len(pending) == 0 {
			continue
		}
		out = append(out, KitchenTicket{
			TableID:   t.ID,
			TableName: t.Name,
			OrderID:   t.ActiveOrder.ID,
			Items:     pending,
		})
	}
	return out
}

// LiveOrders returns every active order with its table name.
func (s *Store) LiveOrders() []LiveOrder {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []LiveOrder
	for _, t := range s.tables {
		if t.ActiveOrder == nil {
			continue
		}
		out = append(out, LiveOrder{TableName: t.Name, Order: cloneOrder(t.ActiveOrder)})
	}
	return out
}

// GlobalOrderHistory flattens every completed order's items across all tables.
func (s *Store) GlobalOrderHistory() []OrderItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []OrderItem
	for _, t := range s.tables {
		for _, o := range t.OrderHistory {
			out = append(out, o.Items...)
		}
	}
	return out
}

// RevenueByDay aggregates completed orders per calendar day, oldest first.
func (s *Store) RevenueByDay() []DailyStat {
	s.mu.Lock()
	defer s.mu.Unlock()
	byDay := make(map[string]*DailyStat)
	for _, t := range s.tables {
		for _, o := range t.OrderHistory {
			day := o.CreatedAt.Format("2006-01-02")
			stat, ok := byDay[day]
			if !ok {
				stat = &DailyStat{Date: day}
				byDay[day] = stat
			}
			stat.Orders++
			stat.Revenue += o.Total
		}
	}
	out := make([]DailyStat, 0, len(byDay))
	for _, stat := range byDay {
		out = append(out, *stat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// TopDishes ranks dishes by quantity sold across all order history.
func (s *Store) TopDishes(limit int) []DishCount {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[string]int)
	for _, t := range s.tables {
		for _, o := range t.OrderHistory {
			for _, item := range o.Items {
				counts[item.Dish.Name] += item.Quantity
			}
		}
	}
	out := make([]DishCount, 0, len(counts))
	for name, qty := range counts {
		out = append(out, DishCount{Name: name, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity > out[j].Quantity
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Stats powers the admin dashboard header cards.
func (s *Store) Stats() DashboardStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	today := s.now().Format("2006-01-02")
	var stats DashboardStats
	for _, t := range s.tables {
		switch t.Status {
		case TableOccupied, TableOrderSent, TableBillRequested:
			stats.ActiveTables++
		}
		for _, o := range t.OrderHistory {
			if o.CreatedAt.Format("2006-01-02") == today {
				stats.OrdersToday++
				stats.RevenueToday += o.Total
			}
		}
	}
	return stats
}
