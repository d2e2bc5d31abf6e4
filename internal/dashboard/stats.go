package dashboard

import "farmconnect/internal/models"

// ComputeStats folds produce and orders into the dashboard counters.
func ComputeStats(produce []models.Produce, orders []models.Order) models.Stats {
	var stats models.Stats
	stats.TotalProduce = len(produce)
	for _, p := range produce {
		stats.TotalQuantity += p.Quantity
	}
	for _, o := range orders {
		switch o.Status {
		case models.OrderStatusActive:
			stats.ActiveOrders++
		case models.OrderStatusCompleted:
			stats.CompletedOrders++
		}
	}
	return stats
}
