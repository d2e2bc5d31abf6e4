package dashboard_test

import (
	"testing"
	"time"

	"farmconnect/internal/dashboard"
	"farmconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, time.March, 4, 9, 0, 0, 0, time.UTC)

func produceAt(id uint, name string, qty float64, at time.Time) models.Produce {
	return models.Produce{ID: id, Name: name, Quantity: qty, Location: "Field A", AddedAt: at}
}

func orderAt(id uint, name string, qty float64, at time.Time) models.Order {
	return models.Order{ID: id, ProduceName: name, Quantity: qty, Buyer: "Market", Status: models.OrderStatusActive, CreatedAt: at}
}

func TestBuildFeed_Empty(t *testing.T) {
	feed := dashboard.BuildFeed(nil, nil, dashboard.DefaultFeedLimit)
	assert.NotNil(t, feed)
	assert.Empty(t, feed)

	feed = dashboard.BuildFeed([]models.Produce{}, []models.Order{}, 4)
	assert.Empty(t, feed)
}

func TestBuildFeed_MapsEntries(t *testing.T) {
	produce := []models.Produce{produceAt(7, "Tomatoes", 20.5, base)}
	orders := []models.Order{orderAt(3, "Carrots", 10, base.Add(time.Hour))}

	feed := dashboard.BuildFeed(produce, orders, 4)
	require.Len(t, feed, 2)

	assert.Equal(t, "order-3", feed[0].ID)
	assert.Equal(t, "Order for 10kg Carrots", feed[0].Action)
	assert.Equal(t, "📦", feed[0].Emoji)
	assert.Equal(t, "3/4/2025", feed[0].Time)

	assert.Equal(t, "produce-7", feed[1].ID)
	assert.Equal(t, "Added 20.5kg of Tomatoes", feed[1].Action)
	assert.Equal(t, "🌱", feed[1].Emoji)
	assert.Equal(t, base, feed[1].OccurredAt)
}

func TestBuildFeed_UsesRecentWindows(t *testing.T) {
	var produce []models.Produce
	for i := 1; i <= 6; i++ {
		produce = append(produce, produceAt(uint(i), "Corn", float64(i), base.Add(time.Duration(i)*time.Minute)))
	}
	var orders []models.Order
	for i := 1; i <= 5; i++ {
		orders = append(orders, orderAt(uint(i), "Beans", float64(i), base.Add(-time.Duration(i)*time.Hour)))
	}

	feed := dashboard.BuildFeed(produce, orders, 10)
	require.Len(t, feed, dashboard.RecentProduceWindow+dashboard.RecentOrderWindow)

	ids := make([]string, len(feed))
	for i, a := range feed {
		ids[i] = a.ID
	}
	// produce 4..6 are the latest three; orders 4 and 5 are the last two
	// by insertion even though they are the oldest by timestamp.
	assert.Equal(t, []string{"produce-6", "produce-5", "produce-4", "order-4", "order-5"}, ids)
}

func TestBuildFeed_SameDayOrderedByTimeOfDay(t *testing.T) {
	produce := []models.Produce{
		produceAt(1, "Apples", 1, base.Add(1*time.Hour)),
		produceAt(2, "Apples", 2, base.Add(5*time.Hour)),
	}
	orders := []models.Order{orderAt(1, "Apples", 3, base.Add(3*time.Hour))}

	feed := dashboard.BuildFeed(produce, orders, 4)
	require.Len(t, feed, 3)
	assert.Equal(t, "produce-2", feed[0].ID)
	assert.Equal(t, "order-1", feed[1].ID)
	assert.Equal(t, "produce-1", feed[2].ID)
	for _, a := range feed {
		assert.Equal(t, "3/4/2025", a.Time)
	}
}

func TestBuildFeed_NeverExceedsLimit(t *testing.T) {
	var produce []models.Produce
	var orders []models.Order
	for n := 0; n < 8; n++ {
		produce = append(produce, produceAt(uint(n+1), "Onions", 1, base.Add(time.Duration(n)*time.Minute)))
		orders = append(orders, orderAt(uint(n+1), "Onions", 1, base.Add(time.Duration(n)*time.Second)))
		for limit := -1; limit <= 7; limit++ {
			feed := dashboard.BuildFeed(produce, orders, limit)
			assert.LessOrEqual(t, len(feed), max(limit, 0), "items=%d limit=%d", n+1, limit)
		}
	}
}

func TestBuildFeed_TiesKeepProduceFirst(t *testing.T) {
	produce := []models.Produce{produceAt(1, "Kale", 1, base)}
	orders := []models.Order{orderAt(1, "Kale", 1, base)}

	feed := dashboard.BuildFeed(produce, orders, 4)
	require.Len(t, feed, 2)
	assert.Equal(t, "produce-1", feed[0].ID)
	assert.Equal(t, "order-1", feed[1].ID)
}
