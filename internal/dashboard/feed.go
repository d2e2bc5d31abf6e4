package dashboard

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"farmconnect/internal/models"
)

const (
	// RecentProduceWindow is how many of the latest produce entries feed the activity list.
	RecentProduceWindow = 3
	// RecentOrderWindow is how many of the latest orders feed the activity list.
	RecentOrderWindow = 2
	// DefaultFeedLimit caps the merged feed.
	DefaultFeedLimit = 4

	produceActivityEmoji = "🌱"
	orderActivityEmoji   = "📦"

	// en-US short date, as the dashboard displays it.
	activityDateLayout = "1/2/2006"
)

// BuildFeed merges the most recent produce entries and orders into a
// single list, newest first, holding at most limit items. Both slices are
// expected in insertion order.
func BuildFeed(produce []models.Produce, orders []models.Order, limit int) []models.Activity {
	if limit <= 0 {
		return []models.Activity{}
	}

	recentProduce := tail(len(produce), RecentProduceWindow)
	recentOrders := tail(len(orders), RecentOrderWindow)

	feed := make([]models.Activity, 0, len(produce)-recentProduce+len(orders)-recentOrders)
	for _, p := range produce[recentProduce:] {
		feed = append(feed, models.Activity{
			ID:         fmt.Sprintf("produce-%d", p.ID),
			Action:     fmt.Sprintf("Added %skg of %s", formatQuantity(p.Quantity), p.Name),
			Time:       formatActivityDate(p.AddedAt),
			Emoji:      produceActivityEmoji,
			OccurredAt: p.AddedAt,
		})
	}
	for _, o := range orders[recentOrders:] {
		feed = append(feed, models.Activity{
			ID:         fmt.Sprintf("order-%d", o.ID),
			Action:     fmt.Sprintf("Order for %skg %s", formatQuantity(o.Quantity), o.ProduceName),
			Time:       formatActivityDate(o.CreatedAt),
			Emoji:      orderActivityEmoji,
			OccurredAt: o.CreatedAt,
		})
	}

	// Full timestamps, not the display date: entries from the same day keep
	// their time-of-day order.
	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].OccurredAt.After(feed[j].OccurredAt)
	})

	if len(feed) > limit {
		feed = feed[:limit]
	}
	return feed
}

// tail returns the start index of the last n elements of a slice of length size.
func tail(size, n int) int {
	if size <= n {
		return 0
	}
	return size - n
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}

func formatActivityDate(t time.Time) string {
	return t.Format(activityDateLayout)
}
