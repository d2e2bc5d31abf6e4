package dashboard

import (
	"sort"
	"strings"

	"farmconnect/internal/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultProduceEmoji is used for produce names missing from the table.
const DefaultProduceEmoji = "🥬"

var produceEmoji = map[string]string{
	"tomatoes":     "🍅",
	"carrots":      "🥕",
	"lettuce":      "🥬",
	"potatoes":     "🥔",
	"corn":         "🌽",
	"apples":       "🍎",
	"bananas":      "🍌",
	"cucumbers":    "🥒",
	"onions":       "🧅",
	"beans":        "🫛",
	"peppers":      "🌶️",
	"broccoli":     "🥦",
	"strawberries": "🍓",
	"oranges":      "🍊",
	"mangoes":      "🥭",
}

// Only offered as preferences; produce entries with these names still
// render with the default glyph.
var preferenceOnlyEmoji = map[string]string{
	"blueberries": "🫐",
	"grapes":      "🍇",
	"coconuts":    "🥥",
	"cherries":    "🍑",
	"kiwi":        "🥝",
}

// ProduceEmoji looks a produce name up case-insensitively.
func ProduceEmoji(name string) string {
	if e, ok := produceEmoji[strings.ToLower(strings.TrimSpace(name))]; ok {
		return e
	}
	return DefaultProduceEmoji
}

// Catalog lists every selectable produce type, sorted by value.
func Catalog() []models.CatalogEntry {
	title := cases.Title(language.English)
	entries := make([]models.CatalogEntry, 0, len(produceEmoji)+len(preferenceOnlyEmoji))
	for _, table := range []map[string]string{produceEmoji, preferenceOnlyEmoji} {
		for value, emoji := range table {
			entries = append(entries, models.CatalogEntry{
				Value: value,
				Label: title.String(value),
				Emoji: emoji,
			})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Value < entries[j].Value })
	return entries
}
