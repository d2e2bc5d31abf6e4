package models

import "time"

// Weather is a single reading shown on the dashboard widget.
type Weather struct {
	Temperature int       `json:"temperature"` // °C
	Humidity    int       `json:"humidity"`    // %
	Condition   string    `json:"condition"`
	Emoji       string    `json:"emoji"`
	Location    string    `json:"location"`
	ObservedAt  time.Time `json:"observed_at"`
}
