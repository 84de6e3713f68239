package model

import (
	"regexp"
	"strings"
	"time"
)

// Prediction is the persisted disaster headline plus metadata. Field names on
// the wire match what the front-end viewer polls for.
type Prediction struct {
	ID                    string        `json:"_id"`
	Components            []NewsElement `json:"components"`
	Headline              string        `json:"headline"`
	StockPhotoDescription string        `json:"stockPhotoDescription,omitempty"`
	StockImageURL         string        `json:"stockImageUrl,omitempty"`
	PredictedDate         string        `json:"predicted_date"`
	CreatedAt             time.Time     `json:"created_at"`
	CameTrue              bool          `json:"came_true"`
	SourceURL             string        `json:"source_url,omitempty"`
}

var controlChars = regexp.MustCompile(`[\x00-\x1F\x7F]`)

// Sanitize strips control characters and surrounding whitespace from a
// headline or caption before it is persisted.
func Sanitize(s string) string {
	return strings.TrimSpace(controlChars.ReplaceAllString(s, ""))
}

// TomorrowDate returns the calendar date one day after now, formatted the way
// predicted_date is stored. The prediction always claims to be about tomorrow.
func TomorrowDate(now time.Time) string {
	return now.AddDate(0, 0, 1).Format("2006-01-02")
}
