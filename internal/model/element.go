package model

const (
	TypeCorporate = "corporate"
	TypePolitical = "political"
	TypeWorld     = "world"
	TypeTech      = "tech"
	TypeWeather   = "weather"
	TypeMarket    = "market"
	TypeTraffic   = "traffic"
)

// NewsElement is a single ingested headline or article fragment used as
// synthesis input. Real is false for the static fallback set.
type NewsElement struct {
	Type     string `json:"type"`
	Text     string `json:"text"`
	Source   string `json:"source"`
	Real     bool   `json:"real"`
	URL      string `json:"url,omitempty"`
	FullText string `json:"fullText,omitempty"`
}
