package news

import (
	"context"
	"regexp"

	"tomorrownews/internal/model"
)

// Source produces raw mundane elements for the synthesis pipeline.
type Source interface {
	Fetch(ctx context.Context, limit int) ([]model.NewsElement, error)
	Name() string
}

// tragicPattern filters headlines that are already disasters; the pipeline
// only wants mundane input to corrupt.
var tragicPattern = regexp.MustCompile(`(?i)death|kill|crash|disaster|crisis|war|attack|dead|murder|assassination|massacre|terrorist|bombing|shooting`)

// IsTragic reports whether a headline is already about a tragedy.
func IsTragic(headline string) bool {
	return tragicPattern.MatchString(headline)
}

// FallbackElements is the static mundane set served when every live feed
// fails. Real is false so consumers can tell it apart from live news.
func FallbackElements() []model.NewsElement {
	return []model.NewsElement{
		{Type: model.TypeCorporate, Text: "Tech startup raises $10M in Series A funding", Source: "Fallback"},
		{Type: model.TypeWeather, Text: "Mild temperatures continue through weekend", Source: "Fallback"},
		{Type: model.TypeMarket, Text: "Markets close slightly higher on light trading", Source: "Fallback"},
		{Type: model.TypeTraffic, Text: "Highway construction enters final phase", Source: "Fallback"},
	}
}

var (
	politicalPattern = regexp.MustCompile(`(?i)politic|election|congress|senate|president|government|policy|legislation|vote|democrat|republican|biden|trump|kamala|harris`)
	worldPattern     = regexp.MustCompile(`(?i)international|world|country|nation|diplomat|summit|treaty|geopolitic|russia|china|ukraine|israel|palestine|nato|united nations`)
	techPattern      = regexp.MustCompile(`(?i)tech|ai|software|digital|cyber|quantum|blockchain|apple|google|microsoft|meta|tesla|nvidia`)
)

// ClassifyType tags a headline with the element type the generators expect.
// Keyword-driven and unapologetically rough.
func ClassifyType(headline string) string {
	switch {
	case politicalPattern.MatchString(headline):
		return model.TypePolitical
	case worldPattern.MatchString(headline):
		return model.TypeWorld
	case techPattern.MatchString(headline):
		return model.TypeTech
	default:
		return model.TypeCorporate
	}
}
