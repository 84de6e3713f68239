package news

import (
	"testing"

	"github.com/go-playground/assert/v2"

	"tomorrownews/internal/model"
)

func TestIsTragic(t *testing.T) {
	tragic := []string{
		"Plane crash kills dozens in mountain region",
		"War escalates along disputed border",
		"Three dead after apartment fire",
		"MURDER suspect arrested downtown",
	}
	for _, h := range tragic {
		assert.Equal(t, true, IsTragic(h))
	}

	mundane := []string{
		"Tech startup raises $10M in Series A funding",
		"City council approves new bike lanes",
		"Mild temperatures continue through weekend",
	}
	for _, h := range mundane {
		assert.Equal(t, false, IsTragic(h))
	}
}

func TestClassifyType(t *testing.T) {
	cases := []struct {
		headline string
		want     string
	}{
		{"Senate passes new infrastructure legislation", model.TypePolitical},
		{"Diplomats gather for climate summit in Geneva", model.TypeWorld},
		{"Apple unveils new chip architecture", model.TypeTech},
		{"Regional bakery chain expands to 12 locations", model.TypeCorporate},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, ClassifyType(c.headline))
	}
}

func TestFallbackElements(t *testing.T) {
	elements := FallbackElements()
	assert.Equal(t, 4, len(elements))

	for _, e := range elements {
		assert.Equal(t, "Fallback", e.Source)
		assert.Equal(t, false, e.Real)
		assert.NotEqual(t, "", e.Text)
		assert.Equal(t, false, IsTragic(e.Text))
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abc", truncate("abcdef", 3))
	assert.Equal(t, "", truncate("", 5))
}
