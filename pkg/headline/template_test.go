package headline

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/go-playground/assert/v2"

	"tomorrownews/internal/model"
)

func TestTemplateGenerator_AttributionSuffix(t *testing.T) {
	g := NewTemplateGenerator(rand.New(rand.NewSource(1)))

	elements := []model.NewsElement{
		{Type: model.TypeCorporate, Text: "Acme Corp launches loyalty program", Source: "Business Wire"},
	}

	for i := 0; i < 50; i++ {
		h := g.Generate(elements)
		if !strings.HasSuffix(h, "| Developing via Business Wire") {
			t.Fatalf("headline missing attribution suffix: %q", h)
		}
	}
}

func TestTemplateGenerator_DefaultSource(t *testing.T) {
	g := NewTemplateGenerator(rand.New(rand.NewSource(2)))

	elements := []model.NewsElement{
		{Type: model.TypeCorporate, Text: "Acme Corp launches loyalty program"},
	}

	for i := 0; i < 50; i++ {
		h := g.Generate(elements)
		if !strings.HasSuffix(h, "| Developing via Wire Services") {
			t.Fatalf("expected default attribution, got: %q", h)
		}
	}
}

func TestTemplateGenerator_NoNullText(t *testing.T) {
	g := NewTemplateGenerator(rand.New(rand.NewSource(3)))

	headlines := []string{
		"Acme Corp launches loyalty program",
		"Mild temperatures continue through weekend",
		"zzz qqq",
		"Tech startup raises $10M in Series A funding",
	}

	for _, text := range headlines {
		elements := []model.NewsElement{{Type: model.TypeCorporate, Text: text, Source: "Test"}}
		for i := 0; i < 30; i++ {
			h := g.Generate(elements)
			assert.NotEqual(t, "", h)
			if strings.Contains(h, "null") || strings.Contains(h, "<nil>") || strings.Contains(h, "%!") {
				t.Fatalf("headline leaked a missing value: %q", h)
			}
		}
	}
}

func TestTemplateGenerator_UsesExtractedEntity(t *testing.T) {
	g := NewTemplateGenerator(rand.New(rand.NewSource(4)))

	elements := []model.NewsElement{
		{Type: model.TypeCorporate, Text: "Acme Corp launches loyalty program", Source: "Test"},
	}

	var mentioned int
	for i := 0; i < 50; i++ {
		if strings.Contains(g.Generate(elements), "Acme Corp") {
			mentioned++
		}
	}
	// Every template embeds the entity somewhere; a handful of bizarre
	// variants mention it indirectly, so just require a clear majority.
	if mentioned < 40 {
		t.Fatalf("entity appeared in only %d of 50 headlines", mentioned)
	}
}

func TestTemplateGenerator_EmptyElements(t *testing.T) {
	g := NewTemplateGenerator(rand.New(rand.NewSource(5)))
	assert.Equal(t, "", g.Generate(nil))
}

func TestTemplateGenerator_WeatherElementFlavorsOutput(t *testing.T) {
	g := NewTemplateGenerator(rand.New(rand.NewSource(6)))

	elements := []model.NewsElement{
		{Type: model.TypeCorporate, Text: "Acme Corp launches loyalty program", Source: "Test"},
		{Type: model.TypeWeather, Text: "Heavy rain expected through Thursday", Source: "Test"},
	}

	var sawWeatherTerm bool
	for i := 0; i < 200; i++ {
		if strings.Contains(g.Generate(elements), "rain") {
			sawWeatherTerm = true
			break
		}
	}
	if !sawWeatherTerm {
		t.Fatal("weather template never used the weather element's term")
	}
}

func TestCasualties_BlendsRealNumbers(t *testing.T) {
	g := NewTemplateGenerator(rand.New(rand.NewSource(7)))

	// A found number of 1000 exceeds every pool value, so it must always
	// land on the big side.
	for i := 0; i < 100; i++ {
		small, big := g.casualties([]int{1000})
		if small != 1000 && big != 1000 {
			t.Fatalf("found number dropped: small=%d big=%d", small, big)
		}
	}
}

func TestCasualties_PoolOnly(t *testing.T) {
	g := NewTemplateGenerator(rand.New(rand.NewSource(8)))

	for i := 0; i < 100; i++ {
		small, big := g.casualties(nil)
		if small <= 0 || big <= 0 {
			t.Fatalf("casualty count out of range: small=%d big=%d", small, big)
		}
	}
}
