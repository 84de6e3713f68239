package llm

import (
	"strings"
	"testing"

	"tomorrownews/internal/model"
)

func TestBuildPrompt_EmbedsHeadlineAndEntity(t *testing.T) {
	p := buildPrompt([]model.NewsElement{
		{Type: model.TypeCorporate, Text: "Acme Corp launches loyalty program", Source: "Business Wire"},
	})

	if !strings.Contains(p, `ARTICLE HEADLINE: "Acme Corp launches loyalty program"`) {
		t.Fatalf("prompt missing article headline:\n%s", p)
	}
	if !strings.Contains(p, "Company/Organization: Acme Corp") {
		t.Fatalf("prompt missing extracted entity:\n%s", p)
	}
	if !strings.Contains(p, "Developing via Business Wire") {
		t.Fatalf("prompt missing source attribution format:\n%s", p)
	}
}

func TestBuildPrompt_TruncatesArticleContext(t *testing.T) {
	// The marker sits past the cap, so it must not survive truncation.
	long := strings.Repeat("lorem ipsum dolor ", 100) + "beyond-the-cap"
	p := buildPrompt([]model.NewsElement{
		{Type: model.TypeCorporate, Text: "Acme Corp launches loyalty program", FullText: long},
	})

	if strings.Contains(p, "beyond-the-cap") {
		t.Fatal("article context exceeded the 1000 character cap")
	}
	if !strings.Contains(p, "FULL ARTICLE CONTEXT") {
		t.Fatal("article context section missing despite FullText being set")
	}
}

func TestBuildPrompt_DefaultSource(t *testing.T) {
	p := buildPrompt([]model.NewsElement{
		{Type: model.TypeCorporate, Text: "Acme Corp launches loyalty program"},
	})

	if !strings.Contains(p, "Developing via news sources") {
		t.Fatalf("prompt missing default source:\n%s", p)
	}
}
