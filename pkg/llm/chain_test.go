package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/assert/v2"

	"tomorrownews/internal/model"
)

type fakeGenerator struct {
	name     string
	headline string
	err      error
	calls    int
}

func (f *fakeGenerator) Generate(ctx context.Context, elements []model.NewsElement) (string, error) {
	f.calls++
	return f.headline, f.err
}

func (f *fakeGenerator) Name() string { return f.name }

var chainElements = []model.NewsElement{
	{Type: model.TypeCorporate, Text: "Acme Corp launches loyalty program", Source: "Test"},
}

func TestChain_FirstProviderWins(t *testing.T) {
	first := &fakeGenerator{name: "first", headline: "headline from first"}
	second := &fakeGenerator{name: "second", headline: "headline from second"}
	c := NewChain(nil, first, second)

	h, err := c.Generate(context.Background(), chainElements)
	assert.Equal(t, nil, err)
	assert.Equal(t, "headline from first", h)
	assert.Equal(t, 0, second.calls)
}

func TestChain_FallsThroughOnError(t *testing.T) {
	first := &fakeGenerator{name: "first", err: errors.New("rate limited")}
	second := &fakeGenerator{name: "second", headline: "headline from second"}
	c := NewChain(nil, first, second)

	h, err := c.Generate(context.Background(), chainElements)
	assert.Equal(t, nil, err)
	assert.Equal(t, "headline from second", h)
	assert.Equal(t, 1, first.calls)
}

func TestChain_FallsThroughOnEmptyResult(t *testing.T) {
	first := &fakeGenerator{name: "first"}
	second := &fakeGenerator{name: "second", headline: "headline from second"}
	c := NewChain(nil, first, second)

	h, _ := c.Generate(context.Background(), chainElements)
	assert.Equal(t, "headline from second", h)
}

func TestChain_ExhaustedReportsNoResult(t *testing.T) {
	// Total provider failure is not an error; the caller falls back to
	// template generation.
	first := &fakeGenerator{name: "first", err: errors.New("down")}
	second := &fakeGenerator{name: "second", err: errors.New("also down")}
	c := NewChain(nil, first, second)

	h, err := c.Generate(context.Background(), chainElements)
	assert.Equal(t, nil, err)
	assert.Equal(t, "", h)
}

func TestChain_Empty(t *testing.T) {
	c := NewChain(nil)
	assert.Equal(t, true, c.Empty())

	h, err := c.Generate(context.Background(), chainElements)
	assert.Equal(t, nil, err)
	assert.Equal(t, "", h)

	assert.Equal(t, false, NewChain(nil, &fakeGenerator{name: "one"}).Empty())
}

func TestChain_NoElements(t *testing.T) {
	first := &fakeGenerator{name: "first", headline: "should not be called"}
	c := NewChain(nil, first)

	h, err := c.Generate(context.Background(), nil)
	assert.Equal(t, nil, err)
	assert.Equal(t, "", h)
	assert.Equal(t, 0, first.calls)
}
