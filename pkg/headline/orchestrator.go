package headline

import (
	"context"
	"log/slog"

	"tomorrownews/internal/model"
)

// AIGenerator is the seam to the language-model provider chain. An empty
// result with a nil error means "no provider produced anything".
type AIGenerator interface {
	Generate(ctx context.Context, elements []model.NewsElement) (string, error)
}

// Result is the transient synthesis output consumed immediately by the
// insert path; nothing here is retained by the synthesizer.
type Result struct {
	Headline              string
	StockPhotoDescription string
	StockImageURL         string
}

// Synthesizer selects between AI-based and template-based generation. The
// template path makes the whole thing infallible: AI failures are logged and
// absorbed, never surfaced to the caller.
type Synthesizer struct {
	ai     AIGenerator
	tpl    *TemplateGenerator
	photos *StockPhotos
	log    *slog.Logger
}

func NewSynthesizer(ai AIGenerator, tpl *TemplateGenerator, photos *StockPhotos, log *slog.Logger) *Synthesizer {
	if log == nil {
		log = slog.Default()
	}
	return &Synthesizer{ai: ai, tpl: tpl, photos: photos, log: log}
}

// Synthesize produces a headline plus stock-photo metadata for the element
// sequence. It always returns a usable result, even under total network
// failure.
func (s *Synthesizer) Synthesize(ctx context.Context, elements []model.NewsElement) Result {
	var h string

	if s.ai != nil {
		generated, err := s.ai.Generate(ctx, elements)
		if err != nil {
			s.log.Warn("AI headline generation failed, using template fallback", "error", err)
		} else if generated != "" {
			s.log.Info("AI-generated headline", "headline", generated)
			h = generated
		}
	}

	if h == "" {
		h = s.tpl.Generate(elements)
	}

	return Result{
		Headline:              model.Sanitize(h),
		StockPhotoDescription: model.Sanitize(s.photos.Describe()),
		StockImageURL:         s.photos.ImageURL(),
	}
}
