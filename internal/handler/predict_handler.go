package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"tomorrownews/internal/model"
	"tomorrownews/internal/store"
	"tomorrownews/pkg/headline"
	"tomorrownews/pkg/news"
)

const (
	mundaneLimit   = 6
	cleanupKeyword = "Local"
)

// PredictionStore is the slice of the store the handlers need.
type PredictionStore interface {
	Insert(ctx context.Context, p *model.Prediction) (*model.Prediction, error)
	Find(ctx context.Context, f store.Filter) ([]model.Prediction, error)
	BulkDelete(ctx context.Context, keyword string) (int64, error)
	Ping(ctx context.Context) error
	Persistent() bool
}

// Synthesizer produces the headline plus stock-photo metadata. It cannot
// fail; AI trouble is absorbed behind the template fallback.
type Synthesizer interface {
	Synthesize(ctx context.Context, elements []model.NewsElement) headline.Result
}

// ArticleScraper fetches an arbitrary article URL for /api/predict/from-url.
type ArticleScraper interface {
	Scrape(ctx context.Context, url string) (*news.Article, error)
	ToElement(a *news.Article) model.NewsElement
}

type PredictionHandler struct {
	store    PredictionStore
	synth    Synthesizer
	sources  []news.Source
	scraper  ArticleScraper
	populate *Populator
	log      *slog.Logger
}

func NewPredictionHandler(st PredictionStore, synth Synthesizer, sources []news.Source,
	scraper ArticleScraper, populate *Populator, log *slog.Logger) *PredictionHandler {
	if log == nil {
		log = slog.Default()
	}
	return &PredictionHandler{
		store:    st,
		synth:    synth,
		sources:  sources,
		scraper:  scraper,
		populate: populate,
		log:      log,
	}
}

func (h *PredictionHandler) GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Tomorrow's Tragedy API Running"})
}

func (h *PredictionHandler) GetHealth(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

// GetMundane serves raw elements from the first live feed that answers,
// falling back to the static set. Ingestion failure is never a hard error.
func (h *PredictionHandler) GetMundane(c *gin.Context) {
	ctx := c.Request.Context()

	for _, src := range h.sources {
		elements, err := src.Fetch(ctx, mundaneLimit)
		if err != nil {
			h.log.Warn("mundane source failed", "source", src.Name(), "error", err)
			continue
		}
		if len(elements) > 0 {
			c.JSON(http.StatusOK, elements)
			return
		}
	}

	h.log.Info("no live mundane elements, serving fallback set")
	c.JSON(http.StatusOK, news.FallbackElements())
}

func (h *PredictionHandler) PostPredict(c *gin.Context) {
	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Elements) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one element is required"})
		return
	}

	// Only the first element drives synthesis (single article).
	lead := req.Elements[0]
	if lead.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Element text is required"})
		return
	}

	stored, err := h.createPrediction(c.Request.Context(), []model.NewsElement{lead}, "")
	if err != nil {
		h.respondStorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, stored)
}

func (h *PredictionHandler) PostPredictFromURL(c *gin.Context) {
	var req PredictFromURLRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "URL is required"})
		return
	}

	ctx := c.Request.Context()

	article, err := h.scraper.Scrape(ctx, req.URL)
	if err != nil {
		var scrapeErr *news.ScrapeError
		if errors.As(err, &scrapeErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": scrapeErr.Reason})
			return
		}
		h.log.Error("error processing URL", "url", req.URL, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process URL: " + err.Error()})
		return
	}

	element := h.scraper.ToElement(article)

	stored, err := h.createPrediction(ctx, []model.NewsElement{element}, req.URL)
	if err != nil {
		h.respondStorageError(c, err)
		return
	}

	c.JSON(http.StatusOK, PredictFromURLResponse{
		Prediction: *stored,
		Article: ArticleMeta{
			Title:       article.Title,
			Source:      article.Source,
			Description: article.Description,
		},
	})
}

// GetPredictions lists every stored prediction, newest first, back-filling
// photo fields for records that predate them.
func (h *PredictionHandler) GetPredictions(c *gin.Context) {
	docs, err := h.store.Find(c.Request.Context(), store.Filter{})
	if err != nil {
		if errors.Is(err, store.ErrUnavailable) {
			c.JSON(http.StatusOK, []model.Prediction{})
			return
		}
		h.log.Error("error fetching predictions", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch"})
		return
	}

	for i := range docs {
		backfillPhoto(&docs[i])
	}
	if docs == nil {
		docs = []model.Prediction{}
	}

	c.JSON(http.StatusOK, docs)
}

func (h *PredictionHandler) PostPopulateNYTimes(c *gin.Context) {
	var req PopulateRequest
	_ = c.ShouldBindJSON(&req)
	count := req.Count
	if count <= 0 {
		count = 15
	}

	summary, err := h.populate.Run(c.Request.Context(), count)
	if err != nil {
		h.log.Error("error populating from homepage", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to populate: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, PopulateResponse{
		Success:   true,
		Message:   "Populated database with scraped articles",
		Generated: summary.Generated,
		Skipped:   summary.Skipped,
		Errors:    summary.Errors,
		Total:     summary.Total,
	})
}

func (h *PredictionHandler) PostPopulateYesterday(c *gin.Context) {
	summary, err := h.populate.Run(c.Request.Context(), yesterdayBatchSize)
	if err != nil {
		h.log.Error("error populating yesterday articles", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to populate: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, PopulateResponse{
		Success:   true,
		Message:   "Populated database with yesterday's articles",
		Generated: summary.Generated,
		Skipped:   summary.Skipped,
		Errors:    summary.Errors,
		Total:     summary.Total,
	})
}

// PostCleanupLocal bulk-deletes predictions mentioning the cleanup keyword.
// Destructive; only allowed against the persistent backend.
func (h *PredictionHandler) PostCleanupLocal(c *gin.Context) {
	if !h.store.Persistent() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "PostgreSQL not configured. This only works with PostgreSQL."})
		return
	}

	deleted, err := h.store.BulkDelete(c.Request.Context(), cleanupKeyword)
	if err != nil {
		h.log.Error("error cleaning up", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cleanup: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, CleanupResponse{
		Success: true,
		Message: fmt.Sprintf("Cleaned up predictions containing %q", cleanupKeyword),
		Deleted: deleted,
	})
}

func (h *PredictionHandler) createPrediction(ctx context.Context, elements []model.NewsElement, sourceURL string) (*model.Prediction, error) {
	result := h.synth.Synthesize(ctx, elements)

	prediction := &model.Prediction{
		Components:            elements,
		Headline:              result.Headline,
		StockPhotoDescription: result.StockPhotoDescription,
		StockImageURL:         result.StockImageURL,
		SourceURL:             sourceURL,
	}

	stored, err := h.store.Insert(ctx, prediction)
	if err != nil {
		return nil, err
	}

	h.log.Info("prediction saved", "id", stored.ID, "headline", stored.Headline)
	return stored, nil
}

func (h *PredictionHandler) respondStorageError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrUnavailable) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No persistent storage configured"})
		return
	}
	h.log.Error("error saving prediction", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save"})
}

// backfillPhoto gives old records the placeholder image and caption the
// viewer expects, derived from the record ID so repeated polls stay stable.
func backfillPhoto(p *model.Prediction) {
	if p.StockImageURL == "" {
		seed := 0
		if p.ID != "" {
			seed = int(p.ID[0]) * 1000
		}
		p.StockImageURL = fmt.Sprintf("https://picsum.photos/800/600?random=%d", seed)
	}
	if p.StockPhotoDescription == "" {
		p.StockPhotoDescription = "Corporate event documentation"
	}
}
