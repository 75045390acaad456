package nutrition

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/limbo/snackcheck/pkg/entity"
)

const (
	matchConfidence   = 0.9
	unknownConfidence = 0.3

	unknownScore           = 5
	unknownCategory        = "unknown"
	unknownCaloriesPer100g = 200
	unknownFeedback        = "We couldn't analyze this food precisely. Try to include more fruits and vegetables in your diet!"

	defaultImageTimeout = 5 * time.Second
)

var unknownSuggestions = []string{
	"Try adding some fruits",
	"Consider vegetables as snacks",
	"Drink more water",
}

// ImageLabel is what an external image classifier thinks a picture shows.
type ImageLabel struct {
	Label      string
	Confidence float64
}

type ImageClassifier interface {
	ClassifyImage(ctx context.Context, image []byte) (*ImageLabel, error)
}

type Classifier struct {
	catalog      *Catalog
	images       ImageClassifier
	imageTimeout time.Duration
	logger       *slog.Logger
}

// NewClassifier builds a classifier over catalog. images may be nil, then
// pictures are ignored and only the typed food name is used.
func NewClassifier(catalog *Catalog, images ImageClassifier, imageTimeout time.Duration) *Classifier {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	if imageTimeout <= 0 {
		imageTimeout = defaultImageTimeout
	}
	return &Classifier{
		catalog:      catalog,
		images:       images,
		imageTimeout: imageTimeout,
		logger:       slog.Default().With(slog.String("component", "nutrition_classifier")),
	}
}

// Classify looks the food up in the catalog. A non-empty externalLabel
// replaces foodName for the lookup.
func (c *Classifier) Classify(foodName, externalLabel string) entity.Classification {
	query := foodName
	if strings.TrimSpace(externalLabel) != "" {
		query = externalLabel
	}
	query = strings.ToLower(strings.TrimSpace(query))

	item, ok := c.catalog.Lookup(query)
	if !ok {
		return entity.Classification{
			Score:           unknownScore,
			Category:        unknownCategory,
			CaloriesPer100g: unknownCaloriesPer100g,
			Feedback:        unknownFeedback,
			Suggestions:     clone(unknownSuggestions),
			DetectedFood:    query,
			Confidence:      unknownConfidence,
		}
	}
	return entity.Classification{
		Score:           item.Score,
		Category:        item.Category,
		CaloriesPer100g: item.CaloriesPer100g,
		Feedback:        item.Feedback,
		Suggestions:     Suggestions(item.Category, item.Score),
		DetectedFood:    query,
		Confidence:      matchConfidence,
	}
}

// Analyze runs the image classifier when a picture is given and then
// classifies. Image classification failures are logged and ignored. The bool
// reports whether an image label took part in the lookup.
func (c *Classifier) Analyze(ctx context.Context, foodName string, image []byte) (entity.Classification, bool) {
	label := c.labelImage(ctx, image)
	return c.Classify(foodName, label), label != ""
}

func (c *Classifier) labelImage(ctx context.Context, image []byte) (label string) {
	if len(image) == 0 || c.images == nil {
		return ""
	}
	defer func() {
		if r := recover(); r != nil {
			c.logger.Warn("image classifier panicked, falling back to food name", slog.Any("panic", r))
			label = ""
		}
	}()
	ctx, cancel := context.WithTimeout(ctx, c.imageTimeout)
	defer cancel()
	res, err := c.images.ClassifyImage(ctx, image)
	if err != nil {
		c.logger.Warn("image classification failed, falling back to food name", slog.String("error", err.Error()))
		return ""
	}
	if res == nil || strings.TrimSpace(res.Label) == "" {
		c.logger.Warn("image classification returned no label")
		return ""
	}
	c.logger.Info("image classified",
		slog.String("label", res.Label),
		slog.Float64("confidence", res.Confidence),
	)
	return res.Label
}
