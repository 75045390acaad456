package imagerecognition

import (
	"context"
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"github.com/limbo/snackcheck/internal/nutrition"
)

// Rekognition rejects raw image bytes above 5 MiB.
const MaxImageSize = 5 << 20

var (
	ErrEmptyImage    = errors.New("empty image")
	ErrImageTooLarge = errors.New("image exceeds 5MiB")
	ErrNoLabels      = errors.New("no food labels detected")
)

// Labels that describe "some food" or a whole food group rather than a
// specific one.
var genericLabels = map[string]struct{}{
	"food":          {},
	"meal":          {},
	"dish":          {},
	"plant":         {},
	"produce":       {},
	"breakfast":     {},
	"lunch":         {},
	"dinner":        {},
	"fruit":         {},
	"vegetable":     {},
	"beverage":      {},
	"drink":         {},
	"dessert":       {},
	"sweets":        {},
	"confectionery": {},
	"snack":         {},
	"baked goods":   {},
	"fast food":     {},
	"seafood":       {},
	"dairy":         {},
	"meat":          {},
}

type DetectLabelsAPI interface {
	DetectLabels(ctx context.Context, params *rekognition.DetectLabelsInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectLabelsOutput, error)
}

type RekognitionClassifier struct {
	client        DetectLabelsAPI
	maxLabels     int32
	minConfidence float32
}

func NewRekognitionClassifier(client DetectLabelsAPI) *RekognitionClassifier {
	return &RekognitionClassifier{
		client:        client,
		maxLabels:     10,
		minConfidence: 60,
	}
}

// NewFromRegion builds a classifier from the default AWS credential chain.
func NewFromRegion(ctx context.Context, region string) (*RekognitionClassifier, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, errors.New("loading aws config error: " + err.Error())
	}
	return NewRekognitionClassifier(rekognition.NewFromConfig(cfg)), nil
}

func (rc *RekognitionClassifier) ClassifyImage(ctx context.Context, image []byte) (*nutrition.ImageLabel, error) {
	if len(image) == 0 {
		return nil, ErrEmptyImage
	}
	if len(image) > MaxImageSize {
		return nil, ErrImageTooLarge
	}
	out, err := rc.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: image},
		MaxLabels:     aws.Int32(rc.maxLabels),
		MinConfidence: aws.Float32(rc.minConfidence),
	})
	if err != nil {
		return nil, errors.New("detecting labels error: " + err.Error())
	}
	label, ok := mostSpecific(out.Labels)
	if !ok {
		return nil, ErrNoLabels
	}
	return &nutrition.ImageLabel{
		Label:      normalizeLabel(label.Name),
		Confidence: float64(aws.ToFloat32(label.Confidence)) / 100,
	}, nil
}

func normalizeLabel(name *string) string {
	return strings.ToLower(strings.TrimSpace(aws.ToString(name)))
}

// mostSpecific picks the most confident label that is neither generic nor a
// parent of another returned label. Labels come back sorted by confidence.
func mostSpecific(labels []types.Label) (types.Label, bool) {
	parents := make(map[string]struct{})
	for _, l := range labels {
		for _, p := range l.Parents {
			parents[normalizeLabel(p.Name)] = struct{}{}
		}
	}
	var fallback *types.Label
	for i, l := range labels {
		name := normalizeLabel(l.Name)
		if name == "" {
			continue
		}
		if _, generic := genericLabels[name]; generic {
			continue
		}
		if _, parent := parents[name]; parent {
			if fallback == nil {
				fallback = &labels[i]
			}
			continue
		}
		return l, true
	}
	if fallback != nil {
		return *fallback, true
	}
	return types.Label{}, false
}
