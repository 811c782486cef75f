package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"outfit_advisor/internal/common"
	"outfit_advisor/internal/domain/model"

	"github.com/gosimple/slug"
)

const (
	fallbackDescription = "No description available."
)

var accessoriesByCategory = map[string][]string{
	"dress": {"Necklace", "Bracelet", "Earrings"},
	"jeans": {"Leather Belt", "Sneakers", "Backpack"},
	"shirt": {"Watch", "Tie", "Cufflinks"},
}

var defaultAccessories = []string{"Sunglasses", "Handbag", "Hat"}

// DescriptionGenerator produces a short text for a dress type.
type DescriptionGenerator interface {
	GenerateDescription(ctx context.Context, dressType string) (string, error)
}

// ImageFinder locates a candidate image URL for a search query.
type ImageFinder interface {
	FirstImageURL(ctx context.Context, query string) (string, error)
}

// ServedImageCache records image URLs already shown to a user so repeated
// requests surface fresh candidates. MarkServed reports whether the URL was
// served before and remembers it either way, bounded by ttl.
type ServedImageCache interface {
	MarkServed(ctx context.Context, key, imageURL string, ttl time.Duration) (alreadyServed bool, err error)
}

type RecommendationService struct {
	descriptions DescriptionGenerator
	images       ImageFinder
	served       ServedImageCache

	placeholderURL   string
	seenTTL          time.Duration
	maxImageAttempts int
}

func NewRecommendationService(
	descriptions DescriptionGenerator,
	images ImageFinder,
	served ServedImageCache,
	placeholderURL string,
	seenTTL time.Duration,
	maxImageAttempts int,
) *RecommendationService {
	if maxImageAttempts < 1 {
		maxImageAttempts = 1
	}
	return &RecommendationService{
		descriptions:     descriptions,
		images:           images,
		served:           served,
		placeholderURL:   placeholderURL,
		seenTTL:          seenTTL,
		maxImageAttempts: maxImageAttempts,
	}
}

// Recommend produces one candidate recommendation for the user. Each call is a
// single round trip: a client that wants another candidate simply re-invokes,
// and the served-image cache steers the scrape away from URLs that user has
// already been shown for the same query.
func (s *RecommendationService) Recommend(ctx context.Context, userID string, req model.OutfitRequest) (*model.Recommendation, error) {
	if req.Color == "" || req.TopBottom == "" {
		return nil, common.ErrInvalidInput
	}

	imageQuery := req.Color + " " + req.TopBottom
	descQuery := fmt.Sprintf("%s %s for %s", req.Color, req.TopBottom, req.Occasion)

	description, err := s.descriptions.GenerateDescription(ctx, descQuery)
	if err != nil {
		log.Printf("description generation failed, using fallback: %v", err)
		description = fallbackDescription
	}

	imageURL := s.findFreshImage(ctx, userID, imageQuery)

	return &model.Recommendation{
		Description: description,
		ImageURL:    imageURL,
		Accessories: AccessoriesFor(req.TopBottom),
	}, nil
}

func (s *RecommendationService) findFreshImage(ctx context.Context, userID, query string) string {
	key := "served_images:" + userID + ":" + slug.Make(query)

	lastURL := ""
	for attempt := 0; attempt < s.maxImageAttempts; attempt++ {
		url, err := s.images.FirstImageURL(ctx, query)
		if err != nil {
			log.Printf("image scrape failed, using placeholder: %v", err)
			if lastURL != "" {
				return lastURL
			}
			return s.placeholderURL
		}
		lastURL = url

		alreadyServed, err := s.served.MarkServed(ctx, key, url, s.seenTTL)
		if err != nil {
			// The cache is advisory; a broken cache never blocks a result.
			log.Printf("served-image cache unavailable: %v", err)
			return url
		}
		if !alreadyServed {
			return url
		}
	}
	return lastURL
}

// AccessoriesFor maps a clothing category to its static accessory list. Lookup
// is case-insensitive and unknown categories get the default list.
func AccessoriesFor(category string) []string {
	if accessories, ok := accessoriesByCategory[strings.ToLower(category)]; ok {
		return accessories
	}
	return defaultAccessories
}
