package feed

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"digital-canvas/internal/logger"
	"digital-canvas/models"
)

// DisplayDateLayout is the human-readable publish date shown on cards.
const DisplayDateLayout = "January 2, 2006"

var ErrInvalidItem = errors.New("invalid feed item")

var publishDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000",
	"2006-01-02",
}

func parsePublishDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range publishDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// Transform converts a raw record into the consumer-facing shape.
// Records without a slug or with an unknown content type are rejected.
func Transform(item models.FeedItem) (models.TransformedFeedItem, error) {
	slug := strings.TrimSpace(item.Slug)
	if slug == "" {
		return models.TransformedFeedItem{}, fmt.Errorf("%w: record %q has no slug", ErrInvalidItem, item.ID)
	}
	contentType, ok := models.ParseContentType(item.Type)
	if !ok {
		return models.TransformedFeedItem{}, fmt.Errorf("%w: record %q has unknown type %q", ErrInvalidItem, item.ID, item.Type)
	}

	out := models.TransformedFeedItem{
		ID:          item.ID,
		Title:       strings.TrimSpace(item.Title),
		Type:        contentType,
		Summary:     item.Summary,
		Authors:     compactStrings(item.Authors),
		Topics:      compactStrings(item.Topics),
		Slug:        slug,
		Date:        item.Date,
		SocialImage: item.SocialImage,
	}
	if published, ok := parsePublishDate(item.Date); ok {
		out.PublishedAt = published
		out.Date = published.Format(DisplayDateLayout)
	}

	if contentType == models.ContentTypeNewsletter {
		out.NewsletterContent = newsletterContent(item)
	}
	return out, nil
}

func newsletterContent(item models.FeedItem) *models.NewsletterContent {
	slots := []models.Spotlight{
		{
			Title:       item.Spotlight1Title,
			Description: item.Spotlight1Description,
			Image:       item.Spotlight1Image,
			CTALink:     item.Spotlight1CTALink,
			CTALabel:    item.Spotlight1CTALabel,
		},
		{
			Title:       item.Spotlight2Title,
			Description: item.Spotlight2Description,
			Image:       item.Spotlight2Image,
			CTALink:     item.Spotlight2CTALink,
			CTALabel:    item.Spotlight2CTALabel,
		},
		{
			Title:       item.Spotlight3Title,
			Description: item.Spotlight3Description,
			Image:       item.Spotlight3Image,
			CTALink:     item.Spotlight3CTALink,
			CTALabel:    item.Spotlight3CTALabel,
		},
	}

	spotlights := make([]models.Spotlight, 0, len(slots))
	for _, s := range slots {
		if strings.TrimSpace(s.Title) == "" {
			continue
		}
		s.Description = MarkdownToHTML(s.Description)
		spotlights = append(spotlights, s)
	}

	return &models.NewsletterContent{
		HeroImage: models.HeroImage{
			Desktop: item.HeroImageDesktop,
			Mobile:  item.HeroImageMobile,
		},
		FoundersNote: models.FoundersNote{
			Content: MarkdownToHTML(item.FoundersNote),
			Image:   item.FoundersNoteImage,
		},
		Spotlights: spotlights,
		FeaturedPost: models.FeaturedPost{
			Title:   item.FeaturedPostTitle,
			Content: MarkdownToHTML(item.FeaturedPostContent),
			Image:   item.FeaturedPostImage,
			Link:    item.FeaturedPostLink,
		},
		UpcomingEvent: models.UpcomingEvent{
			Title:       item.UpcomingEventTitle,
			Description: MarkdownToHTML(item.UpcomingEventDescription),
			Date:        item.UpcomingEventDate,
			Link:        item.UpcomingEventLink,
		},
		Loops: models.Loops{
			First:  item.LoopVideo1,
			Second: item.LoopVideo2,
		},
	}
}

// TransformAll transforms every record, skipping invalid ones, and returns
// the result newest first. Undated records sort last. When two records share
// a slug only the newest is kept.
func TransformAll(items []models.FeedItem) []models.TransformedFeedItem {
	out := make([]models.TransformedFeedItem, 0, len(items))
	for _, item := range items {
		t, err := Transform(item)
		if err != nil {
			logger.WarnWithFields("skipping feed record", logger.Fields{
				"record_id": item.ID,
				"error":     err.Error(),
			})
			continue
		}
		out = append(out, t)
	}

	SortNewestFirst(out)

	seen := make(map[string]struct{}, len(out))
	unique := out[:0]
	for _, t := range out {
		if _, dup := seen[t.Slug]; dup {
			logger.WarnWithFields("dropping duplicate feed slug", logger.Fields{
				"record_id": t.ID,
				"slug":      t.Slug,
			})
			continue
		}
		seen[t.Slug] = struct{}{}
		unique = append(unique, t)
	}
	return unique
}

func SortNewestFirst(items []models.TransformedFeedItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].PublishedAt, items[j].PublishedAt
		if a.IsZero() != b.IsZero() {
			return !a.IsZero()
		}
		return a.After(b)
	})
}

// compactStrings trims values and drops empties and repeats, keeping order.
func compactStrings(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
