package models

import (
	"strings"
	"time"
)

// ContentType is the kind of entry published on the content hub.
type ContentType string

const (
	ContentTypeVideo      ContentType = "video"
	ContentTypeArticle    ContentType = "article"
	ContentTypePodcast    ContentType = "podcast"
	ContentTypeNewsletter ContentType = "newsletter"
)

// ParseContentType normalises a raw type value. ok is false for unknown types.
func ParseContentType(raw string) (ContentType, bool) {
	switch ct := ContentType(strings.ToLower(strings.TrimSpace(raw))); ct {
	case ContentTypeVideo, ContentTypeArticle, ContentTypePodcast, ContentTypeNewsletter:
		return ct, true
	default:
		return "", false
	}
}

// FeedItem is a record of the THEFEED table as returned by the content API.
// Newsletter fields are flat and only populated for newsletter records.
type FeedItem struct {
	ID          string   `json:"id"`
	Date        string   `json:"date"`
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	Summary     string   `json:"summary"`
	Authors     []string `json:"authors"`
	Topics      []string `json:"topics"`
	Slug        string   `json:"slug"`
	SocialImage string   `json:"socialImage,omitempty"`

	HeroImageDesktop string `json:"heroImageDesktop,omitempty"`
	HeroImageMobile  string `json:"heroImageMobile,omitempty"`

	FoundersNote      string `json:"foundersNote,omitempty"`
	FoundersNoteImage string `json:"foundersNoteImage,omitempty"`

	Spotlight1Title       string `json:"spotlight1Title,omitempty"`
	Spotlight1Description string `json:"spotlight1Description,omitempty"`
	Spotlight1Image       string `json:"spotlight1Image,omitempty"`
	Spotlight1CTALink     string `json:"spotlight1CtaLink,omitempty"`
	Spotlight1CTALabel    string `json:"spotlight1CtaLabel,omitempty"`

	Spotlight2Title       string `json:"spotlight2Title,omitempty"`
	Spotlight2Description string `json:"spotlight2Description,omitempty"`
	Spotlight2Image       string `json:"spotlight2Image,omitempty"`
	Spotlight2CTALink     string `json:"spotlight2CtaLink,omitempty"`
	Spotlight2CTALabel    string `json:"spotlight2CtaLabel,omitempty"`

	Spotlight3Title       string `json:"spotlight3Title,omitempty"`
	Spotlight3Description string `json:"spotlight3Description,omitempty"`
	Spotlight3Image       string `json:"spotlight3Image,omitempty"`
	Spotlight3CTALink     string `json:"spotlight3CtaLink,omitempty"`
	Spotlight3CTALabel    string `json:"spotlight3CtaLabel,omitempty"`

	FeaturedPostTitle   string `json:"featuredPostTitle,omitempty"`
	FeaturedPostContent string `json:"featuredPostContent,omitempty"`
	FeaturedPostImage   string `json:"featuredPostImage,omitempty"`
	FeaturedPostLink    string `json:"featuredPostLink,omitempty"`

	UpcomingEventTitle       string `json:"upcomingEventTitle,omitempty"`
	UpcomingEventDescription string `json:"upcomingEventDescription,omitempty"`
	UpcomingEventDate        string `json:"upcomingEventDate,omitempty"`
	UpcomingEventLink        string `json:"upcomingEventLink,omitempty"`

	LoopVideo1 string `json:"loopVideo1,omitempty"`
	LoopVideo2 string `json:"loopVideo2,omitempty"`
}

// TransformedFeedItem is the consumer-facing shape served by the API.
type TransformedFeedItem struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Type        ContentType `json:"type"`
	Summary     string      `json:"summary"`
	Authors     []string    `json:"authors"`
	Topics      []string    `json:"topics"`
	Slug        string      `json:"slug"`
	Date        string      `json:"date"`
	PublishedAt time.Time   `json:"publishedAt"`
	SocialImage string      `json:"socialImage,omitempty"`

	NewsletterContent *NewsletterContent `json:"newsletterContent,omitempty"`
}

// NewsletterContent groups the newsletter-only fields. Rich text is HTML.
type NewsletterContent struct {
	HeroImage     HeroImage     `json:"heroImage"`
	FoundersNote  FoundersNote  `json:"foundersNote"`
	Spotlights    []Spotlight   `json:"spotlights"`
	FeaturedPost  FeaturedPost  `json:"featuredPost"`
	UpcomingEvent UpcomingEvent `json:"upcomingEvent"`
	Loops         Loops         `json:"loops"`
}

type HeroImage struct {
	Desktop string `json:"desktop"`
	Mobile  string `json:"mobile"`
}

type FoundersNote struct {
	Content string `json:"content"`
	Image   string `json:"image"`
}

type Spotlight struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	CTALink     string `json:"ctaLink"`
	CTALabel    string `json:"ctaLabel"`
}

type FeaturedPost struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Image   string `json:"image"`
	Link    string `json:"link"`
}

type UpcomingEvent struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Link        string `json:"link"`
}

// Loops are the two short looping media references shown in the newsletter.
type Loops struct {
	First  string `json:"first"`
	Second string `json:"second"`
}
