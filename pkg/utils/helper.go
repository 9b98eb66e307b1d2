package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/gosimple/slug"
)

// MakeSlug builds a URL-safe slug from one or more name parts
func MakeSlug(parts ...string) string {
	return slug.Make(strings.Join(parts, " "))
}

// GenerateBookingRef creates a booking reference with timestamp
func GenerateBookingRef() string {
	rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now()

	// Format: CCR-YYYYMMDD-HHMMSS-RANDOM
	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := fmt.Sprintf("%04d", rand.Intn(10000))

	return fmt.Sprintf("CCR-%s-%s-%s", datePart, timePart, randomPart)
}

// ImageLine is one parsed entry from the admin "one image per line" textarea
type ImageLine struct {
	URL       string
	AltText   *string
	IsPrimary bool
}

// ParseImageLines parses "url|alt text" lines, first line becomes primary.
// Blank lines are skipped.
func ParseImageLines(rawText string) []ImageLine {
	if rawText == "" {
		return nil
	}

	var images []ImageLine
	for _, line := range strings.Split(rawText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		url := line
		var altText *string
		if idx := strings.Index(line, "|"); idx >= 0 {
			url = strings.TrimSpace(line[:idx])
			alt := strings.TrimSpace(line[idx+1:])
			if alt != "" {
				altText = &alt
			}
		}

		images = append(images, ImageLine{
			URL:       url,
			AltText:   altText,
			IsPrimary: len(images) == 0,
		})
	}

	return images
}
