package publisher

import (
	"strings"
	"unicode/utf8"

	"ReviewHub/internal/core/platforms"
)

// Per-platform content caps used for the optimized-content preview.
// These mirror the adapters' validation limits where one exists.
var contentLimits = map[string]int{
	platforms.GoogleBusinessProfile: 1500,
	platforms.LinkedIn:              3000,
	platforms.Bluesky:               300,
}

// OptimizeContent returns per-platform suggested text for the
// requested platforms, truncating to each platform's cap on a word
// boundary. Convenience output only; it has no failure modes tied to
// publishing.
func OptimizeContent(post platforms.UniversalPost, includeLinkedIn bool) map[string]string {
	optimized := make(map[string]string, len(post.Platforms)+1)

	for _, platform := range post.Platforms {
		optimized[platform] = truncateForPlatform(post.Content, platform)
	}
	if includeLinkedIn {
		if _, ok := optimized[platforms.LinkedIn]; !ok {
			optimized[platforms.LinkedIn] = truncateForPlatform(post.Content, platforms.LinkedIn)
		}
	}

	return optimized
}

func truncateForPlatform(content, platform string) string {
	limit, ok := contentLimits[platform]
	if !ok || utf8.RuneCountInString(content) <= limit {
		return content
	}

	runes := []rune(content)
	cut := string(runes[:limit-1])

	// Break on the last word boundary when one is reasonably close
	if idx := strings.LastIndexByte(cut, ' '); idx > limit/2 {
		cut = cut[:idx]
	}

	return strings.TrimRight(cut, " ") + "…"
}
