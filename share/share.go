// Package share builds social share links for recipes.
package share

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ajikko/aji/api"
	"github.com/morikuni/failure/v2"
	"github.com/pkg/browser"
)

// ErrorCode defines error types for share operations
type ErrorCode string

const (
	// ErrNoSourceURL represents a recipe without a shareable link
	ErrNoSourceURL ErrorCode = "NoSourceURL"
	// ErrUnknownPlatform represents an unsupported share target
	ErrUnknownPlatform ErrorCode = "UnknownPlatform"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

// Platform identifies a share target
type Platform string

const (
	PlatformFacebook Platform = "facebook"
	PlatformTwitter  Platform = "twitter"
	PlatformWhatsApp Platform = "whatsapp"
	PlatformEmail    Platform = "email"
)

// Platforms lists all supported share targets
var Platforms = []Platform{PlatformFacebook, PlatformTwitter, PlatformWhatsApp, PlatformEmail}

// ParsePlatform resolves a user-supplied platform name
func ParsePlatform(name string) (Platform, error) {
	for _, p := range Platforms {
		if strings.EqualFold(string(p), name) {
			return p, nil
		}
	}
	return "", failure.New(ErrUnknownPlatform,
		failure.Message(fmt.Sprintf("Unknown share platform %q (supported: %s)", name, platformNames())),
		failure.Context{"platform": name},
	)
}

func platformNames() string {
	names := make([]string, len(Platforms))
	for i, p := range Platforms {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

// Link builds the share URL for a recipe on the given platform
func Link(platform Platform, r api.Recipe) (string, error) {
	if r.SourceURL == "" {
		return "", failure.New(ErrNoSourceURL,
			failure.Message("No shareable link available for this recipe"),
			failure.Context{"id": fmt.Sprintf("%d", r.ID)},
		)
	}

	switch platform {
	case PlatformFacebook:
		return "https://www.facebook.com/sharer/sharer.php?u=" + url.QueryEscape(r.SourceURL), nil
	case PlatformTwitter:
		q := url.Values{}
		q.Set("url", r.SourceURL)
		q.Set("text", r.Title)
		return "https://twitter.com/intent/tweet?" + q.Encode(), nil
	case PlatformWhatsApp:
		q := url.Values{}
		q.Set("text", r.Title+" "+r.SourceURL)
		return "https://api.whatsapp.com/send?" + q.Encode(), nil
	case PlatformEmail:
		return mailto(r), nil
	default:
		return "", failure.New(ErrUnknownPlatform,
			failure.Context{"platform": string(platform)},
		)
	}
}

// mailto builds an email share link with a short pitch in the body
func mailto(r api.Recipe) string {
	cuisine := "delicious"
	if len(r.Cuisines) > 0 {
		cuisine = r.Cuisines[0]
	}

	readyIn := "N/A"
	if r.ReadyInMinutes > 0 {
		readyIn = fmt.Sprintf("%d", r.ReadyInMinutes)
	}

	body := fmt.Sprintf(
		"Check out this %s recipe for '%s'!\nIt's ready in just %s minutes.\n\nGet the full recipe here: %s",
		cuisine, r.Title, readyIn, r.SourceURL,
	)

	// mailto wants %20 for spaces, not '+'
	return fmt.Sprintf("mailto:?subject=%s&body=%s",
		escapeMailto(r.Title), escapeMailto(body))
}

func escapeMailto(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Open launches the share URL in the default browser
func Open(link string) error {
	if err := browser.OpenURL(link); err != nil {
		return failure.Wrap(err)
	}
	return nil
}
