package core

import (
	"net/url"
	"regexp"
	"strings"
)

var absoluteURL = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*://`)

// bareDomains are looked for, in order, in values that are not absolute URLs.
var bareDomains = []struct {
	keyword string
	prefix  *regexp.Regexp
}{
	{"youtube.com", regexp.MustCompile(`(?i)(?:www\.)?youtube\.com/`)},
	{"x.com", regexp.MustCompile(`(?i)(?:www\.)?x\.com/`)},
	{"instagram.com", regexp.MustCompile(`(?i)(?:www\.)?instagram\.com/`)},
}

// ExtractHandle pulls the username out of a raw social value. It accepts bare
// handles ("@foo", "foo"), scheme-less links ("youtube.com/foo") and full URLs.
// Anything it cannot make sense of comes back as the trimmed input.
func ExtractHandle(raw string) string {
	cleaned := strings.TrimLeft(strings.TrimSpace(raw), "@")
	if cleaned == "" {
		return ""
	}
	if absoluteURL.MatchString(cleaned) {
		return handleFromURL(cleaned)
	}

	lower := strings.ToLower(cleaned)
	for _, d := range bareDomains {
		if !strings.Contains(lower, d.keyword) {
			continue
		}
		// first keyword hit decides; no trailing slash means nothing to cut
		loc := d.prefix.FindStringIndex(cleaned)
		if loc == nil {
			return cleaned
		}
		// the rest is a path on that site; pick the segment the URL form would
		return handleFromPath(d.keyword, cleaned[loc[1]:])
	}
	return cleaned
}

func handleFromURL(s string) string {
	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		return s
	}
	return handleFromPath(strings.ToLower(u.Hostname()), u.Path)
}

// handleFromPath applies the per-site segment rule to a path on host.
func handleFromPath(host, path string) string {
	segments := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })

	var handle string
	switch {
	case strings.Contains(host, "youtube"):
		if i := strings.LastIndex(path, "@"); i >= 0 {
			handle = strings.TrimRight(path[i+1:], "/")
		} else {
			handle = last(segments)
		}
	case strings.Contains(host, "x.com"), strings.Contains(host, "twitter"):
		handle = first(segments)
	case strings.Contains(host, "instagram"):
		handle = first(segments)
	default:
		handle = last(segments)
	}
	return strings.TrimLeft(handle, "@")
}

func first(parts []string) string {
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}

func last(parts []string) string {
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}
