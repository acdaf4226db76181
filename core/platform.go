package core

import "strings"

// Platform is the social network a stored link belongs to.
// The zero value is Other, so anything unrecognized lands there.
type Platform int

const (
	Other Platform = iota
	YouTube
	X
	Instagram
)

// String returns the lower-case form-field name of the platform.
func (p Platform) String() string {
	switch p {
	case YouTube:
		return "youtube"
	case X:
		return "x"
	case Instagram:
		return "instagram"
	default:
		return "other"
	}
}

// MarshalText lets a Platform travel as its name in JSON and form values.
func (p Platform) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// ParsePlatform maps a platform name to its variant. Unknown names map to Other.
func ParsePlatform(s string) Platform {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "youtube":
		return YouTube
	case "x", "twitter":
		return X
	case "instagram":
		return Instagram
	default:
		return Other
	}
}

// Icon selects the glyph rendered next to a resolved link.
type Icon string

const (
	IconYouTube   Icon = "youtube"
	IconX         Icon = "x-twitter"
	IconInstagram Icon = "instagram"
	IconLinkedIn  Icon = "linkedin"
	IconTikTok    Icon = "tiktok"
	IconFacebook  Icon = "facebook"
	IconGlobe     Icon = "globe"
)

// Label is the human readable name shown for an icon.
func (i Icon) Label() string {
	switch i {
	case IconYouTube:
		return "YouTube"
	case IconX:
		return "X"
	case IconInstagram:
		return "Instagram"
	case IconLinkedIn:
		return "LinkedIn"
	case IconTikTok:
		return "TikTok"
	case IconFacebook:
		return "Facebook"
	default:
		return "Website"
	}
}

const handlePlaceholder = "{handle}"

// profile describes how links for one site are checked and rebuilt.
type profile struct {
	domains  []string // allow-list, matched as lower-case substrings
	template string   // canonical profile URL with a {handle} placeholder
	icon     Icon
}

func (p profile) href(handle string) string {
	return strings.Replace(p.template, handlePlaceholder, handle, 1)
}

var modeled = map[Platform]profile{
	YouTube:   {domains: []string{"youtube.com"}, template: "https://youtube.com/@{handle}", icon: IconYouTube},
	X:         {domains: []string{"x.com", "twitter.com"}, template: "https://x.com/{handle}", icon: IconX},
	Instagram: {domains: []string{"instagram.com"}, template: "https://instagram.com/{handle}", icon: IconInstagram},
}

// modeledDomains is every domain owned by a modeled platform, in check order.
var modeledDomains = []string{"youtube.com", "x.com", "twitter.com", "instagram.com"}

// otherSites is checked in order against values stored as "other" links.
var otherSites = []struct {
	keyword string
	profile
}{
	{"linkedin.com", profile{template: "https://linkedin.com/in/{handle}", icon: IconLinkedIn}},
	{"tiktok.com", profile{template: "https://www.tiktok.com/@{handle}", icon: IconTikTok}},
	{"facebook.com", profile{template: "https://www.facebook.com/{handle}", icon: IconFacebook}},
}

func containsAny(lower string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(lower, n) {
			return true
		}
	}
	return false
}
