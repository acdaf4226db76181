package core

import "strings"

// ResolvedSocial is the presentable form of one stored social value.
// It is rebuilt on every render and never persisted.
type ResolvedSocial struct {
	Handle string `json:"handle"`
	Href   string `json:"href"`
	Icon   Icon   `json:"icon"`
}

// Resolve turns a stored social value into a handle, a clickable link and an
// icon. It returns nil for an empty value; callers render nothing in that case.
//
// YouTube, X and Instagram always rebuild their canonical profile URL. For
// Other the raw value is sniffed for a few well-known sites; when none match
// the raw value is used as the link unchanged.
func Resolve(p Platform, raw string) *ResolvedSocial {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	handle := ExtractHandle(raw)

	if prof, ok := modeled[p]; ok {
		return &ResolvedSocial{Handle: handle, Href: prof.href(handle), Icon: prof.icon}
	}

	lower := strings.ToLower(raw)
	for _, site := range otherSites {
		if strings.Contains(lower, site.keyword) {
			return &ResolvedSocial{Handle: handle, Href: site.href(handle), Icon: site.icon}
		}
	}

	// Unknown site: the stored value already is the link. Do not run it
	// through a template, that would append the handle a second time.
	return &ResolvedSocial{Handle: handle, Href: raw, Icon: IconGlobe}
}

// ResolveAll resolves the four social fields of a record in display order
// (youtube, x, instagram, other). Empty fields and values with no handle
// (e.g. "https://youtube.com") are skipped so no dead links are shown.
func ResolveAll(f SocialFields) []ResolvedSocial {
	fields := []struct {
		p   Platform
		raw string
	}{
		{YouTube, f.YouTube},
		{X, f.X},
		{Instagram, f.Instagram},
		{Other, f.OtherSocials},
	}
	out := make([]ResolvedSocial, 0, len(fields))
	for _, fl := range fields {
		if r := Resolve(fl.p, fl.raw); r != nil && r.Handle != "" {
			out = append(out, *r)
		}
	}
	return out
}
