package core

import "strings"

// FieldError reports the first social field that failed its domain check.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return e.Message }

// ValidateSocial reports whether raw is acceptable for the platform's field.
// An empty value is always valid because every social field is optional.
// Matching is a plain substring test, so "check out youtube.com/fake" passes
// for YouTube.
func ValidateSocial(p Platform, raw string) bool {
	if raw == "" {
		return true
	}
	prof, ok := modeled[p]
	if !ok {
		return ValidateOtherSocials(raw)
	}
	return containsAny(strings.ToLower(raw), prof.domains)
}

// ValidateOtherSocials reports whether raw can be stored as the "other" link.
// Empty is valid; anything mentioning a modeled platform's domain is not.
func ValidateOtherSocials(raw string) bool {
	if raw == "" {
		return true
	}
	return !containsAny(strings.ToLower(raw), modeledDomains)
}

// SocialFields holds the raw social values of one creator record.
type SocialFields struct {
	YouTube      string
	X            string
	Instagram    string
	OtherSocials string
}

// Validate checks youtube, x, instagram and other_socials in that order and
// returns a *FieldError for the first failure. Later fields are not looked at.
func (f SocialFields) Validate() error {
	switch {
	case !ValidateSocial(YouTube, f.YouTube):
		return &FieldError{Field: "youtube", Message: "YouTube field must contain a valid YouTube URL."}
	case !ValidateSocial(X, f.X):
		return &FieldError{Field: "x", Message: "X field must contain a valid X/Twitter URL."}
	case !ValidateSocial(Instagram, f.Instagram):
		return &FieldError{Field: "instagram", Message: "Instagram field must contain a valid Instagram URL."}
	case !ValidateOtherSocials(f.OtherSocials):
		return &FieldError{Field: "other_socials", Message: "Other Socials field cannot contain YouTube, X, or Instagram links."}
	}
	return nil
}
