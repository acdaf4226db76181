// GORM model + DTOs shared by the JSON API and the HTML forms.

package models

import (
	"strings"
	"time"

	"github.com/Abdulwakil1/Creatorverse/core"
)

// Creator is one row of the creators table.
// Social fields hold whatever the user typed: a bare handle or a full profile URL.
type Creator struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:120;not null" json:"name"`
	Image        string    `gorm:"size:2048" json:"image"`
	Description  string    `gorm:"type:text" json:"description"`
	YouTube      string    `gorm:"column:youtube;size:255" json:"youtube"`
	X            string    `gorm:"column:x;size:255" json:"x"`
	Instagram    string    `gorm:"column:instagram;size:255" json:"instagram"`
	OtherSocials string    `gorm:"column:other_socials;size:2048" json:"other_socials"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Creator) TableName() string { return "creators" }

// Socials returns the raw social values for validation and resolution.
func (c *Creator) Socials() core.SocialFields {
	return core.SocialFields{
		YouTube:      c.YouTube,
		X:            c.X,
		Instagram:    c.Instagram,
		OtherSocials: c.OtherSocials,
	}
}

// CreateCreatorRequest is the payload of the add form and POST /api/v1/creators.
type CreateCreatorRequest struct {
	Name         string `json:"name" form:"name" binding:"required"`
	Image        string `json:"image" form:"image"`
	Description  string `json:"description" form:"description"`
	YouTube      string `json:"youtube" form:"youtube"`
	X            string `json:"x" form:"x"`
	Instagram    string `json:"instagram" form:"instagram"`
	OtherSocials string `json:"other_socials" form:"other_socials"`
}

// ToCreator builds a new, not yet persisted record with trimmed values.
func (r CreateCreatorRequest) ToCreator() *Creator {
	return &Creator{
		Name:         core.NormalizeName(r.Name),
		Image:        strings.TrimSpace(r.Image),
		Description:  strings.TrimSpace(r.Description),
		YouTube:      strings.TrimSpace(r.YouTube),
		X:            strings.TrimSpace(r.X),
		Instagram:    strings.TrimSpace(r.Instagram),
		OtherSocials: strings.TrimSpace(r.OtherSocials),
	}
}

// UpdateCreatorRequest allows partial updates: nil means "keep the stored value".
type UpdateCreatorRequest struct {
	Name         *string `json:"name,omitempty" form:"name"`
	Image        *string `json:"image,omitempty" form:"image"`
	Description  *string `json:"description,omitempty" form:"description"`
	YouTube      *string `json:"youtube,omitempty" form:"youtube"`
	X            *string `json:"x,omitempty" form:"x"`
	Instagram    *string `json:"instagram,omitempty" form:"instagram"`
	OtherSocials *string `json:"other_socials,omitempty" form:"other_socials"`
}

// ApplyTo copies every provided field onto c.
func (r UpdateCreatorRequest) ApplyTo(c *Creator) {
	if r.Name != nil {
		c.Name = core.NormalizeName(*r.Name)
	}
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	set(&c.Image, r.Image)
	set(&c.Description, r.Description)
	set(&c.YouTube, r.YouTube)
	set(&c.X, r.X)
	set(&c.Instagram, r.Instagram)
	set(&c.OtherSocials, r.OtherSocials)
}

// CreatorView is a record plus everything derived from it for display.
type CreatorView struct {
	Creator
	DisplayName string                `json:"display_name"`
	Socials     []core.ResolvedSocial `json:"socials"`
}

// NewCreatorView resolves the record's social links. Nothing is cached.
func NewCreatorView(c Creator) CreatorView {
	return CreatorView{
		Creator:     c,
		DisplayName: core.DisplayName(c.Name),
		Socials:     core.ResolveAll(c.Socials()),
	}
}

// CreatorList is the response envelope for the list endpoint.
type CreatorList struct {
	Items []CreatorView `json:"items"`
	Total int           `json:"total"`
}
