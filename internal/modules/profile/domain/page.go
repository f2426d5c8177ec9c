package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	exportdomain "github.com/Nexora712/linkbio-backend/internal/modules/export/domain"
	themedomain "github.com/Nexora712/linkbio-backend/internal/modules/theme/domain"
)

// ThemeStyles is the denormalized style snapshot stored with the theme
// selection, replaced wholesale whenever the theme changes. It keeps the
// editor preview working even after a theme leaves the catalog.
type ThemeStyles themedomain.Styles

func (t ThemeStyles) Value() (driver.Value, error) {
	return json.Marshal(t)
}

func (t *ThemeStyles) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	case nil:
		*t = ThemeStyles{}
		return nil
	default:
		return fmt.Errorf("unsupported theme_styles column type %T", src)
	}
}

// SocialLinkSet is the per-platform social link state, stored as one JSONB
// column. Entries persist regardless of validity; filtering happens at render.
type SocialLinkSet map[exportdomain.Platform]exportdomain.SocialLink

func (s SocialLinkSet) Value() (driver.Value, error) {
	if s == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(s)
}

func (s *SocialLinkSet) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	case nil:
		*s = SocialLinkSet{}
		return nil
	default:
		return fmt.Errorf("unsupported social_links column type %T", src)
	}
}

// CustomLinkList is the ordered custom link collection, stored as one JSONB
// column. Order is carried on each element, not by array position.
type CustomLinkList []exportdomain.CustomLink

func (l CustomLinkList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

func (l *CustomLinkList) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = CustomLinkList{}
		return nil
	default:
		return fmt.Errorf("unsupported custom_links column type %T", src)
	}
}

// Page is a user's single link-in-bio page: identity block, social links,
// custom links, and the selected theme.
type Page struct {
	ID             uuid.UUID      `db:"id" json:"id"`
	UserID         uuid.UUID      `db:"user_id" json:"userId"`
	DisplayName    string         `db:"display_name" json:"displayName"`
	Bio            string         `db:"bio" json:"bio"`
	AvatarURL      string         `db:"avatar_url" json:"avatarUrl"`
	ThemeID        string         `db:"theme_id" json:"themeId"`
	ThemeStyles    ThemeStyles    `db:"theme_styles" json:"themeStyles"`
	SocialLinks    SocialLinkSet  `db:"social_links" json:"socialLinks"`
	CustomLinks    CustomLinkList `db:"custom_links" json:"customLinks"`
	OnboardingDone bool           `db:"onboarding_done" json:"onboardingDone"`
	CreatedAt      time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updatedAt"`
}

// NewPage returns the blank page a user starts with.
func NewPage(userID uuid.UUID) *Page {
	now := time.Now()
	return &Page{
		ID:          uuid.New(),
		UserID:      userID,
		ThemeID:     "minimal",
		SocialLinks: SocialLinkSet{},
		CustomLinks: CustomLinkList{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Snapshot converts the stored page into the immutable form the export
// pipeline consumes.
func (p *Page) Snapshot() exportdomain.Snapshot {
	var image *exportdomain.Image
	if p.AvatarURL != "" {
		image = &exportdomain.Image{URL: p.AvatarURL}
	}
	return exportdomain.Snapshot{
		Profile: exportdomain.Profile{
			DisplayName: p.DisplayName,
			Bio:         p.Bio,
			Image:       image,
		},
		SocialLinks: p.SocialLinks,
		CustomLinks: p.CustomLinks,
		ThemeID:     p.ThemeID,
	}
}

// NextLinkOrder returns the order value for a newly appended custom link.
func (p *Page) NextLinkOrder() int {
	next := 0
	for _, l := range p.CustomLinks {
		if l.Order >= next {
			next = l.Order + 1
		}
	}
	return next
}
