package domain

// Platform is one of the closed set of supported social platforms.
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformTwitter   Platform = "twitter"
	PlatformLinkedIn  Platform = "linkedin"
	PlatformYouTube   Platform = "youtube"
	PlatformTikTok    Platform = "tiktok"
	PlatformGitHub    Platform = "github"
	PlatformFacebook  Platform = "facebook"
)

// PlatformOrder fixes the order social icons appear in rendered output,
// independent of how the user toggled platforms in the editor.
var PlatformOrder = []Platform{
	PlatformInstagram,
	PlatformTwitter,
	PlatformLinkedIn,
	PlatformYouTube,
	PlatformTikTok,
	PlatformGitHub,
	PlatformFacebook,
}

// PlatformMeta carries the display label and icon class for a platform.
type PlatformMeta struct {
	Label string
	Icon  string
}

var platformMeta = map[Platform]PlatformMeta{
	PlatformInstagram: {Label: "Instagram", Icon: "fa-instagram"},
	PlatformTwitter:   {Label: "Twitter", Icon: "fa-x-twitter"},
	PlatformLinkedIn:  {Label: "LinkedIn", Icon: "fa-linkedin"},
	PlatformYouTube:   {Label: "YouTube", Icon: "fa-youtube"},
	PlatformTikTok:    {Label: "TikTok", Icon: "fa-tiktok"},
	PlatformGitHub:    {Label: "GitHub", Icon: "fa-github"},
	PlatformFacebook:  {Label: "Facebook", Icon: "fa-facebook"},
}

// Meta returns the display metadata for a platform.
func (p Platform) Meta() PlatformMeta {
	return platformMeta[p]
}

// Image is a profile image in one of two forms: already hosted (URL set) or
// raw bytes captured in the builder (Data set). A nil *Image means no image
// and the renderer emits a placeholder block instead.
type Image struct {
	URL  string `json:"url,omitempty"`
	Data []byte `json:"data,omitempty"`
}

// Profile is the page owner's identity block.
type Profile struct {
	DisplayName string `json:"displayName"`
	Bio         string `json:"bio"`
	Image       *Image `json:"image,omitempty"`
}

// SocialLink is one platform entry. Disabled or invalid entries stay in
// builder state but are never rendered.
type SocialLink struct {
	Enabled bool   `json:"enabled"`
	URL     string `json:"url"`
}

// CustomLink is a user-defined outbound link. Order is explicit so reordering
// is an order write, not an array splice.
type CustomLink struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	Order       int    `json:"order"`
}

// Renderable reports whether the link passes the render-time filter:
// non-empty title and a well-formed absolute URL.
func (l CustomLink) Renderable() bool {
	return l.Title != "" && l.URL != "" && IsValidURL(l.URL)
}

// Snapshot is the builder state an export closes over at invocation time.
// Edits made while an export is in flight do not affect it.
type Snapshot struct {
	Profile     Profile                 `json:"profile"`
	SocialLinks map[Platform]SocialLink `json:"socialLinks"`
	CustomLinks []CustomLink            `json:"customLinks"`
	ThemeID     string                  `json:"themeId"`
}

// Artifact is the ephemeral result of one export invocation. It has no
// identity beyond the request that produced it.
type Artifact struct {
	HTML       string
	CSS        string
	JS         string
	Readme     string
	ImageBytes []byte
}

// DisplayNameOrDefault returns the placeholder heading for empty names.
func (p Profile) DisplayNameOrDefault() string {
	if p.DisplayName == "" {
		return "Your Name"
	}
	return p.DisplayName
}

// BioOrDefault returns the placeholder paragraph for empty bios.
func (p Profile) BioOrDefault() string {
	if p.Bio == "" {
		return "Welcome to my page"
	}
	return p.Bio
}
