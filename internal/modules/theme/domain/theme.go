package domain

// DefaultThemeID is returned by the resolver whenever an identifier is
// unknown. Stale identifiers are expected (a theme can be removed from the
// catalog after a user selected it), so fallback is not an error.
const DefaultThemeID = "minimal"

// Styles is the denormalized visual snapshot a theme exposes to the editor's
// live preview. It is replaced wholesale on theme change, never merged.
type Styles struct {
	Background      string `json:"background"`
	FontFamily      string `json:"fontFamily"`
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	BorderRadius    string `json:"borderRadius"`
	BackgroundImage string `json:"backgroundImage"`
}

// Bundle is a fully resolved theme: preview tokens plus the standalone CSS
// text emitted into static exports.
type Bundle struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Styles Styles `json:"styles"`
	CSS    string `json:"-"`
}

// Info describes a selectable catalog entry without its CSS payload. Styles
// is included so the editor can preview and snapshot a selection without
// resolving the full bundle.
type Info struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Premium bool   `json:"premium"`
	Styles  Styles `json:"styles"`
}
