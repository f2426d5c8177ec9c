// Package assets carries the CSS payloads for the decorative themes. They are
// embedded in the binary but only read when a decorative theme is actually
// resolved, keeping them out of the eager theme table.
package assets

import "embed"

//go:embed *.css
var FS embed.FS
