package application

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"net/http"
	"sort"

	"github.com/Nexora712/linkbio-backend/internal/modules/export/domain"
	themedomain "github.com/Nexora712/linkbio-backend/internal/modules/theme/domain"
)

// ArchiveImageName is the fixed filename the packager stores a profile image
// under and the multi-file document references.
const ArchiveImageName = "profile.jpg"

// Renderer turns a builder snapshot into the export artifacts. It is a pure
// function of its inputs: identical snapshot and theme produce byte-identical
// HTML, CSS and JS.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces the structured multi-file form: an HTML document that links
// styles.css and script.js, plus those two files' contents. withImage is false
// when the packager could not resolve an image; the document then falls back
// to the placeholder block instead of referencing a file that is not there.
func (r *Renderer) Render(snap domain.Snapshot, theme themedomain.Bundle, withImage bool) (domain.Artifact, error) {
	var imageSrc template.URL
	if withImage && snap.Profile.Image != nil {
		imageSrc = template.URL(ArchiveImageName)
	}

	html, err := r.execute(buildPageData(snap, imageSrc))
	if err != nil {
		return domain.Artifact{}, err
	}

	return domain.Artifact{
		HTML: html,
		CSS:  theme.CSS + "\n" + baseCSS,
		JS:   pageJS,
	}, nil
}

// RenderInline produces the single-file clipboard form: every stylesheet
// inlined into one <style> block, the script inlined, and a binary profile
// image embedded as a data URI. iconCSS is the (best-effort inlined) icon
// font stylesheet text; it is prepended so the pasted document carries its
// own icons.
func (r *Renderer) RenderInline(snap domain.Snapshot, theme themedomain.Bundle, iconCSS string) (string, error) {
	data := buildPageData(snap, inlineImageSrc(snap.Profile.Image))
	data.Inline = true
	data.InlineCSS = template.CSS(iconCSS + "\n" + theme.CSS + "\n" + baseCSS)
	data.InlineJS = template.JS(pageJS)

	return r.execute(data)
}

func (r *Renderer) execute(data pageData) (string, error) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}
	return buf.String(), nil
}

func inlineImageSrc(img *domain.Image) template.URL {
	if img == nil {
		return ""
	}
	if len(img.Data) > 0 {
		contentType := http.DetectContentType(img.Data)
		encoded := base64.StdEncoding.EncodeToString(img.Data)
		return template.URL("data:" + contentType + ";base64," + encoded)
	}
	return template.URL(img.URL)
}

func buildPageData(snap domain.Snapshot, imageSrc template.URL) pageData {
	name := snap.Profile.DisplayNameOrDefault()

	data := pageData{
		Title:       name + " | Link in Bio",
		Description: snap.Profile.BioOrDefault(),
		DisplayName: name,
		Bio:         snap.Profile.BioOrDefault(),
		ImageSrc:    imageSrc,
	}

	// Social icons in fixed platform order, not toggle order.
	for _, platform := range domain.PlatformOrder {
		link, ok := snap.SocialLinks[platform]
		if !ok || !link.Renderable(platform) {
			continue
		}
		meta := platform.Meta()
		data.Socials = append(data.Socials, socialView{
			URL:   link.URL,
			Label: meta.Label,
			Icon:  meta.Icon,
		})
	}

	links := make([]domain.CustomLink, 0, len(snap.CustomLinks))
	for _, l := range snap.CustomLinks {
		if l.Renderable() {
			links = append(links, l)
		}
	}
	sort.SliceStable(links, func(i, j int) bool { return links[i].Order < links[j].Order })

	for _, l := range links {
		data.Links = append(data.Links, linkView{
			Title:       l.Title,
			URL:         l.URL,
			Description: l.Description,
		})
	}

	return data
}
