package application

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/Nexora712/linkbio-backend/internal/modules/export/domain"
)

const maxImageDimension = 800

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Packager assembles the downloadable archive: the rendered artifacts, a
// templated README, a package.json stub for a local dev server, and the
// profile image when one resolved.
type Packager struct {
	client *http.Client
	logger *zap.Logger
	now    func() time.Time
}

func NewPackager(client *http.Client, logger *zap.Logger) *Packager {
	return &Packager{
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

// ResolveImage produces the JPEG bytes to embed for a profile image. Binary
// images are re-encoded directly; remote URLs are fetched first. Failure
// here is a soft failure: the caller omits the image and re-renders without
// it rather than aborting the export.
func (p *Packager) ResolveImage(ctx context.Context, img *domain.Image) ([]byte, error) {
	if img == nil {
		return nil, nil
	}

	raw := img.Data
	if len(raw) == 0 {
		if img.URL == "" {
			return nil, nil
		}
		fetched, err := p.fetchImage(ctx, img.URL)
		if err != nil {
			return nil, fmt.Errorf("fetch profile image: %w", err)
		}
		raw = fetched
	}

	decoded, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode profile image: %w", err)
	}

	bounds := decoded.Bounds()
	if bounds.Dx() > maxImageDimension || bounds.Dy() > maxImageDimension {
		decoded = imaging.Fit(decoded, maxImageDimension, maxImageDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, decoded, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, fmt.Errorf("encode profile image: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildArchive writes the export zip and returns its bytes plus the download
// filename derived from the display name. Partial archives are never
// returned: any write error fails the whole build.
func (p *Packager) BuildArchive(artifact domain.Artifact, displayName string, imageBytes []byte) ([]byte, string, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	files := []struct {
		name string
		body []byte
	}{
		{"index.html", []byte(artifact.HTML)},
		{"styles.css", []byte(artifact.CSS)},
		{"script.js", []byte(artifact.JS)},
		{"README.md", []byte(p.buildReadme(displayName))},
		{"package.json", []byte(buildPackageJSON(displayName))},
	}
	if len(imageBytes) > 0 {
		files = append(files, struct {
			name string
			body []byte
		}{ArchiveImageName, imageBytes})
	}

	for _, f := range files {
		w, err := zw.Create(f.name)
		if err != nil {
			zw.Close()
			return nil, "", fmt.Errorf("%w: create %s: %v", domain.ErrArchiveFailed, f.name, err)
		}
		if _, err := w.Write(f.body); err != nil {
			zw.Close()
			return nil, "", fmt.Errorf("%w: write %s: %v", domain.ErrArchiveFailed, f.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, "", fmt.Errorf("%w: %v", domain.ErrArchiveFailed, err)
	}

	return buf.Bytes(), Slugify(displayName) + "-linkbio.zip", nil
}

func (p *Packager) fetchImage(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func (p *Packager) buildReadme(displayName string) string {
	name := displayName
	if name == "" {
		name = "Your Name"
	}
	return fmt.Sprintf(`# %s - Link in Bio

Generated on %s.

## What's inside

- index.html   - your page
- styles.css   - the stylesheet
- script.js    - interactions
- package.json - optional local dev server
- profile.jpg  - your profile image (if one was set)

## Hosting

Upload every file in this folder to any static host (GitHub Pages, Netlify,
Vercel, or plain nginx). No build step is required.

## Preview locally

With Node.js installed:

    npx serve .

Then open the printed URL in your browser.
`, name, p.now().Format("January 2, 2006"))
}

func buildPackageJSON(displayName string) string {
	return fmt.Sprintf(`{
  "name": "%s-linkbio",
  "version": "1.0.0",
  "private": true,
  "scripts": {
    "start": "npx serve ."
  }
}
`, Slugify(displayName))
}

// Slugify lowercases s and collapses everything outside [a-z0-9] into single
// hyphens, for use in download filenames.
func Slugify(s string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(s), "-")
	slug = strings.Trim(slug, "-")
	if slug == "" {
		return "my-page"
	}
	return slug
}
