package application

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

const (
	iconCSSCacheKey = "export:icon-css:inlined"
	iconCSSCacheTTL = 12 * time.Hour
	maxFontFetchers = 4
)

var cssURLPattern = regexp.MustCompile(`url\(\s*['"]?([^'")]+)['"]?\s*\)`)

// InlineResult is the outcome of the icon-font inlining stage. The stage is
// advisory: Inlined reports whether the stylesheet text is self-contained,
// and CSS always holds something usable.
type InlineResult struct {
	CSS     string
	Inlined bool
}

// FontInliner fetches the third-party icon stylesheet and rewrites every
// font-file reference into an embedded data URI so a pasted document has no
// external icon dependency. Any fetch failure degrades to the original
// remote reference instead of failing the export.
type FontInliner struct {
	client *http.Client
	redis  *redis.Client
	cssURL string
	logger *zap.Logger
}

func NewFontInliner(client *http.Client, redisClient *redis.Client, cssURL string, logger *zap.Logger) *FontInliner {
	return &FontInliner{
		client: client,
		redis:  redisClient,
		cssURL: cssURL,
		logger: logger,
	}
}

// Inline returns the icon stylesheet with font assets embedded. Results are
// cached in Redis so repeated clipboard exports do not refetch fonts.
func (f *FontInliner) Inline(ctx context.Context) InlineResult {
	if f.redis != nil {
		if cached, err := f.redis.Get(ctx, iconCSSCacheKey).Result(); err == nil && cached != "" {
			return InlineResult{CSS: cached, Inlined: true}
		}
	}

	raw, err := f.fetchText(ctx, f.cssURL)
	if err != nil {
		f.logger.Warn("icon stylesheet fetch failed, keeping remote import",
			zap.String("url", f.cssURL), zap.Error(err))
		return InlineResult{CSS: fmt.Sprintf("@import url(%q);", f.cssURL), Inlined: false}
	}

	rewritten, complete := f.embedFontAssets(ctx, raw)

	if complete && f.redis != nil {
		if err := f.redis.Set(ctx, iconCSSCacheKey, rewritten, iconCSSCacheTTL).Err(); err != nil {
			f.logger.Debug("icon css cache write failed", zap.Error(err))
		}
	}

	return InlineResult{CSS: rewritten, Inlined: true}
}

// embedFontAssets fetches every url(...) referenced by the stylesheet in a
// bounded pool and substitutes base64 data URIs. A failed asset keeps its
// original URL. The second return reports whether every asset embedded.
func (f *FontInliner) embedFontAssets(ctx context.Context, css string) (string, bool) {
	refs := map[string]string{} // original ref -> resolved absolute URL
	for _, m := range cssURLPattern.FindAllStringSubmatch(css, -1) {
		ref := m[1]
		if strings.HasPrefix(ref, "data:") || strings.HasPrefix(ref, "#") {
			continue
		}
		abs, err := f.resolveRef(ref)
		if err != nil {
			continue
		}
		refs[ref] = abs
	}

	var mu sync.Mutex
	embedded := map[string]string{}
	complete := true

	p := pool.New().WithMaxGoroutines(maxFontFetchers)
	for ref, abs := range refs {
		p.Go(func() {
			dataURI, err := f.fetchAsDataURI(ctx, abs)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				f.logger.Debug("font asset fetch failed, keeping remote url",
					zap.String("url", abs), zap.Error(err))
				complete = false
				return
			}
			embedded[ref] = dataURI
		})
	}
	p.Wait()

	rewritten := cssURLPattern.ReplaceAllStringFunc(css, func(match string) string {
		ref := cssURLPattern.FindStringSubmatch(match)[1]
		if dataURI, ok := embedded[ref]; ok {
			return "url(" + dataURI + ")"
		}
		return match
	})

	return rewritten, complete
}

func (f *FontInliner) resolveRef(ref string) (string, error) {
	base, err := url.Parse(f.cssURL)
	if err != nil {
		return "", err
	}
	rel, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(rel).String(), nil
}

func (f *FontInliner) fetchText(ctx context.Context, rawURL string) (string, error) {
	body, err := f.fetch(ctx, rawURL)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (f *FontInliner) fetchAsDataURI(ctx context.Context, rawURL string) (string, error) {
	body, err := f.fetch(ctx, rawURL)
	if err != nil {
		return "", err
	}
	mime := fontMimeType(rawURL)
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(body), nil
}

func (f *FontInliner) fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

func fontMimeType(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "application/octet-stream"
	}
	switch strings.ToLower(path.Ext(u.Path)) {
	case ".woff2":
		return "font/woff2"
	case ".woff":
		return "font/woff"
	case ".ttf":
		return "font/ttf"
	case ".otf":
		return "font/otf"
	case ".eot":
		return "application/vnd.ms-fontobject"
	case ".svg":
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}
