package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Nexora712/linkbio-backend/internal/modules/export/domain"
	themeapp "github.com/Nexora712/linkbio-backend/internal/modules/theme/application"
	themedomain "github.com/Nexora712/linkbio-backend/internal/modules/theme/domain"
)

// Notifier pushes export lifecycle events to the user's open builder
// sessions so the UI can reflect in-progress/success/failure states.
type Notifier interface {
	ExportStarted(userID uuid.UUID)
	ExportCompleted(userID uuid.UUID, filename string)
	ExportFailed(userID uuid.UUID, reason string)
}

// Service orchestrates the export pipeline: theme resolution, rendering,
// packaging and the re-entrancy gate. Each call operates on the snapshot it
// was handed; concurrent edits never leak into an in-flight export.
type Service struct {
	themes   *themeapp.Resolver
	renderer *Renderer
	packager *Packager
	inliner  *FontInliner
	redis    *redis.Client
	notifier Notifier
	lockTTL  time.Duration
	logger   *zap.Logger
}

func NewService(
	themes *themeapp.Resolver,
	renderer *Renderer,
	packager *Packager,
	inliner *FontInliner,
	redisClient *redis.Client,
	notifier Notifier,
	lockTTL time.Duration,
	logger *zap.Logger,
) *Service {
	return &Service{
		themes:   themes,
		renderer: renderer,
		packager: packager,
		inliner:  inliner,
		redis:    redisClient,
		notifier: notifier,
		lockTTL:  lockTTL,
		logger:   logger,
	}
}

// ExportArchive builds the downloadable zip for a snapshot. A second call
// for the same user while one is in flight returns ErrExportInProgress.
// Image resolution failures are soft: the page is rendered with the
// placeholder block instead. Archive assembly failure is hard.
func (s *Service) ExportArchive(ctx context.Context, userID uuid.UUID, snap domain.Snapshot) ([]byte, string, error) {
	release, err := s.acquireLock(ctx, userID)
	if err != nil {
		exportsTotal.WithLabelValues("archive", "rejected").Inc()
		return nil, "", err
	}
	defer release()

	if s.notifier != nil {
		s.notifier.ExportStarted(userID)
	}

	theme := s.themes.Resolve(ctx, snap.ThemeID)

	imageBytes, imgErr := s.packager.ResolveImage(ctx, snap.Profile.Image)
	if imgErr != nil {
		s.logger.Warn("profile image could not be embedded, omitting from archive",
			zap.String("user_id", userID.String()), zap.Error(imgErr))
		imageBytes = nil
	}

	artifact, err := s.renderer.Render(snap, theme, len(imageBytes) > 0)
	if err != nil {
		s.fail(userID, "render failed")
		return nil, "", err
	}

	data, filename, err := s.packager.BuildArchive(artifact, snap.Profile.DisplayName, imageBytes)
	if err != nil {
		s.fail(userID, "archive assembly failed")
		return nil, "", err
	}

	exportsTotal.WithLabelValues("archive", "success").Inc()
	if s.notifier != nil {
		s.notifier.ExportCompleted(userID, filename)
	}
	return data, filename, nil
}

// ExportInline builds the single-file clipboard document. Icon-font inlining
// is best-effort; its failure never fails the export.
func (s *Service) ExportInline(ctx context.Context, userID uuid.UUID, snap domain.Snapshot) (string, error) {
	theme := s.themes.Resolve(ctx, snap.ThemeID)

	icon := s.inliner.Inline(ctx)
	if !icon.Inlined {
		s.logger.Debug("icon fonts not inlined, document keeps remote reference",
			zap.String("user_id", userID.String()))
	}

	html, err := s.renderer.RenderInline(snap, theme, icon.CSS)
	if err != nil {
		exportsTotal.WithLabelValues("inline", "failure").Inc()
		return "", err
	}

	exportsTotal.WithLabelValues("inline", "success").Inc()
	return html, nil
}

// Catalog exposes the selectable themes for the editor's theme picker.
func (s *Service) Catalog() []themedomain.Info {
	return s.themes.Catalog()
}

func (s *Service) acquireLock(ctx context.Context, userID uuid.UUID) (func(), error) {
	if s.redis == nil {
		return func() {}, nil
	}

	key := "export:lock:" + userID.String()
	ok, err := s.redis.SetNX(ctx, key, "1", s.lockTTL).Result()
	if err != nil {
		// Redis being unavailable must not block exports; log and proceed
		// without the gate.
		s.logger.Warn("export lock unavailable", zap.Error(err))
		return func() {}, nil
	}
	if !ok {
		return nil, domain.ErrExportInProgress
	}

	return func() {
		if err := s.redis.Del(context.Background(), key).Err(); err != nil {
			s.logger.Debug("export lock release failed", zap.Error(err))
		}
	}, nil
}

func (s *Service) fail(userID uuid.UUID, reason string) {
	exportsTotal.WithLabelValues("archive", "failure").Inc()
	if s.notifier != nil {
		s.notifier.ExportFailed(userID, reason)
	}
}
