package application

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	exportdomain "github.com/Nexora712/linkbio-backend/internal/modules/export/domain"
	"github.com/Nexora712/linkbio-backend/internal/modules/profile/domain"
	themedomain "github.com/Nexora712/linkbio-backend/internal/modules/theme/domain"
)

// MaxCustomLinks caps how many custom links a page can hold.
const MaxCustomLinks = 50

type UpdateProfileInput struct {
	DisplayName *string `json:"displayName"`
	Bio         *string `json:"bio"`
	ThemeID     *string `json:"themeId"`
}

type SocialLinkInput struct {
	URL     string `json:"url"`
	Enabled bool   `json:"enabled"`
}

type CustomLinkInput struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// ThemeStyler supplies the style snapshot stored alongside a theme
// selection. Satisfied by the theme resolver.
type ThemeStyler interface {
	StylesFor(id string) themedomain.Styles
}

type PageService struct {
	repo   domain.PageRepository
	themes ThemeStyler
	logger *zap.Logger
}

func NewPageService(repo domain.PageRepository, themes ThemeStyler, logger *zap.Logger) *PageService {
	return &PageService{repo: repo, themes: themes, logger: logger}
}

// GetPage returns the user's page, provisioning a blank one on first access.
// Registration creates the row eagerly; this covers accounts that predate
// that, and federated sign-ins that skipped it.
func (s *PageService) GetPage(ctx context.Context, userID uuid.UUID) (*domain.Page, error) {
	page, err := s.repo.GetByUserID(ctx, userID)
	if err == nil {
		return page, nil
	}
	if !errors.Is(err, domain.ErrPageNotFound) {
		return nil, err
	}

	page = domain.NewPage(userID)
	page.ThemeStyles = domain.ThemeStyles(s.themes.StylesFor(page.ThemeID))
	if err := s.repo.Create(ctx, page); err != nil {
		return nil, err
	}
	s.logger.Info("provisioned blank page", zap.String("user_id", userID.String()))
	return page, nil
}

// UpdateProfile applies partial edits to the identity block and theme
// selection. Nil fields are left untouched. An unknown theme id is stored
// as-is; the resolver falls back to the default at render time.
func (s *PageService) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.Page, error) {
	page, err := s.GetPage(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.DisplayName != nil {
		page.DisplayName = *input.DisplayName
	}
	if input.Bio != nil {
		page.Bio = *input.Bio
	}
	if input.ThemeID != nil {
		page.ThemeID = *input.ThemeID
		// the stored snapshot is replaced wholesale, never merged
		page.ThemeStyles = domain.ThemeStyles(s.themes.StylesFor(page.ThemeID))
	}

	if err := s.repo.Update(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}

// SetSocialLink stores one platform's link state. Draft values are accepted
// even when the URL does not match the platform's domain; only structurally
// broken URLs are rejected. Render-time filtering decides visibility.
func (s *PageService) SetSocialLink(ctx context.Context, userID uuid.UUID, platform exportdomain.Platform, input SocialLinkInput) (*domain.Page, error) {
	if !exportdomain.IsKnownPlatform(platform) {
		return nil, domain.ErrUnknownPlatform
	}
	if !exportdomain.IsValidURL(input.URL) {
		return nil, domain.ErrInvalidURL
	}

	page, err := s.GetPage(ctx, userID)
	if err != nil {
		return nil, err
	}

	if page.SocialLinks == nil {
		page.SocialLinks = domain.SocialLinkSet{}
	}
	page.SocialLinks[platform] = exportdomain.SocialLink{
		URL:     input.URL,
		Enabled: input.Enabled,
	}

	if err := s.repo.Update(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}

// AddCustomLink appends a link at the end of the list. Empty titles are
// allowed as drafts; they are filtered out at render time.
func (s *PageService) AddCustomLink(ctx context.Context, userID uuid.UUID, input CustomLinkInput) (*domain.Page, error) {
	if !exportdomain.IsValidURL(input.URL) {
		return nil, domain.ErrInvalidURL
	}

	page, err := s.GetPage(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(page.CustomLinks) >= MaxCustomLinks {
		return nil, domain.ErrTooManyLinks
	}

	page.CustomLinks = append(page.CustomLinks, exportdomain.CustomLink{
		ID:          uuid.NewString(),
		Title:       input.Title,
		URL:         input.URL,
		Description: input.Description,
		Order:       page.NextLinkOrder(),
	})

	if err := s.repo.Update(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}

// UpdateCustomLink edits an existing link in place, keeping its order.
func (s *PageService) UpdateCustomLink(ctx context.Context, userID uuid.UUID, linkID string, input CustomLinkInput) (*domain.Page, error) {
	if !exportdomain.IsValidURL(input.URL) {
		return nil, domain.ErrInvalidURL
	}

	page, err := s.GetPage(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range page.CustomLinks {
		if page.CustomLinks[i].ID == linkID {
			page.CustomLinks[i].Title = input.Title
			page.CustomLinks[i].URL = input.URL
			page.CustomLinks[i].Description = input.Description
			found = true
			break
		}
	}
	if !found {
		return nil, domain.ErrLinkNotFound
	}

	if err := s.repo.Update(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}

// DuplicateCustomLink copies an existing link to the end of the list with a
// fresh id and the next order value.
func (s *PageService) DuplicateCustomLink(ctx context.Context, userID uuid.UUID, linkID string) (*domain.Page, error) {
	page, err := s.GetPage(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(page.CustomLinks) >= MaxCustomLinks {
		return nil, domain.ErrTooManyLinks
	}

	var source *exportdomain.CustomLink
	for i := range page.CustomLinks {
		if page.CustomLinks[i].ID == linkID {
			source = &page.CustomLinks[i]
			break
		}
	}
	if source == nil {
		return nil, domain.ErrLinkNotFound
	}

	copied := *source
	copied.ID = uuid.NewString()
	copied.Order = page.NextLinkOrder()
	page.CustomLinks = append(page.CustomLinks, copied)

	if err := s.repo.Update(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}

// RemoveCustomLink deletes a link and compacts the remaining order values.
func (s *PageService) RemoveCustomLink(ctx context.Context, userID uuid.UUID, linkID string) (*domain.Page, error) {
	page, err := s.GetPage(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := page.CustomLinks[:0]
	found := false
	for _, l := range page.CustomLinks {
		if l.ID == linkID {
			found = true
			continue
		}
		kept = append(kept, l)
	}
	if !found {
		return nil, domain.ErrLinkNotFound
	}

	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Order < kept[j].Order })
	for i := range kept {
		kept[i].Order = i
	}
	page.CustomLinks = kept

	if err := s.repo.Update(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}

// ReorderLinks rewrites order values from the given id sequence. Ids not on
// the page are ignored; links missing from the sequence keep their relative
// order and move to the end.
func (s *PageService) ReorderLinks(ctx context.Context, userID uuid.UUID, ids []string) (*domain.Page, error) {
	page, err := s.GetPage(ctx, userID)
	if err != nil {
		return nil, err
	}

	position := make(map[string]int, len(ids))
	next := 0
	for _, id := range ids {
		if _, seen := position[id]; seen {
			continue
		}
		position[id] = next
		next++
	}

	sort.SliceStable(page.CustomLinks, func(i, j int) bool {
		return page.CustomLinks[i].Order < page.CustomLinks[j].Order
	})
	for i := range page.CustomLinks {
		if _, ok := position[page.CustomLinks[i].ID]; !ok {
			position[page.CustomLinks[i].ID] = next
			next++
		}
	}
	for i := range page.CustomLinks {
		page.CustomLinks[i].Order = position[page.CustomLinks[i].ID]
	}
	sort.SliceStable(page.CustomLinks, func(i, j int) bool {
		return page.CustomLinks[i].Order < page.CustomLinks[j].Order
	})

	if err := s.repo.Update(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}

// SetAvatar stores the hosted avatar URL produced by the upload flow.
func (s *PageService) SetAvatar(ctx context.Context, userID uuid.UUID, url string) (*domain.Page, error) {
	page, err := s.GetPage(ctx, userID)
	if err != nil {
		return nil, err
	}
	page.AvatarURL = url
	if err := s.repo.Update(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}

// CompleteOnboarding marks the first-run flow finished. Idempotent.
func (s *PageService) CompleteOnboarding(ctx context.Context, userID uuid.UUID) (*domain.Page, error) {
	page, err := s.GetPage(ctx, userID)
	if err != nil {
		return nil, err
	}
	if page.OnboardingDone {
		return page, nil
	}
	page.OnboardingDone = true
	if err := s.repo.Update(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}
