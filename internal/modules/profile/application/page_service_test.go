package application

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	exportdomain "github.com/Nexora712/linkbio-backend/internal/modules/export/domain"
	"github.com/Nexora712/linkbio-backend/internal/modules/profile/domain"
	themedomain "github.com/Nexora712/linkbio-backend/internal/modules/theme/domain"
)

// staticStyler returns a distinct snapshot per theme id so tests can see
// which selection produced the stored styles.
type staticStyler struct{}

func (staticStyler) StylesFor(id string) themedomain.Styles {
	return themedomain.Styles{Background: "bg-" + id, PrimaryColor: "#000000"}
}

type mockPageRepo struct {
	createFunc      func(ctx context.Context, page *domain.Page) error
	getByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.Page, error)
	updateFunc      func(ctx context.Context, page *domain.Page) error
}

func (m *mockPageRepo) Create(ctx context.Context, page *domain.Page) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, page)
	}
	return nil
}

func (m *mockPageRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Page, error) {
	return m.getByUserIDFunc(ctx, userID)
}

func (m *mockPageRepo) Update(ctx context.Context, page *domain.Page) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, page)
	}
	return nil
}

// inMemoryRepo backs mutation tests with a single page so service methods can
// read back what they wrote.
func inMemoryRepo(page *domain.Page) *mockPageRepo {
	return &mockPageRepo{
		getByUserIDFunc: func(ctx context.Context, userID uuid.UUID) (*domain.Page, error) {
			if page == nil {
				return nil, domain.ErrPageNotFound
			}
			return page, nil
		},
		createFunc: func(ctx context.Context, p *domain.Page) error {
			page = p
			return nil
		},
	}
}

func TestGetPage_ProvisionsBlankPageOnFirstAccess(t *testing.T) {
	userID := uuid.New()
	var created *domain.Page
	repo := &mockPageRepo{
		getByUserIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Page, error) {
			return nil, domain.ErrPageNotFound
		},
		createFunc: func(ctx context.Context, p *domain.Page) error {
			created = p
			return nil
		},
	}

	s := NewPageService(repo, staticStyler{}, zap.NewNop())
	page, err := s.GetPage(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, userID, page.UserID)
	assert.Equal(t, "minimal", page.ThemeID)
	assert.Equal(t, "bg-minimal", page.ThemeStyles.Background)
	assert.Empty(t, page.CustomLinks)
	assert.False(t, page.OnboardingDone)
}

func TestUpdateProfile_ThemeChangeReplacesStylesSnapshot(t *testing.T) {
	userID := uuid.New()
	page := domain.NewPage(userID)
	page.ThemeStyles = domain.ThemeStyles{Background: "bg-minimal", SecondaryColor: "#f0f0f0"}

	s := NewPageService(inMemoryRepo(page), staticStyler{}, zap.NewNop())

	themeID := "neon"
	updated, err := s.UpdateProfile(context.Background(), userID, UpdateProfileInput{ThemeID: &themeID})
	require.NoError(t, err)

	assert.Equal(t, "neon", updated.ThemeID)
	assert.Equal(t, "bg-neon", updated.ThemeStyles.Background)
	// replaced wholesale: fields absent from the new snapshot do not survive
	assert.Empty(t, updated.ThemeStyles.SecondaryColor)
}

func TestUpdateProfile_NoThemeChangeKeepsStylesSnapshot(t *testing.T) {
	userID := uuid.New()
	page := domain.NewPage(userID)
	page.ThemeStyles = domain.ThemeStyles{Background: "bg-minimal"}

	s := NewPageService(inMemoryRepo(page), staticStyler{}, zap.NewNop())

	bio := "Designer"
	updated, err := s.UpdateProfile(context.Background(), userID, UpdateProfileInput{Bio: &bio})
	require.NoError(t, err)

	assert.Equal(t, "bg-minimal", updated.ThemeStyles.Background)
}

func TestUpdateProfile_PartialUpdate(t *testing.T) {
	userID := uuid.New()
	page := domain.NewPage(userID)
	page.DisplayName = "Jane"
	page.Bio = "Designer"

	s := NewPageService(inMemoryRepo(page), staticStyler{}, zap.NewNop())

	name := "Jane Doe"
	updated, err := s.UpdateProfile(context.Background(), userID, UpdateProfileInput{DisplayName: &name})
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", updated.DisplayName)
	// untouched fields survive
	assert.Equal(t, "Designer", updated.Bio)
	assert.Equal(t, "minimal", updated.ThemeID)
}

func TestSetSocialLink_UnknownPlatform(t *testing.T) {
	s := NewPageService(inMemoryRepo(domain.NewPage(uuid.New())), staticStyler{}, zap.NewNop())

	_, err := s.SetSocialLink(context.Background(), uuid.New(), "myspace", SocialLinkInput{URL: "https://myspace.com/jane"})
	assert.ErrorIs(t, err, domain.ErrUnknownPlatform)
}

func TestSetSocialLink_AcceptsMismatchedDomainAsDraft(t *testing.T) {
	userID := uuid.New()
	s := NewPageService(inMemoryRepo(domain.NewPage(userID)), staticStyler{}, zap.NewNop())

	// a youtube URL stored under the instagram key is a valid draft; the
	// renderer simply never shows it
	page, err := s.SetSocialLink(context.Background(), userID, exportdomain.PlatformInstagram, SocialLinkInput{
		URL:     "https://youtube.com/@jane",
		Enabled: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://youtube.com/@jane", page.SocialLinks[exportdomain.PlatformInstagram].URL)
}

func TestSetSocialLink_RejectsMalformedURL(t *testing.T) {
	s := NewPageService(inMemoryRepo(domain.NewPage(uuid.New())), staticStyler{}, zap.NewNop())

	_, err := s.SetSocialLink(context.Background(), uuid.New(), exportdomain.PlatformGitHub, SocialLinkInput{URL: "ftp://github.com/jane"})
	assert.ErrorIs(t, err, domain.ErrInvalidURL)
}

func TestAddCustomLink_AppendsWithNextOrder(t *testing.T) {
	userID := uuid.New()
	page := domain.NewPage(userID)
	page.CustomLinks = domain.CustomLinkList{
		{ID: "a", Title: "First", URL: "https://a.example", Order: 0},
		{ID: "b", Title: "Second", URL: "https://b.example", Order: 1},
	}

	s := NewPageService(inMemoryRepo(page), staticStyler{}, zap.NewNop())
	updated, err := s.AddCustomLink(context.Background(), userID, CustomLinkInput{
		Title: "Third", URL: "https://c.example",
	})
	require.NoError(t, err)

	require.Len(t, updated.CustomLinks, 3)
	assert.Equal(t, 2, updated.CustomLinks[2].Order)
	assert.NotEmpty(t, updated.CustomLinks[2].ID)
}

func TestAddCustomLink_LimitReached(t *testing.T) {
	userID := uuid.New()
	page := domain.NewPage(userID)
	for i := 0; i < MaxCustomLinks; i++ {
		page.CustomLinks = append(page.CustomLinks, exportdomain.CustomLink{
			ID: uuid.NewString(), Title: "Link", URL: "https://example.com", Order: i,
		})
	}

	s := NewPageService(inMemoryRepo(page), staticStyler{}, zap.NewNop())
	_, err := s.AddCustomLink(context.Background(), userID, CustomLinkInput{Title: "One more", URL: "https://example.com"})
	assert.ErrorIs(t, err, domain.ErrTooManyLinks)
}

func TestDuplicateCustomLink_AppendsWithNextOrder(t *testing.T) {
	userID := uuid.New()
	page := domain.NewPage(userID)
	page.CustomLinks = domain.CustomLinkList{
		{ID: "a", Title: "Portfolio", URL: "https://jane.dev", Description: "My work", Order: 0},
		{ID: "b", Title: "Blog", URL: "https://blog.jane.dev", Order: 1},
	}

	s := NewPageService(inMemoryRepo(page), staticStyler{}, zap.NewNop())
	updated, err := s.DuplicateCustomLink(context.Background(), userID, "a")
	require.NoError(t, err)

	require.Len(t, updated.CustomLinks, 3)
	dup := updated.CustomLinks[2]
	assert.Equal(t, "Portfolio", dup.Title)
	assert.Equal(t, "https://jane.dev", dup.URL)
	assert.Equal(t, "My work", dup.Description)
	assert.Equal(t, 2, dup.Order)
	assert.NotEqual(t, "a", dup.ID)
}

func TestDuplicateCustomLink_NotFound(t *testing.T) {
	s := NewPageService(inMemoryRepo(domain.NewPage(uuid.New())), staticStyler{}, zap.NewNop())

	_, err := s.DuplicateCustomLink(context.Background(), uuid.New(), "ghost")
	assert.ErrorIs(t, err, domain.ErrLinkNotFound)
}

func TestUpdateCustomLink_NotFound(t *testing.T) {
	s := NewPageService(inMemoryRepo(domain.NewPage(uuid.New())), staticStyler{}, zap.NewNop())

	_, err := s.UpdateCustomLink(context.Background(), uuid.New(), "missing", CustomLinkInput{URL: "https://example.com"})
	assert.ErrorIs(t, err, domain.ErrLinkNotFound)
}

func TestRemoveCustomLink_CompactsOrders(t *testing.T) {
	userID := uuid.New()
	page := domain.NewPage(userID)
	page.CustomLinks = domain.CustomLinkList{
		{ID: "a", Title: "First", URL: "https://a.example", Order: 0},
		{ID: "b", Title: "Second", URL: "https://b.example", Order: 1},
		{ID: "c", Title: "Third", URL: "https://c.example", Order: 2},
	}

	s := NewPageService(inMemoryRepo(page), staticStyler{}, zap.NewNop())
	updated, err := s.RemoveCustomLink(context.Background(), userID, "b")
	require.NoError(t, err)

	require.Len(t, updated.CustomLinks, 2)
	assert.Equal(t, "a", updated.CustomLinks[0].ID)
	assert.Equal(t, 0, updated.CustomLinks[0].Order)
	assert.Equal(t, "c", updated.CustomLinks[1].ID)
	assert.Equal(t, 1, updated.CustomLinks[1].Order)
}

func TestReorderLinks(t *testing.T) {
	userID := uuid.New()
	newPage := func() *domain.Page {
		p := domain.NewPage(userID)
		p.CustomLinks = domain.CustomLinkList{
			{ID: "a", Title: "A", URL: "https://a.example", Order: 0},
			{ID: "b", Title: "B", URL: "https://b.example", Order: 1},
			{ID: "c", Title: "C", URL: "https://c.example", Order: 2},
		}
		return p
	}

	t.Run("full_permutation", func(t *testing.T) {
		s := NewPageService(inMemoryRepo(newPage()), staticStyler{}, zap.NewNop())
		updated, err := s.ReorderLinks(context.Background(), userID, []string{"c", "a", "b"})
		require.NoError(t, err)

		ids := []string{updated.CustomLinks[0].ID, updated.CustomLinks[1].ID, updated.CustomLinks[2].ID}
		assert.Equal(t, []string{"c", "a", "b"}, ids)
		assert.Equal(t, []int{0, 1, 2}, []int{updated.CustomLinks[0].Order, updated.CustomLinks[1].Order, updated.CustomLinks[2].Order})
	})

	t.Run("missing_ids_move_to_end_in_existing_order", func(t *testing.T) {
		s := NewPageService(inMemoryRepo(newPage()), staticStyler{}, zap.NewNop())
		updated, err := s.ReorderLinks(context.Background(), userID, []string{"c"})
		require.NoError(t, err)

		ids := []string{updated.CustomLinks[0].ID, updated.CustomLinks[1].ID, updated.CustomLinks[2].ID}
		assert.Equal(t, []string{"c", "a", "b"}, ids)
	})

	t.Run("unknown_and_duplicate_ids_ignored", func(t *testing.T) {
		s := NewPageService(inMemoryRepo(newPage()), staticStyler{}, zap.NewNop())
		updated, err := s.ReorderLinks(context.Background(), userID, []string{"b", "b", "ghost", "a", "c"})
		require.NoError(t, err)

		require.Len(t, updated.CustomLinks, 3)
		ids := []string{updated.CustomLinks[0].ID, updated.CustomLinks[1].ID, updated.CustomLinks[2].ID}
		assert.Equal(t, []string{"b", "a", "c"}, ids)
	})
}

func TestCompleteOnboarding_Idempotent(t *testing.T) {
	userID := uuid.New()
	page := domain.NewPage(userID)

	updates := 0
	repo := inMemoryRepo(page)
	repo.updateFunc = func(ctx context.Context, p *domain.Page) error {
		updates++
		return nil
	}

	s := NewPageService(repo, staticStyler{}, zap.NewNop())

	first, err := s.CompleteOnboarding(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, first.OnboardingDone)

	second, err := s.CompleteOnboarding(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, second.OnboardingDone)
	assert.Equal(t, 1, updates)
}

func TestSnapshot_MapsAvatarToImage(t *testing.T) {
	page := domain.NewPage(uuid.New())
	page.DisplayName = "Jane"
	page.AvatarURL = "https://cdn.example.com/avatar.jpg"

	snap := page.Snapshot()
	require.NotNil(t, snap.Profile.Image)
	assert.Equal(t, "https://cdn.example.com/avatar.jpg", snap.Profile.Image.URL)

	page.AvatarURL = ""
	assert.Nil(t, page.Snapshot().Profile.Image)
}
