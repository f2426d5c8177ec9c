package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	exportdomain "github.com/Nexora712/linkbio-backend/internal/modules/export/domain"
	"github.com/Nexora712/linkbio-backend/internal/modules/profile/domain"
	"github.com/Nexora712/linkbio-backend/internal/modules/profile/infrastructure/persistence/postgres"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(sqlDB, "sqlmock"), mock, func() { _ = sqlDB.Close() }
}

func TestPgPageRepository_Create(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := postgres.NewPageRepository(db)
	ctx := context.Background()

	page := domain.NewPage(uuid.New())
	page.DisplayName = "Jane"

	mock.ExpectExec("INSERT INTO pages").WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, repo.Create(ctx, page))
	assert.NotEqual(t, uuid.Nil, page.ID)

	mock.ExpectExec("INSERT INTO pages").WillReturnError(assert.AnError)
	require.Error(t, repo.Create(ctx, page))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgPageRepository_GetByUserID(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := postgres.NewPageRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	pageID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "display_name", "bio", "avatar_url", "theme_id", "theme_styles",
		"social_links", "custom_links", "onboarding_done", "created_at", "updated_at",
	}).AddRow(
		pageID, userID, "Jane", "Designer", "", "dark",
		[]byte(`{"background":"#111418","primaryColor":"#ffffff"}`),
		[]byte(`{"github":{"enabled":true,"url":"https://github.com/jane"}}`),
		[]byte(`[{"id":"l1","title":"Portfolio","url":"https://jane.dev","order":0}]`),
		true, now, now,
	)
	mock.ExpectQuery(`SELECT \* FROM pages WHERE user_id = \$1`).WithArgs(userID).WillReturnRows(rows)

	page, err := repo.GetByUserID(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, pageID, page.ID)
	assert.Equal(t, "dark", page.ThemeID)
	assert.Equal(t, "#111418", page.ThemeStyles.Background)
	assert.True(t, page.OnboardingDone)

	// JSONB columns round-trip through the Scanner implementations
	require.Len(t, page.SocialLinks, 1)
	assert.Equal(t, "https://github.com/jane", page.SocialLinks[exportdomain.PlatformGitHub].URL)
	require.Len(t, page.CustomLinks, 1)
	assert.Equal(t, "Portfolio", page.CustomLinks[0].Title)

	mock.ExpectQuery(`SELECT \* FROM pages WHERE user_id = \$1`).WillReturnError(sql.ErrNoRows)
	_, err = repo.GetByUserID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrPageNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgPageRepository_Update(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	repo := postgres.NewPageRepository(db)
	ctx := context.Background()

	page := domain.NewPage(uuid.New())
	page.DisplayName = "Jane"

	mock.ExpectExec("UPDATE pages").WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Update(ctx, page))

	mock.ExpectExec("UPDATE pages").WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.Update(ctx, page)
	assert.ErrorIs(t, err, domain.ErrPageNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
