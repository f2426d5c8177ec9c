package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Nexora712/linkbio-backend/internal/modules/profile/domain"
)

type PgPageRepository struct {
	db *sqlx.DB
}

func NewPageRepository(db *sqlx.DB) *PgPageRepository {
	return &PgPageRepository{db: db}
}

func (r *PgPageRepository) Create(ctx context.Context, page *domain.Page) error {
	if page.ID == uuid.Nil {
		page.ID = uuid.New()
	}
	if page.CreatedAt.IsZero() {
		page.CreatedAt = time.Now()
	}
	page.UpdatedAt = time.Now()

	query := `
        INSERT INTO pages (
            id, user_id, display_name, bio, avatar_url, theme_id,
            theme_styles, social_links, custom_links, onboarding_done,
            created_at, updated_at
        ) VALUES (
            :id, :user_id, :display_name, :bio, :avatar_url, :theme_id,
            :theme_styles, :social_links, :custom_links, :onboarding_done,
            :created_at, :updated_at
        )`

	_, err := r.db.NamedExecContext(ctx, query, page)
	return err
}

func (r *PgPageRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Page, error) {
	page := &domain.Page{}

	query := `SELECT * FROM pages WHERE user_id = $1`
	err := r.db.GetContext(ctx, page, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPageNotFound
		}
		return nil, err
	}
	return page, nil
}

func (r *PgPageRepository) Update(ctx context.Context, page *domain.Page) error {
	page.UpdatedAt = time.Now()

	query := `
        UPDATE pages
        SET display_name = :display_name,
            bio = :bio,
            avatar_url = :avatar_url,
            theme_id = :theme_id,
            theme_styles = :theme_styles,
            social_links = :social_links,
            custom_links = :custom_links,
            onboarding_done = :onboarding_done,
            updated_at = :updated_at
        WHERE id = :id AND user_id = :user_id`

	result, err := r.db.NamedExecContext(ctx, query, page)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrPageNotFound
	}
	return nil
}
