package application

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"github.com/Nexora712/linkbio-backend/internal/modules/filestorage/domain"
)

// Avatars are normalized to a bounded square JPEG before hosting so the
// export pipeline and the editor preview always work with the same shape.
const (
	maxAvatarDimension = 512
	avatarJPEGQuality  = 85
)

type AvatarService struct {
	store domain.BlobStore
}

func NewAvatarService(store domain.BlobStore) *AvatarService {
	return &AvatarService{store: store}
}

// UploadAvatar decodes, normalizes, and hosts a user's avatar, returning its
// public URL. The key is derived from the user id, so re-uploading replaces
// the previous avatar without leaving orphaned objects.
func (s *AvatarService) UploadAvatar(ctx context.Context, userID uuid.UUID, r io.Reader) (string, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode avatar: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxAvatarDimension || bounds.Dy() > maxAvatarDimension {
		img = imaging.Fit(img, maxAvatarDimension, maxAvatarDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(avatarJPEGQuality)); err != nil {
		return "", fmt.Errorf("encode avatar: %w", err)
	}

	key := avatarKey(userID)
	url, err := s.store.UploadFile(ctx, key, &buf, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("upload avatar: %w", err)
	}
	return url, nil
}

// DeleteAvatar removes the user's hosted avatar.
func (s *AvatarService) DeleteAvatar(ctx context.Context, userID uuid.UUID) error {
	return s.store.DeleteFile(ctx, avatarKey(userID))
}

func avatarKey(userID uuid.UUID) string {
	return fmt.Sprintf("avatars/%s.jpg", userID)
}
