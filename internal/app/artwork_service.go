package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"printcraft/internal/domain"
)

var (
	// ErrUnsupportedArtwork indicates an upload that is not an image.
	ErrUnsupportedArtwork = errors.New("artwork preview must be an image")
	// ErrArtworkNotFound indicates an unknown artwork reference.
	ErrArtworkNotFound = errors.New("artwork not found")
)

const (
	artworkPrefix = "artwork/"
	// MaxArtworkBytes bounds a single preview upload.
	MaxArtworkBytes = 10 << 20
)

// ArtworkService turns uploaded preview images into opaque references. The
// rest of the system stores and echoes the reference without interpreting it.
type ArtworkService struct {
	repo domain.SnapshotRepository
}

// NewArtworkService creates an ArtworkService backed by repo.
func NewArtworkService(repo domain.SnapshotRepository) *ArtworkService {
	return &ArtworkService{repo: repo}
}

// Register stores data and returns its reference.
func (s *ArtworkService) Register(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty upload", ErrUnsupportedArtwork)
	}
	if len(data) > MaxArtworkBytes {
		return "", fmt.Errorf("%w: larger than %d bytes", ErrUnsupportedArtwork, MaxArtworkBytes)
	}
	if ct := http.DetectContentType(data); !strings.HasPrefix(ct, "image/") {
		return "", fmt.Errorf("%w: got %s", ErrUnsupportedArtwork, ct)
	}

	ref := artworkPrefix + uuid.NewString()
	if err := s.repo.Put(ctx, ref, data); err != nil {
		return "", fmt.Errorf("store artwork: %w", err)
	}
	return ref, nil
}

// Open returns the bytes and content type behind ref.
func (s *ArtworkService) Open(ctx context.Context, ref string) ([]byte, string, error) {
	if !strings.HasPrefix(ref, artworkPrefix) {
		return nil, "", ErrArtworkNotFound
	}
	data, err := s.repo.Get(ctx, ref)
	if errors.Is(err, domain.ErrSnapshotNotFound) {
		return nil, "", ErrArtworkNotFound
	}
	if err != nil {
		return nil, "", err
	}
	return data, http.DetectContentType(data), nil
}
