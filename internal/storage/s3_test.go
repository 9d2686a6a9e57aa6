package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	cfg "github.com/templui/lenscard/internal/config"
)

func TestPublicBaseURL(t *testing.T) {
	assert.Equal(t, "https://cards.s3.eu-west-1.amazonaws.com",
		PublicBaseURL(S3Config{Bucket: "cards", Region: "eu-west-1"}))
	assert.Equal(t, "http://localhost:9000/cards",
		PublicBaseURL(S3Config{Bucket: "cards", Endpoint: "http://localhost:9000/"}))
}

func TestNewWithoutBucketIsNotConfigured(t *testing.T) {
	_, err := New(context.Background(), &cfg.Config{S3Region: "us-east-1"})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestURLJoinsObjectKey(t *testing.T) {
	s := &S3Storage{publicURL: "https://cdn.example/cards"}
	assert.Equal(t, "https://cdn.example/cards/cards/a.lens/dark-1.html", s.URL("cards/a.lens/dark-1.html"))
}
