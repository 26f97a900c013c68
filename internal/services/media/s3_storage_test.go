package media

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func TestPresignGetWithoutClient(t *testing.T) {
	storage := NewS3Storage(nil, "listings")
	if _, err := storage.PresignGet(context.Background(), "a/b.jpg", time.Minute); err == nil {
		t.Fatalf("expected error without s3 client")
	}
}

func TestPresignGetSignsObjectURL(t *testing.T) {
	client, err := minio.New("localhost:9000", &minio.Options{
		Creds:  credentials.NewStaticV4("minio", "minio123", ""),
		Secure: false,
		Region: "us-east-1",
	})
	if err != nil {
		t.Fatalf("create minio client: %v", err)
	}

	storage := NewS3Storage(client, "listings")
	signed, err := storage.PresignGet(context.Background(), "/rooms/42/cover.jpg", time.Minute)
	if err != nil {
		t.Fatalf("presign: %v", err)
	}
	if !strings.HasPrefix(signed, "http://localhost:9000/listings/rooms/42/cover.jpg?") {
		t.Fatalf("unexpected signed url: %s", signed)
	}
	if !strings.Contains(signed, "X-Amz-Signature=") {
		t.Fatalf("signed url lacks signature: %s", signed)
	}

	if _, err := storage.PresignGet(context.Background(), "  ", time.Minute); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for blank key, got %v", err)
	}
}
