package s3_test

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"studyplanner/internal/config"
	"studyplanner/internal/s3"

	"github.com/stretchr/testify/require"
)

func TestFilePresigner_PresignUpload(t *testing.T) {
	p, err := s3.NewFilePresigner(context.Background(), config.S3Config{
		Endpoint:     "http://localhost:9000",
		Region:       "us-east-1",
		BucketName:   "avatars",
		AccessKey:    "minio",
		SecretKey:    "minio-secret",
		UsePathStyle: true,
	})
	require.NoError(t, err)

	uploadURL, finalURL, err := p.PresignUpload(context.Background(), "user-avatars/1/a.jpg")
	require.NoError(t, err)
	require.Equal(t, "http://localhost:9000/avatars/user-avatars/1/a.jpg", finalURL)

	u, err := url.Parse(uploadURL)
	require.NoError(t, err)
	require.Equal(t, "localhost:9000", u.Host)
	require.True(t, strings.HasPrefix(u.Path, "/avatars/user-avatars/1/a.jpg"))
	require.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
	require.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
}

func TestFilePresigner_ObjectURLWithoutEndpoint(t *testing.T) {
	p, err := s3.NewFilePresigner(context.Background(), config.S3Config{
		Region:     "eu-west-1",
		BucketName: "avatars",
		AccessKey:  "key",
		SecretKey:  "secret",
	})
	require.NoError(t, err)
	require.Equal(t, "https://avatars.s3.amazonaws.com/k.jpg", p.ObjectURL("k.jpg"))
}
