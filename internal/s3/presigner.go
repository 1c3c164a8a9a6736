package s3

import (
	"context"
	"strings"
	"time"

	"studyplanner/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const uploadURLExpiry = 15 * time.Minute

type FilePresigner struct {
	S3PresignClient *s3.PresignClient
	BucketName      string
	endpoint        string
}

func NewFilePresigner(ctx context.Context, cfg config.S3Config) (*FilePresigner, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	})

	return &FilePresigner{
		S3PresignClient: s3.NewPresignClient(s3Client),
		BucketName:      cfg.BucketName,
		endpoint:        cfg.Endpoint,
	}, nil
}

// PresignUpload returns a PUT URL valid for 15 minutes and the URL the object will be
// served from once uploaded.
func (p *FilePresigner) PresignUpload(ctx context.Context, objectKey string) (string, string, error) {
	request, err := p.S3PresignClient.PresignPutObject(
		ctx,
		&s3.PutObjectInput{
			Bucket: aws.String(p.BucketName),
			Key:    aws.String(objectKey),
		},
		func(opts *s3.PresignOptions) {
			opts.Expires = uploadURLExpiry
		},
	)
	if err != nil {
		return "", "", err
	}

	return request.URL, p.ObjectURL(objectKey), nil
}

func (p *FilePresigner) ObjectURL(objectKey string) string {
	if p.endpoint == "" {
		return "https://" + p.BucketName + ".s3.amazonaws.com/" + objectKey
	}
	return strings.TrimRight(p.endpoint, "/") + "/" + p.BucketName + "/" + objectKey
}
