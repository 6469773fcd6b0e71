package storage

import (
	"context"
	"fmt"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/Kiattisakchaochata/backendTopaward/pkg/logger"
)

// Storage persists uploaded media and returns public URLs.
type Storage interface {
	Upload(ctx context.Context, localPath, folder string) (string, error)
	Destroy(ctx context.Context, fileURL string) error
	GeneratePresignedURL(filename, contentType, folder string) (*PresignedURLResponse, error)
}

type S3Storage struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

type PresignedURLResponse struct {
	UploadURL string `json:"upload_url"`
	FileURL   string `json:"file_url"`
	Key       string `json:"key"`
}

func NewS3Storage(region, bucket, accessKeyID, secretAccessKey, baseURL string) *S3Storage {
	var cfg aws.Config
	var err error

	// If credentials are provided, use them. Otherwise, use default credential chain
	if accessKeyID != "" && secretAccessKey != "" {
		cfg = aws.Config{
			Region: region,
			Credentials: credentials.NewStaticCredentialsProvider(
				accessKeyID,
				secretAccessKey,
				"",
			),
		}
	} else {
		cfg, err = config.LoadDefaultConfig(context.TODO(),
			config.WithRegion(region),
		)
		if err != nil {
			cfg = aws.Config{
				Region: region,
			}
		}
	}

	client := s3.NewFromConfig(cfg)

	return &S3Storage{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}
}

// Upload pushes a local file to the bucket under folder and returns its
// public URL. The local file is removed regardless of outcome.
func (s *S3Storage) Upload(ctx context.Context, localPath, folder string) (string, error) {
	defer os.Remove(localPath)

	file, err := os.Open(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to open upload file: %w", err)
	}
	defer file.Close()

	ext := filepath.Ext(localPath)
	key := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), ext)

	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logger.Error("Failed to upload file to S3", err, map[string]interface{}{
			"key": key,
		})
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	return s.fileURL(key), nil
}

// Destroy removes the object behind a previously returned URL. URLs not
// belonging to this bucket are ignored.
func (s *S3Storage) Destroy(ctx context.Context, fileURL string) error {
	key := s.keyFromURL(fileURL)
	if key == "" {
		return nil
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logger.Error("Failed to delete file from S3", err, map[string]interface{}{
			"key": key,
		})
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// GeneratePresignedURL generates a pre-signed PUT URL for direct browser
// uploads to a specific folder.
func (s *S3Storage) GeneratePresignedURL(filename, contentType, folder string) (*PresignedURLResponse, error) {
	ext := filepath.Ext(filename)
	key := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), ext)

	presignClient := s3.NewPresignClient(s.client)

	presignedReq, err := presignClient.PresignPutObject(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return nil, fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return &PresignedURLResponse{
		UploadURL: presignedReq.URL,
		FileURL:   s.fileURL(key),
		Key:       key,
	}, nil
}

func (s *S3Storage) fileURL(key string) string {
	if s.baseURL != "" {
		return fmt.Sprintf("%s/%s", s.baseURL, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.client.Options().Region, key)
}

func (s *S3Storage) keyFromURL(fileURL string) string {
	parsed, err := url.Parse(fileURL)
	if err != nil {
		return ""
	}

	if s.baseURL != "" && strings.HasPrefix(fileURL, s.baseURL) {
		return strings.TrimPrefix(strings.TrimPrefix(fileURL, s.baseURL), "/")
	}
	if strings.HasPrefix(parsed.Host, s.bucket+".s3.") {
		return strings.TrimPrefix(parsed.Path, "/")
	}
	return ""
}
