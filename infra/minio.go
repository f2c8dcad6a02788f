package infra

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/minio/madmin-go/v3"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/videomotion/video-motion-api/config"
)

// Storage folders inside the bucket, one per asset kind.
const (
	FolderAvatars    = "avatars"
	FolderCovers     = "covers"
	FolderVideos     = "videos"
	FolderThumbnails = "thumbnails"
)

type MinioClient struct {
	Client    *minio.Client
	Admin     *madmin.AdminClient
	Bucket    string
	PublicURL string
}

func InitMinioClient(cfg *config.EnvConfig) *MinioClient {
	endpoint := cfg.Minio.Endpoint
	if endpoint == "" {
		panic("MinIO endpoint is not configured")
	}

	if cfg.Minio.AccessKey == "" || cfg.Minio.SecretKey == "" {
		panic("MinIO credentials are not configured")
	}

	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Minio.AccessKey, cfg.Minio.SecretKey, ""),
		Secure: cfg.Minio.UseSSL,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize MinIO client: %v", err))
	}

	madminClient, err := madmin.New(endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.UseSSL)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize MinIO admin client: %v", err))
	}

	client := &MinioClient{
		Client:    minioClient,
		Admin:     madminClient,
		Bucket:    cfg.Minio.Bucket,
		PublicURL: cfg.Minio.PublicURL,
	}

	if err := client.ensureBucket(context.Background()); err != nil {
		panic(fmt.Sprintf("Failed to ensure MinIO bucket: %v", err))
	}

	log.Println("Connected to MinIO:", endpoint)

	return client
}

func (m *MinioClient) ensureBucket(ctx context.Context) error {
	exists, err := m.Client.BucketExists(ctx, m.Bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return m.Client.MakeBucket(ctx, m.Bucket, minio.MakeBucketOptions{})
}

// UploadObject streams data into the bucket under folder/key and returns
// the public URL of the stored object.
func (m *MinioClient) UploadObject(ctx context.Context, objectKey string, data io.Reader, size int64, contentType string) (string, error) {
	if objectKey == "" {
		return "", fmt.Errorf("object key cannot be empty")
	}

	opts := minio.PutObjectOptions{ContentType: contentType}
	if _, err := m.Client.PutObject(ctx, m.Bucket, objectKey, data, size, opts); err != nil {
		return "", fmt.Errorf("failed to upload object %s: %w", objectKey, err)
	}

	return m.ObjectURL(objectKey), nil
}

func (m *MinioClient) RemoveObject(ctx context.Context, objectKey string) error {
	if objectKey == "" {
		return fmt.Errorf("object key cannot be empty")
	}

	err := m.Client.RemoveObject(ctx, m.Bucket, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to remove object %s: %w", objectKey, err)
	}
	return nil
}

func (m *MinioClient) ObjectURL(objectKey string) string {
	return fmt.Sprintf("%s/%s/%s", m.PublicURL, m.Bucket, objectKey)
}

// StorageInfo reports server state for the healthcheck endpoint.
func (m *MinioClient) StorageInfo(ctx context.Context) (madmin.InfoMessage, error) {
	return m.Admin.ServerInfo(ctx)
}
