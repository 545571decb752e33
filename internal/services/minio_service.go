package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"fyyur/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// ImageStore hosts venue and artist images.
type ImageStore interface {
	GeneratePresignedURL(filename, contentType string) (string, string, error)
	// RemoveImage deletes the object behind imageURL when it lives in the
	// store. Links to other hosts are ignored.
	RemoveImage(ctx context.Context, imageURL string) error
}

var ErrUnsupportedImage = errors.New("unsupported image type")

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

const (
	presignExpiry = 15 * time.Minute
	imagePrefix   = "images/"
)

// ImageExtensions lists the file extensions accepted for uploads.
func ImageExtensions() []string {
	exts := make([]string, 0, len(imageExtensions))
	for ext := range imageExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

type MinIOService struct {
	client    *minio.Client
	bucket    string
	publicURL string
	logger    *logrus.Logger
}

// NewMinIOService connects to an S3-compatible endpoint. Bucket setup errors
// are logged; uploads may still work against a bucket provisioned elsewhere.
func NewMinIOService(cfg *config.MinIOConfig, logger *logrus.Logger) (*MinIOService, error) {
	endpoint := strings.TrimPrefix(strings.TrimPrefix(cfg.Endpoint, "https://"), "http://")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client for %s: %w", endpoint, err)
	}

	s := &MinIOService{
		client:    client,
		bucket:    cfg.BucketName,
		publicURL: cfg.PublicURL,
		logger:    logger,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.ensureBucket(ctx, cfg.Region); err != nil {
		logger.WithError(err).WithField("bucket", s.bucket).Warn("Image bucket setup failed")
	}

	logger.WithFields(logrus.Fields{
		"endpoint": endpoint,
		"bucket":   s.bucket,
		"ssl":      cfg.UseSSL,
	}).Info("Image store ready")
	return s, nil
}

// ensureBucket creates the bucket if needed and lets anyone read objects
// under images/.
func (s *MinIOService) ensureBucket(ctx context.Context, region string) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket: %w", err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return fmt.Errorf("make bucket: %w", err)
		}
		s.logger.WithField("bucket", s.bucket).Info("Image bucket created")
	}

	policy, err := imageReadPolicy(s.bucket)
	if err != nil {
		return err
	}
	if err := s.client.SetBucketPolicy(ctx, s.bucket, policy); err != nil {
		return fmt.Errorf("set bucket policy: %w", err)
	}
	return nil
}

type policyStatement struct {
	Effect    string              `json:"Effect"`
	Principal map[string][]string `json:"Principal"`
	Action    []string            `json:"Action"`
	Resource  []string            `json:"Resource"`
}

type bucketPolicy struct {
	Version   string            `json:"Version"`
	Statement []policyStatement `json:"Statement"`
}

func imageReadPolicy(bucket string) (string, error) {
	b, err := json.Marshal(bucketPolicy{
		Version: "2012-10-17",
		Statement: []policyStatement{{
			Effect:    "Allow",
			Principal: map[string][]string{"AWS": {"*"}},
			Action:    []string{"s3:GetObject"},
			Resource:  []string{"arn:aws:s3:::" + bucket + "/" + imagePrefix + "*"},
		}},
	})
	if err != nil {
		return "", fmt.Errorf("encode bucket policy: %w", err)
	}
	return string(b), nil
}

// GeneratePresignedURL returns a PUT URL for uploading filename and the
// public URL the image will be served from.
func (s *MinIOService) GeneratePresignedURL(filename, contentType string) (string, string, error) {
	objectPath, err := imageObjectPath(filename, contentType)
	if err != nil {
		return "", "", err
	}

	putURL, err := s.client.PresignedPutObject(context.Background(), s.bucket, objectPath, presignExpiry)
	if err != nil {
		return "", "", fmt.Errorf("presign %s: %w", objectPath, err)
	}

	s.logger.WithFields(logrus.Fields{
		"filename": filename,
		"object":   objectPath,
	}).Debug("Presigned image upload")

	return putURL.String(), strings.TrimSuffix(s.publicURL, "/") + "/" + objectPath, nil
}

func (s *MinIOService) RemoveImage(ctx context.Context, imageURL string) error {
	objectPath, ok := objectPathFromURL(s.publicURL, imageURL)
	if !ok {
		return nil
	}

	if err := s.client.RemoveObject(ctx, s.bucket, objectPath, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove %s: %w", objectPath, err)
	}
	s.logger.WithField("object", objectPath).Info("Removed replaced image")
	return nil
}

func imageObjectPath(filename, contentType string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !imageExtensions[ext] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedImage, ext)
	}
	if contentType != "" && !strings.HasPrefix(contentType, "image/") {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedImage, contentType)
	}

	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r == ' ':
			return '-'
		}
		return -1
	}, base)

	return fmt.Sprintf("%s%s_%s%s", imagePrefix, base, uuid.New().String()[:8], ext), nil
}

// objectPathFromURL returns the object key of imageURL when it is served
// from publicBase.
func objectPathFromURL(publicBase, imageURL string) (string, bool) {
	if imageURL == "" || publicBase == "" {
		return "", false
	}
	base, err := url.Parse(strings.TrimSuffix(publicBase, "/"))
	if err != nil {
		return "", false
	}
	img, err := url.Parse(imageURL)
	if err != nil || img.Host != base.Host {
		return "", false
	}

	prefix := base.Path + "/"
	if !strings.HasPrefix(img.Path, prefix) {
		return "", false
	}
	objectPath := path.Clean(strings.TrimPrefix(img.Path, prefix))
	if objectPath == "." || strings.HasPrefix(objectPath, "..") {
		return "", false
	}
	return objectPath, true
}
