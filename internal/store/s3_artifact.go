// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/MKhiriev/go-report-keeper/internal/config"
	"github.com/MKhiriev/go-report-keeper/internal/logger"
	"github.com/MKhiriev/go-report-keeper/internal/utils"
)

// objectClient is the part of an S3 client the artifact storage needs.
type objectClient interface {
	bucketExists(ctx context.Context, bucket string) (bool, error)
	makeBucket(ctx context.Context, bucket, region string) error
	putObject(ctx context.Context, bucket, key string, content io.Reader, contentType string) error
	getObject(ctx context.Context, bucket, key string) (io.ReadCloser, error)
	removeObject(ctx context.Context, bucket, key string) error
}

// s3ArtifactStorage keeps artifacts as objects of a single bucket. Object
// keys have the same shape as the locations of the file storage.
type s3ArtifactStorage struct {
	client objectClient
	bucket string
	uuid   *utils.UUIDGenerator
	logger *logger.Logger
}

// NewS3ArtifactStorage connects to an S3-compatible endpoint and makes sure
// the bucket exists.
func NewS3ArtifactStorage(ctx context.Context, cfg config.S3, logger *logger.Logger) (ArtifactStorage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		logger.Err(err).Str("func", "NewS3ArtifactStorage").Msg("error creating minio client")
		return nil, fmt.Errorf("init minio: %w", err)
	}

	return newS3ArtifactStorage(ctx, &minioClient{client: client}, cfg, logger)
}

func newS3ArtifactStorage(ctx context.Context, client objectClient, cfg config.S3, logger *logger.Logger) (*s3ArtifactStorage, error) {
	storage := &s3ArtifactStorage{
		client: client,
		bucket: cfg.Bucket,
		uuid:   utils.NewUUIDGenerator(),
		logger: logger,
	}

	if err := storage.ensureBucket(ctx, cfg.Region); err != nil {
		logger.Err(err).Str("func", "NewS3ArtifactStorage").Str("bucket", cfg.Bucket).Msg("error preparing bucket")
		return nil, err
	}

	logger.Debug().Str("bucket", cfg.Bucket).Msg("creating s3 artifact storage")
	return storage, nil
}

// ensureBucket makes sure the bucket exists before use.
func (s *s3ArtifactStorage) ensureBucket(ctx context.Context, region string) error {
	exists, err := s.client.bucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("check bucket %s: %w", s.bucket, err)
	}
	if exists {
		return nil
	}

	if err := s.client.makeBucket(ctx, s.bucket, region); err != nil {
		return fmt.Errorf("make bucket %s: %w", s.bucket, err)
	}
	return nil
}

// Store uploads content in one PutObject call. S3 only exposes an object
// once the upload completed, so partial content is never visible.
func (s *s3ArtifactStorage) Store(ctx context.Context, userID int64, originalName string, content io.Reader) (string, error) {
	key := artifactLocation(userID, s.uuid.Generate(), originalName)

	contentType := mime.TypeByExtension(safeExtension(originalName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := s.client.putObject(ctx, s.bucket, key, content, contentType); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "s3ArtifactStorage.Store").Str("key", key).Msg("error uploading artifact")
		return "", fmt.Errorf("upload object: %w", err)
	}

	return key, nil
}

func (s *s3ArtifactStorage) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if location == "" {
		return nil, ErrInvalidArtifactLocation
	}

	obj, err := s.client.getObject(ctx, s.bucket, location)
	if errors.Is(err, ErrArtifactNotFound) {
		return nil, err
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "s3ArtifactStorage.Open").Str("key", location).Msg("error getting artifact")
		return nil, fmt.Errorf("get object: %w", err)
	}

	return obj, nil
}

// Delete removes the object. S3 treats deleting a missing key as success.
func (s *s3ArtifactStorage) Delete(ctx context.Context, location string) error {
	if location == "" {
		return ErrInvalidArtifactLocation
	}

	if err := s.client.removeObject(ctx, s.bucket, location); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "s3ArtifactStorage.Delete").Str("key", location).Msg("error removing artifact")
		return fmt.Errorf("remove object: %w", err)
	}

	return nil
}

// minioClient adapts *minio.Client to objectClient.
type minioClient struct {
	client *minio.Client
}

func (m *minioClient) bucketExists(ctx context.Context, bucket string) (bool, error) {
	return m.client.BucketExists(ctx, bucket)
}

func (m *minioClient) makeBucket(ctx context.Context, bucket, region string) error {
	return m.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region})
}

func (m *minioClient) putObject(ctx context.Context, bucket, key string, content io.Reader, contentType string) error {
	_, err := m.client.PutObject(ctx, bucket, key, content, -1, minio.PutObjectOptions{ContentType: contentType})
	return err
}

// getObject stats the object first because minio only reports a missing key
// on the first read.
func (m *minioClient) getObject(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	obj, err := m.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}

	if _, err := obj.Stat(); err != nil {
		obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrArtifactNotFound
		}
		return nil, err
	}

	return obj, nil
}

func (m *minioClient) removeObject(ctx context.Context, bucket, key string) error {
	return m.client.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{})
}
