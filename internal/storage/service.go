package storage

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Service uploads rendered report PDFs to object storage and hands out
// time-limited download links. Presigned URLs go through an explicit
// PresignCache instead of a package-level token variable so tests can
// inject a clock and multiple credential sets can coexist.
type Service interface {
	UploadReport(ctx context.Context, objectName string, pdf []byte) error
	ReportURL(ctx context.Context, objectName string) (string, error)
	DeleteReport(ctx context.Context, objectName string) error
	EnsureBucketExists(ctx context.Context) error
}

type minioService struct {
	client  *minio.Client
	bucket  string
	presign *PresignCache
	expiry  time.Duration
}

func NewMinioService(endpoint, accessKey, secretKey, bucket string, useSSL bool, presign *PresignCache) (Service, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, err
	}
	return &minioService{
		client:  client,
		bucket:  bucket,
		presign: presign,
		expiry:  24 * time.Hour,
	}, nil
}

func (m *minioService) UploadReport(ctx context.Context, objectName string, pdf []byte) error {
	_, err := m.client.PutObject(ctx, m.bucket, objectName, bytes.NewReader(pdf), int64(len(pdf)), minio.PutObjectOptions{
		ContentType: "application/pdf",
	})
	if err != nil {
		return fmt.Errorf("failed to upload report %s: %w", objectName, err)
	}
	// A fresh upload invalidates any link cached for the old object.
	m.presign.Invalidate(objectName)
	return nil
}

func (m *minioService) ReportURL(ctx context.Context, objectName string) (string, error) {
	return m.presign.Get(ctx, objectName, m.expiry, func(ctx context.Context) (string, error) {
		url, err := m.client.PresignedGetObject(ctx, m.bucket, objectName, m.expiry, nil)
		if err != nil {
			return "", err
		}
		return url.String(), nil
	})
}

func (m *minioService) DeleteReport(ctx context.Context, objectName string) error {
	m.presign.Invalidate(objectName)
	return m.client.RemoveObject(ctx, m.bucket, objectName, minio.RemoveObjectOptions{})
}

func (m *minioService) EnsureBucketExists(ctx context.Context) error {
	found, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return err
	}
	if !found {
		return m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{})
	}
	return nil
}
