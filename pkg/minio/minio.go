package minio

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
)

// Connect verifies the connection by checking the configured bucket.
func (m *implMinIO) Connect(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	exists, err := m.minioClient.BucketExists(ctx, m.config.Bucket)
	if err != nil {
		m.connected = false
		return fmt.Errorf("minio connect: %w", err)
	}
	if !exists {
		m.connected = false
		return fmt.Errorf("minio connect: bucket %q does not exist", m.config.Bucket)
	}
	m.connected = true
	return nil
}

// ConnectWithRetry retries Connect with exponential backoff.
func (m *implMinIO) ConnectWithRetry(ctx context.Context, maxRetries int) error {
	var lastErr error
	for i := 0; i < maxRetries; i++ {
		if err := m.Connect(ctx); err == nil {
			return nil
		} else {
			lastErr = err
			backoff := time.Duration(1<<uint(i)) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
				continue
			}
		}
	}
	return fmt.Errorf("failed to connect after %d retries: %w", maxRetries, lastErr)
}

// HealthCheck reports whether the storage is reachable.
func (m *implMinIO) HealthCheck(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.connected {
		return ErrNotConnected
	}
	if _, err := m.minioClient.BucketExists(ctx, m.config.Bucket); err != nil {
		return fmt.Errorf("minio health check: %w", err)
	}
	return nil
}

// Close marks the client disconnected. The underlying client holds no
// long-lived connections that need closing.
func (m *implMinIO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.connected = false
	return nil
}

// ListObjects lists objects under the request prefix in the configured bucket.
func (m *implMinIO) ListObjects(ctx context.Context, req *ListRequest) ([]ObjectInfo, error) {
	maxKeys := req.MaxKeys
	if maxKeys <= 0 {
		maxKeys = DefaultMaxKeys
	}

	objectCh := m.minioClient.ListObjects(ctx, m.config.Bucket, minio.ListObjectsOptions{
		Prefix:    req.Prefix,
		Recursive: req.Recursive,
	})

	var objects []ObjectInfo
	for object := range objectCh {
		if object.Err != nil {
			return nil, fmt.Errorf("minio list objects: %w", object.Err)
		}
		// Skip folder placeholder objects.
		if strings.HasSuffix(object.Key, "/") {
			continue
		}
		objects = append(objects, ObjectInfo{
			Name:         object.Key,
			Size:         object.Size,
			ContentType:  object.ContentType,
			LastModified: object.LastModified,
		})
		if len(objects) >= maxKeys {
			break
		}
	}
	return objects, nil
}

// ObjectURL builds a public URL for an object in the configured bucket.
func (m *implMinIO) ObjectURL(objectName string) string {
	scheme := "http"
	if m.config.UseSSL {
		scheme = "https"
	}
	escaped := url.PathEscape(objectName)
	// PathEscape encodes "/" too; restore path separators.
	escaped = strings.ReplaceAll(escaped, "%2F", "/")
	return fmt.Sprintf("%s://%s/%s/%s", scheme, m.config.Endpoint, m.config.Bucket, escaped)
}
