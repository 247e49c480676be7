// Package storage writes manifest output either to local disk or to S3,
// selected by the destination's scheme (spec.md §6.4, SPEC_FULL.md §6.4).
package storage

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Write stores data at dest. If dest has an s3:// scheme, it is written
// through the AWS SDK; otherwise it is written to local disk, creating
// any missing parent directories.
func Write(ctx context.Context, dest string, data []byte) error {
	bucket, key, isS3 := parseS3URI(dest)
	if isS3 {
		return writeS3(ctx, bucket, key, data)
	}
	return writeLocal(dest, data)
}

func writeLocal(dest string, data []byte) error {
	if dir := filepath.Dir(dest); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("storage: creating output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("storage: writing %s: %w", dest, err)
	}
	return nil
}

func writeS3(ctx context.Context, bucket, key string, data []byte) error {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("storage: loading AWS config: %w", err)
	}
	client := s3.NewFromConfig(cfg)

	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("storage: S3 PutObject to s3://%s/%s: %w", bucket, key, err)
	}
	return nil
}

// parseS3URI splits an "s3://bucket/key" URI into its bucket and key.
// isS3 is false for any other scheme, including plain local paths.
func parseS3URI(dest string) (bucket, key string, isS3 bool) {
	const prefix = "s3://"
	if !strings.HasPrefix(dest, prefix) {
		return "", "", false
	}
	rest := strings.TrimPrefix(dest, prefix)
	parts := strings.SplitN(rest, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
