package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/hupe1980/clusterkit/blobstore"
	"github.com/hupe1980/clusterkit/blobstore/minio"
	"github.com/hupe1980/clusterkit/blobstore/s3"
)

// openStore resolves a store reference:
//
//	/data/dir, file:///data/dir      local directory
//	s3://bucket/prefix               Amazon S3 (S3_ENDPOINT overrides the endpoint)
//	minio://host:port/bucket/prefix  MinIO (MINIO_ACCESS_KEY, MINIO_SECRET_KEY, MINIO_SECURE)
func openStore(ctx context.Context, ref string) (blobstore.BlobStore, error) {
	if ref == "" {
		ref = "."
	}
	if !strings.Contains(ref, "://") {
		return blobstore.NewLocalStore(ref), nil
	}

	u, err := url.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("store %q: %w", ref, err)
	}

	switch u.Scheme {
	case "file":
		return blobstore.NewLocalStore(u.Path), nil
	case "s3":
		if u.Host == "" {
			return nil, fmt.Errorf("store %q: missing bucket", ref)
		}
		opts := []s3.Option{s3.WithPrefix(strings.TrimPrefix(u.Path, "/"))}
		if endpoint := os.Getenv("S3_ENDPOINT"); endpoint != "" {
			opts = append(opts, s3.WithEndpoint(endpoint))
		}
		return s3.New(ctx, u.Host, opts...)
	case "minio":
		bucket, prefix, _ := strings.Cut(strings.TrimPrefix(u.Path, "/"), "/")
		if u.Host == "" || bucket == "" {
			return nil, fmt.Errorf("store %q: want minio://endpoint/bucket[/prefix]", ref)
		}
		return minio.New(minio.Config{
			Endpoint:  u.Host,
			AccessKey: os.Getenv("MINIO_ACCESS_KEY"),
			SecretKey: os.Getenv("MINIO_SECRET_KEY"),
			Region:    os.Getenv("MINIO_REGION"),
			Secure:    os.Getenv("MINIO_SECURE") == "true",
		}, bucket, prefix)
	default:
		return nil, fmt.Errorf("store %q: unsupported scheme %q", ref, u.Scheme)
	}
}
