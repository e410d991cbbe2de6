// Package minio provides a BlobStore implementation using the MinIO client.
//
// It works against MinIO and other S3-compatible servers (Ceph, Garage,
// SeaweedFS) without pulling in the AWS SDK.
//
// # Basic Usage
//
//	store, err := minio.New(minio.Config{
//	    Endpoint:  "localhost:9000",
//	    AccessKey: "minioadmin",
//	    SecretKey: "minioadmin",
//	}, "datasets", "mnist/")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ds, err := dataset.NewLoader(store).LoadImages(ctx, "train-images-idx3-ubyte")
//
// With an empty AccessKey the credentials are read from MINIO_ACCESS_KEY /
// MINIO_SECRET_KEY, then AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY.
package minio
