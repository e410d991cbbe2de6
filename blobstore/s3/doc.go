// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("datasets/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	loader := dataset.NewLoader(store)
//	ds, err := loader.LoadCSV(ctx, "iris.csv", ",")
//
// Blobs are fetched whole with the transfer manager's concurrent ranged
// downloader and served from memory afterwards.
package s3
