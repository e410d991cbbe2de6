// Package dataset loads labelled feature-vector datasets.
//
// Two input formats are supported:
//
//   - idx: the big-endian image/label format used by MNIST
//     (DecodeImages, DecodeLabels). gzip, zstd and LZ4-frame compressed
//     files are detected by their magic bytes.
//   - delimited text: one record per line, numeric features followed by a
//     trailing class name (DecodeCSV).
//
// A Dataset owns its records. Normalize rescales features into [0,1],
// CountClasses enumerates labels and builds one-hot class vectors, and a
// Splitter samples training, test and validation subsets.
//
// Loader reads the same formats from a blobstore.BlobStore and reports a
// missing blob as *FileNotFoundError instead of failing the process.
//
//	loader := dataset.NewLoader(blobstore.NewLocalStore("testdata"))
//	ds, err := loader.LoadImages(ctx, "train-images-idx3-ubyte.gz")
//	if err != nil { ... }
//	if err := loader.LoadLabels(ctx, ds, "train-labels-idx1-ubyte.gz"); err != nil { ... }
//	ds.CountClasses()
//	split, err := dataset.NewSplitter(dataset.DefaultFractions).Split(ds)
package dataset
