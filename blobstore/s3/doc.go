// Package s3 provides an Amazon S3 implementation of blobstore.BlobStore.
//
// # Usage
//
//	store, err := s3.New(ctx, "diagnostics",
//	    s3.WithPrefix("reports/"),
//	    s3.WithRegion("eu-central-1"),
//	)
//
//	report, err := analyzer.AnalyzeBlob(ctx, store, "day3.txt")
//
// Credentials come from the default AWS chain (environment, shared config, IMDS).
// WithEndpoint points the store at an S3-compatible server and switches to
// path-style addressing.
//
// # Features
//
//   - Range reads, so a report is fetched with one GET
//   - Uploads through the S3 transfer manager with CRC32C checksums
//   - Automatic pagination for listing
package s3
