// Package minio provides a BlobStore backed by the MinIO client.
//
// It works with MinIO and other S3-compatible servers (Ceph, Garage, SeaweedFS)
// without pulling in the AWS SDK.
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minioblob.NewStore(client, "diagnostics", "reports/")
//	report, err := analyzer.AnalyzeBlob(ctx, store, "day3.txt")
package minio
