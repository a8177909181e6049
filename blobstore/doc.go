// Package blobstore provides storage for diagnostic reports.
//
// Reports are immutable text blobs addressed by name. A BlobStore opens them for
// reading, writes encoded analysis results back, and lists a prefix for batch runs.
//
// # Built-in Implementations
//
//   - LocalStore: local file system, read through mmap
//   - MemoryStore: in-process map, for tests and stdin input
//   - minio.Store: MinIO and other S3-compatible servers
//   - s3.Store: Amazon S3 with range reads and managed uploads
//
// # Custom Implementations
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	    Put(ctx, name, data) error
//	    List(ctx, prefix) ([]string, error)
//	}
//
// Cloud backends implement ReadRange so a whole report is fetched with one request:
//
//	type Blob interface {
//	    ReadAt(ctx, p, off) (int, error)
//	    ReadRange(ctx, off, len) (io.ReadCloser, error)
//	    Size() int64
//	    Close() error
//	}
package blobstore
