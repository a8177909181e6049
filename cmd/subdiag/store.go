package main

import (
	"context"
	"fmt"

	"github.com/dwhensley/subdiag/blobstore"
	miniostore "github.com/dwhensley/subdiag/blobstore/minio"
	s3store "github.com/dwhensley/subdiag/blobstore/s3"
	"github.com/dwhensley/subdiag/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func openStore(ctx context.Context, sc config.StoreConfig) (blobstore.BlobStore, error) {
	switch sc.Kind {
	case config.StoreLocal:
		return blobstore.NewLocalStore(sc.Root), nil
	case config.StoreMemory:
		return blobstore.NewMemoryStore(), nil
	case config.StoreMinio:
		creds := credentials.NewEnvMinio()
		if sc.AccessKey != "" {
			creds = credentials.NewStaticV4(sc.AccessKey, sc.SecretKey, "")
		}
		client, err := minio.New(sc.Endpoint, &minio.Options{
			Creds:  creds,
			Secure: !sc.Insecure,
			Region: sc.Region,
		})
		if err != nil {
			return nil, err
		}
		return miniostore.NewStore(client, sc.Bucket, sc.Prefix), nil
	case config.StoreS3:
		opts := []s3store.Option{s3store.WithPrefix(sc.Prefix)}
		if sc.Region != "" {
			opts = append(opts, s3store.WithRegion(sc.Region))
		}
		if sc.Endpoint != "" {
			opts = append(opts, s3store.WithEndpoint(sc.Endpoint))
		}
		store, err := s3store.New(ctx, sc.Bucket, opts...)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown store kind %q", sc.Kind)
	}
}
