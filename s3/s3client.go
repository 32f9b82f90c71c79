package s3client

import (
	"context"

	"careers-backend/config"
	"github.com/minio/minio-go/v7"
)

var Client *minio.Client

// MakeBucket ensures the upload bucket exists; repeated calls are no-ops.
func MakeBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.BucketName
	exists, err := Client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return Client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: "us-east-1"})
}
