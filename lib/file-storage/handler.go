package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"careers-backend/config"
	s3client "careers-backend/s3"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	// Upload stores an applicant file and returns the object key kept on
	// the application record.
	Upload(ctx context.Context, userID, fileName string, file []byte) (objectKey string, err error)
	Get(ctx context.Context, objectKey string) ([]byte, error)
	// RemoveQuiet is best-effort cleanup: failures are logged at warning
	// level and never propagated.
	RemoveQuiet(ctx context.Context, objectKey string)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

func (i impl) Upload(ctx context.Context, userID, fileName string, file []byte) (string, error) {
	if s3client.Client == nil {
		return "", errors.New("file storage is not configured")
	}
	objectKey := fmt.Sprintf("applicants/%s/%s%s", userID, uuid.NewString(), path.Ext(fileName))
	_, err := s3client.Client.PutObject(ctx, config.Conf.S3.BucketName, objectKey,
		bytes.NewReader(file), int64(len(file)), minio.PutObjectOptions{})
	if err != nil {
		return "", errors.Wrap(err, "file upload failed")
	}
	return objectKey, nil
}

func (i impl) Get(ctx context.Context, objectKey string) ([]byte, error) {
	if s3client.Client == nil {
		return nil, errors.New("file storage is not configured")
	}
	object, err := s3client.Client.GetObject(ctx, config.Conf.S3.BucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "file download failed")
	}
	defer object.Close()
	data, err := io.ReadAll(object)
	if err != nil {
		return nil, errors.Wrap(err, "file read failed")
	}
	return data, nil
}

func (i impl) RemoveQuiet(ctx context.Context, objectKey string) {
	if objectKey == "" {
		return
	}
	if s3client.Client == nil {
		log.WithField("object_key", objectKey).Warn("file cleanup skipped, storage is not configured")
		return
	}
	err := s3client.Client.RemoveObject(ctx, config.Conf.S3.BucketName, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		log.WithError(err).WithField("object_key", objectKey).Warn("file cleanup failed, object left behind")
	}
}
