package loader

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/remaimber-it/mcquiz/internal/domain/questionbank"
)

// ObjectStorageConfig holds the S3-compatible endpoint used for s3:// sources.
type ObjectStorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
}

// ObjectGetter is the subset of *minio.Client used by ObjectLoader.
type ObjectGetter interface {
	GetObject(ctx context.Context, bucket, key string, opts minio.GetObjectOptions) (*minio.Object, error)
}

// ObjectLoader reads a question document from an S3-compatible bucket.
type ObjectLoader struct {
	client ObjectGetter
	bucket string
	key    string
}

var _ Loader = (*ObjectLoader)(nil)

func NewObjectLoader(client ObjectGetter, bucket, key string) *ObjectLoader {
	return &ObjectLoader{client: client, bucket: bucket, key: key}
}

// NewMinioClient builds a client for cfg.
func NewMinioClient(cfg ObjectStorageConfig) (*minio.Client, error) {
	return minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
}

func (l *ObjectLoader) source() string {
	return "s3://" + l.bucket + "/" + l.key
}

func (l *ObjectLoader) Load(ctx context.Context) (*questionbank.QuestionSet, error) {
	obj, err := l.client.GetObject(ctx, l.bucket, l.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, &LoadError{Source: l.source(), Reason: "get object failed", Wrapped: err}
	}
	defer obj.Close()

	// GetObject is lazy; errors such as NoSuchKey surface on the first read.
	set, err := Decode(io.LimitReader(obj, MaxDocumentSize), FormatFromName(l.key))
	if err != nil {
		return nil, &LoadError{Source: l.source(), Reason: "invalid document", Wrapped: err}
	}
	return set, nil
}
