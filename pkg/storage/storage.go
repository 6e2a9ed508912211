package storage

import (
	"context"
	"io"
	"mime"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Config holds S3-compatible bucket configuration.
type Config struct {
	Bucket    string `env:"STORAGE_BUCKET"`
	AccessKey string `env:"STORAGE_ACCESS_KEY"`
	SecretKey string `env:"STORAGE_SECRET_KEY"`
	// Endpoint targets MinIO, R2 and other S3-compatible services.
	Endpoint  string `env:"STORAGE_ENDPOINT"`
	Region    string `env:"STORAGE_REGION" envDefault:"us-east-1"`
	PathStyle bool   `env:"STORAGE_PATH_STYLE"`
	// Prefix is prepended to every key, e.g. "site".
	Prefix string `env:"STORAGE_PREFIX"`
}

// DefaultRegion is used when Config.Region is empty.
const DefaultRegion = "us-east-1"

func (c *Config) validate() error {
	if c.Bucket == "" || c.AccessKey == "" || c.SecretKey == "" {
		return ErrInvalidConfig
	}
	return nil
}

// Object describes a stored object.
type Object struct {
	Key         string
	ContentType string
	Size        int64
}

// Bucket reads and writes objects in a single bucket.
type Bucket struct {
	client *s3.Client
	cfg    Config
}

// New creates a Bucket client with static credentials.
func New(cfg Config) (*Bucket, error) {
	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	client := s3.New(s3.Options{}, func(o *s3.Options) {
		o.Region = cfg.Region
		o.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = cfg.PathStyle
		}
	})

	return &Bucket{client: client, cfg: cfg}, nil
}

// Key returns the full object key for name, applying the configured prefix.
func (b *Bucket) Key(name string) string {
	name = strings.TrimLeft(path.Clean("/"+name), "/")
	if b.cfg.Prefix == "" {
		return name
	}
	return strings.Trim(b.cfg.Prefix, "/") + "/" + name
}

// Get opens the object stored under name. The caller closes the reader.
// Missing objects return an error matching ErrNotFound.
func (b *Bucket) Get(ctx context.Context, name string) (io.ReadCloser, error) {
	out, err := b.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.cfg.Bucket),
		Key:    aws.String(b.Key(name)),
	})
	if err != nil {
		return nil, wrapS3Error(err, ErrReadFailed)
	}
	return out.Body, nil
}

// Head returns object metadata without downloading it.
func (b *Bucket) Head(ctx context.Context, name string) (*Object, error) {
	key := b.Key(name)
	out, err := b.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(b.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, wrapS3Error(err, ErrReadFailed)
	}
	return &Object{
		Key:         key,
		ContentType: aws.ToString(out.ContentType),
		Size:        aws.ToInt64(out.ContentLength),
	}, nil
}

// Put uploads size bytes from r under name. The content type is derived from
// the extension when contentType is empty.
func (b *Bucket) Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) (*Object, error) {
	if size == 0 {
		return nil, ErrEmptyFile
	}
	if contentType == "" {
		contentType = ContentType(name)
	}

	key := b.Key(name)
	_, err := b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(b.cfg.Bucket),
		Key:           aws.String(key),
		Body:          r,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return nil, wrapS3Error(err, ErrUploadFailed)
	}
	return &Object{Key: key, ContentType: contentType, Size: size}, nil
}

// ContentType guesses a MIME type from the file extension.
func ContentType(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
