// Package source reads the JSON documents used to seed the database, either
// from a local directory or from an S3 compatible bucket.
package source

//go:generate go run go.uber.org/mock/mockgen -source=./source.go -destination=../mocks/source_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"os"
	"rooming/config"
	"rooming/infras/otel"
	"rooming/infras/s3"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

const (
	DriverFile = "file"
	DriverS3   = "s3"
)

var ErrNotFound = errors.New("source document not found")

type Loader interface {
	Read(ctx context.Context, name string) ([]byte, error)
	Location() string
}

// New picks the loader configured by DATA_SOURCE_DRIVER. Unknown drivers fall back to the file loader.
func New(cfg *config.Config, otel otel.Otel) Loader {
	switch cfg.DataSource.Driver {
	case DriverS3:
		return NewS3Loader(s3.New(cfg, otel), cfg.DataSource.S3.Bucket, cfg.DataSource.S3.Prefix)
	case DriverFile:
	default:
		log.Warn().Str("driver", cfg.DataSource.Driver).Msg("unknown data source driver, using file")
	}

	return NewFileLoader(afero.NewBasePathFs(afero.NewOsFs(), cfg.DataSource.Dir), cfg.DataSource.Dir)
}

type fileLoader struct {
	fs  afero.Fs
	dir string
}

func NewFileLoader(fs afero.Fs, dir string) Loader {
	return &fileLoader{fs: fs, dir: dir}
}

func (l *fileLoader) Read(_ context.Context, name string) ([]byte, error) {
	data, err := afero.ReadFile(l.fs, name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}

		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return data, nil
}

func (l *fileLoader) Location() string {
	return l.dir
}

type s3Loader struct {
	client s3.S3
	bucket string
	prefix string
}

func NewS3Loader(client s3.S3, bucket, prefix string) Loader {
	return &s3Loader{client: client, bucket: bucket, prefix: prefix}
}

func (l *s3Loader) Read(ctx context.Context, name string) ([]byte, error) {
	data, err := l.client.GetObject(ctx, l.bucket, l.prefix, name)
	if err != nil {
		if errors.Is(err, s3.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}

		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	return data, nil
}

func (l *s3Loader) Location() string {
	return fmt.Sprintf("s3://%s/%s", l.bucket, l.prefix)
}
