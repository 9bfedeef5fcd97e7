package deploys

import (
	"bytes"
	"context"
	"fmt"
	"io"

	apmaws "github.com/aragon/apmrelease/internal/aws"
	"github.com/aragon/apmrelease/internal/cliutil"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3API is the subset of the S3 client used by S3Store.
type S3API interface {
	GetObject(context.Context, *s3.GetObjectInput, ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(context.Context, *s3.PutObjectInput, ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Store keeps records as objects addressed by s3://bucket/key locations.
type S3Store struct {
	Client S3API
}

func (s S3Store) Load(ctx context.Context, location string) ([]byte, error) {
	bucket, key, ok := SplitS3URI(location)
	if !ok {
		return nil, fmt.Errorf("invalid S3 location %q", location)
	}

	out, err := s.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: cliutil.Ptr(bucket),
		Key:    cliutil.Ptr(key),
	})
	if err != nil {
		classified := apmaws.ClassifyError(err)
		if classified.Kind == apmaws.ErrorKindNotFound {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, location)
		}
		return nil, fmt.Errorf("download %s: %w", location, classified)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", location, err)
	}
	return data, nil
}

func (s S3Store) Save(ctx context.Context, location string, data []byte) error {
	bucket, key, ok := SplitS3URI(location)
	if !ok {
		return fmt.Errorf("invalid S3 location %q", location)
	}

	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      cliutil.Ptr(bucket),
		Key:         cliutil.Ptr(key),
		Body:        bytes.NewReader(data),
		ContentType: cliutil.Ptr("application/yaml"),
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", location, apmaws.ClassifyError(err))
	}
	return nil
}
