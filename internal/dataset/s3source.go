package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog/log"
)

const s3Scheme = "s3://"

// S3GetObjectAPI is the subset of the S3 client used by S3Source.
type S3GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Source reads a document from an S3 object addressed as s3://bucket/key.
// Without an injected client, one is built from the default AWS credential chain on first use.
type S3Source struct {
	Bucket string
	Key    string

	once   sync.Once
	client S3GetObjectAPI
	err    error
}

// NewS3Source parses an s3:// location. A nil client defers to the default AWS configuration.
func NewS3Source(location string, client S3GetObjectAPI) (*S3Source, error) {
	bucket, key, err := parseS3Location(location)
	if err != nil {
		return nil, err
	}
	return &S3Source{Bucket: bucket, Key: key, client: client}, nil
}

func parseS3Location(location string) (string, string, error) {
	if len(location) < len(s3Scheme) || !strings.EqualFold(location[:len(s3Scheme)], s3Scheme) {
		return "", "", fmt.Errorf("invalid s3 location %q: missing s3:// prefix", location)
	}
	rest := location[len(s3Scheme):]
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || strings.Trim(key, "/") == "" {
		return "", "", fmt.Errorf("invalid s3 location %q: expected s3://bucket/key", location)
	}
	return bucket, key, nil
}

func (s *S3Source) Name() string { return s3Scheme + s.Bucket + "/" + s.Key }

func (s *S3Source) Open(ctx context.Context) (io.ReadCloser, error) {
	client, err := s.resolveClient(ctx)
	if err != nil {
		return nil, err
	}

	log.Debug().Str("bucket", s.Bucket).Str("key", s.Key).Msg("Requesting dataset object")
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.Bucket),
		Key:    aws.String(s.Key),
	})
	if err != nil {
		var nsk *s3types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, fmt.Errorf("dataset %s not found", s.Name())
		}
		return nil, fmt.Errorf("fetch dataset %s: %w", s.Name(), err)
	}
	return out.Body, nil
}

func (s *S3Source) resolveClient(ctx context.Context) (S3GetObjectAPI, error) {
	s.once.Do(func() {
		if s.client != nil {
			return
		}
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			s.err = fmt.Errorf("load aws config: %w", err)
			return
		}
		s.client = s3.NewFromConfig(cfg)
	})
	return s.client, s.err
}
