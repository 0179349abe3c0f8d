package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog"
)

// S3API is the subset of the S3 client used by the S3 store.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// NewS3Client builds an S3 client from the default AWS credential chain.
func NewS3Client(ctx context.Context, region string) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return s3.NewFromConfig(cfg), nil
}

// s3Store implements Store with one S3 object per key.
type s3Store struct {
	client S3API
	bucket string
	prefix string
	logger zerolog.Logger
}

// NewS3Store creates a store that keeps each key as the object
// <prefix><key>.json in bucket.
func NewS3Store(client S3API, bucket, prefix string, logger zerolog.Logger) Store {
	return &s3Store{
		client: client,
		bucket: bucket,
		prefix: prefix,
		logger: logger.With().Str("store", "s3").Str("bucket", bucket).Logger(),
	}
}

func (s *s3Store) objectKey(key string) string {
	return s.prefix + key + ".json"
}

func (s *s3Store) Get(ctx context.Context, key string) ([]byte, error) {
	objectKey := s.objectKey(key)

	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			s.logger.Debug().Str("key", objectKey).Msg("object not found")
			return nil, ErrKeyNotFound
		}
		s.logger.Error().Err(err).Str("key", objectKey).Msg("failed to get object from S3")
		return nil, fmt.Errorf("failed to get object from S3 (bucket=%s, key=%s): %w", s.bucket, objectKey, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		s.logger.Error().Err(err).Str("key", objectKey).Msg("failed to read object body")
		return nil, fmt.Errorf("failed to read S3 object %s: %w", objectKey, err)
	}

	return data, nil
}

func (s *s3Store) Set(ctx context.Context, key string, value []byte) error {
	objectKey := s.objectKey(key)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(value),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("key", objectKey).Msg("failed to put object to S3")
		return fmt.Errorf("failed to put object to S3 (bucket=%s, key=%s): %w", s.bucket, objectKey, err)
	}

	s.logger.Debug().Str("key", objectKey).Int("bytes", len(value)).Msg("object written")
	return nil
}

// Remove deletes the object. S3 reports success for absent keys.
func (s *s3Store) Remove(ctx context.Context, key string) error {
	objectKey := s.objectKey(key)

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		s.logger.Error().Err(err).Str("key", objectKey).Msg("failed to delete object from S3")
		return fmt.Errorf("failed to delete object from S3 (bucket=%s, key=%s): %w", s.bucket, objectKey, err)
	}

	return nil
}
