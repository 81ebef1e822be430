package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/unicompare/unicompare-api/model"
)

// SpacesConfig holds the connection details for an S3-compatible bucket
// (DigitalOcean Spaces or plain S3) that stores the catalog object.
type SpacesConfig struct {
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Endpoint  string
	Key       string
}

// SpacesSource fetches a universities.json object from object storage
// once at startup. Useful when the catalog is published by an external
// pipeline rather than seeded into Postgres.
type SpacesSource struct {
	s3Client *s3.S3
	bucket   string
	key      string
}

// NewSpacesSource creates a catalog source for the configured bucket
func NewSpacesSource(config SpacesConfig) (*SpacesSource, error) {
	sess, err := session.NewSession(&aws.Config{
		Credentials: credentials.NewStaticCredentials(
			config.AccessKey,
			config.SecretKey,
			"",
		),
		Endpoint:         aws.String(config.Endpoint),
		Region:           aws.String(config.Region),
		S3ForcePathStyle: aws.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Spaces session: %w", err)
	}

	key := config.Key
	if key == "" {
		key = "universities.json"
	}

	return &SpacesSource{
		s3Client: s3.New(sess),
		bucket:   config.Bucket,
		key:      key,
	}, nil
}

func (s *SpacesSource) Name() string { return "spaces" }

func (s *SpacesSource) Load(ctx context.Context) ([]model.University, error) {
	result, err := s.s3Client.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog object %s/%s: %w", s.bucket, s.key, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog object: %w", err)
	}

	var records []model.University
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode catalog object: %w", err)
	}
	return records, nil
}
