package storage

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	cs "github.com/webtor-io/common-services"
	"github.com/webtor-io/lazymap"
	"golang.org/x/sync/errgroup"
)

const (
	bucketFlag = "catalog-bucket"

	// SignedURLExpire is how long a presigned GET URL stays valid.
	SignedURLExpire = 7 * 24 * time.Hour
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   bucketFlag,
			Usage:  "s3 bucket for catalog media",
			EnvVar: "CATALOG_BUCKET",
		},
	)
}

// Storage wraps the S3 bucket that holds posters, trailers and video
// files. Presigned URLs are cached per storage key with a TTL well below
// the URL expiry, so no stale URL outlives its validity.
type Storage struct {
	bucket string
	s3     *cs.S3Client
	urls   *lazymap.LazyMap[string]
}

// New returns nil when no bucket is configured. Callers treat a nil
// storage as a configuration error on first use.
func New(c *cli.Context, s3Cl *cs.S3Client) *Storage {
	bucket := c.String(bucketFlag)
	if bucket == "" || s3Cl == nil {
		return nil
	}
	return &Storage{
		bucket: bucket,
		s3:     s3Cl,
		urls: lazymap.New[string](&lazymap.Config{
			Expire:      time.Hour,
			ErrorExpire: 10 * time.Second,
		}),
	}
}

// SignedURL returns a time-limited read URL for the storage key.
func (s *Storage) SignedURL(key string) (string, error) {
	return s.urls.Get(key, func() (string, error) {
		req, _ := s.s3.Get().GetObjectRequest(&s3.GetObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(key),
		})
		u, err := req.Presign(SignedURLExpire)
		if err != nil {
			return "", errors.Wrapf(err, "failed to presign url for key %v", key)
		}
		return u, nil
	})
}

// DeleteKeys removes the objects in parallel. Missing keys are not an
// error, any other failure is surfaced.
func (s *Storage) DeleteKeys(ctx context.Context, keys []string) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, key := range keys {
		g.Go(func() error {
			_, err := s.s3.Get().DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
				Bucket: aws.String(s.bucket),
				Key:    aws.String(key),
			})
			if err != nil {
				if awsErr, ok := err.(awserr.Error); ok && awsErr.Code() == s3.ErrCodeNoSuchKey {
					log.Warnf("storage key %v already gone", key)
					return nil
				}
				return errors.Wrapf(err, "failed to delete storage key %v", key)
			}
			return nil
		})
	}
	return g.Wait()
}
