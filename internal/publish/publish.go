// Package publish writes rendered pages to their destination.
//
// A destination is either a local path or an s3://bucket/key URL:
//
//	p := publish.New(publish.Options{Region: "eu-west-1"})
//	err := p.Publish(ctx, "s3://site/index.html", page)
package publish

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/arbor/internal/errors"
)

// ContentType is the content type of published pages.
const ContentType = "text/html; charset=utf-8"

// ObjectPutter is the subset of the S3 client used for publishing.
type ObjectPutter interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Options configures the S3 client.
type Options struct {
	Region string

	// Endpoint overrides the S3 endpoint. Path-style addressing is used when
	// it is set, as S3-compatible stores usually require.
	Endpoint string

	// Client replaces the S3 client entirely.
	Client ObjectPutter
}

// Publisher writes pages to files or S3 objects.
type Publisher struct {
	opts   Options
	client ObjectPutter
}

// New creates a publisher. The S3 client is created on first use.
func New(opts Options) *Publisher {
	return &Publisher{opts: opts, client: opts.Client}
}

// Target is a parsed destination.
type Target struct {
	Bucket string
	Key    string
	Path   string
}

// IsS3 reports whether the target is an S3 object.
func (t Target) IsS3() bool { return t.Bucket != "" }

// ParseTarget parses dest.
func ParseTarget(dest string) (Target, error) {
	rest, ok := strings.CutPrefix(dest, "s3://")
	if !ok {
		if dest == "" {
			return Target{}, errors.New("E161").WithDetail("No destination given.")
		}
		return Target{Path: dest}, nil
	}
	bucket, key, _ := strings.Cut(rest, "/")
	if bucket == "" || key == "" || strings.HasSuffix(key, "/") {
		return Target{}, errors.New("E161").
			WithDetail("S3 destinations must have the form s3://bucket/key, got " + dest + ".")
	}
	return Target{Bucket: bucket, Key: key}, nil
}

// Publish writes body to dest.
func (p *Publisher) Publish(ctx context.Context, dest string, body []byte) error {
	t, err := ParseTarget(dest)
	if err != nil {
		return err
	}
	if !t.IsS3() {
		return writeFile(t.Path, body)
	}

	if p.client == nil {
		p.client = newClient(p.opts)
	}
	_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(t.Bucket),
		Key:         aws.String(t.Key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(ContentType),
	})
	if err != nil {
		return errors.New("E161").Wrap(err)
	}
	return nil
}

func newClient(opts Options) *s3.Client {
	o := s3.Options{
		Region:      opts.Region,
		Credentials: aws.NewCredentialsCache(aws.CredentialsProviderFunc(envCredentials)),
	}
	if opts.Endpoint != "" {
		o.BaseEndpoint = aws.String(opts.Endpoint)
		o.UsePathStyle = true
	}
	return s3.New(o)
}

// envCredentials reads the standard AWS credential variables.
func envCredentials(context.Context) (aws.Credentials, error) {
	id, secret := os.Getenv("AWS_ACCESS_KEY_ID"), os.Getenv("AWS_SECRET_ACCESS_KEY")
	if id == "" || secret == "" {
		return aws.Credentials{}, errors.New("E161").
			WithDetail("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set to publish to S3.")
	}
	return aws.Credentials{
		AccessKeyID:     id,
		SecretAccessKey: secret,
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "Environment",
	}, nil
}

// writeFile replaces path atomically.
func writeFile(path string, body []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.New("E161").Wrap(err)
	}
	f, err := os.CreateTemp(dir, ".arbor-*")
	if err != nil {
		return errors.New("E161").Wrap(err)
	}
	tmp := f.Name()
	if _, err := f.Write(body); err != nil {
		f.Close()
		os.Remove(tmp)
		return errors.New("E161").Wrap(err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return errors.New("E161").Wrap(err)
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		os.Remove(tmp)
		return errors.New("E161").Wrap(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.New("E161").Wrap(err)
	}
	return nil
}
