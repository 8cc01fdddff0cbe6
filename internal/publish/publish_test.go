package publish

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	bucket, key, contentType string
	body                     []byte
	err                      error
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.bucket = aws.ToString(in.Bucket)
	f.key = aws.ToString(in.Key)
	f.contentType = aws.ToString(in.ContentType)
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.body = body
	return &s3.PutObjectOutput{}, nil
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		dest    string
		want    Target
		wantErr bool
	}{
		{dest: "out/index.html", want: Target{Path: "out/index.html"}},
		{dest: "s3://site/index.html", want: Target{Bucket: "site", Key: "index.html"}},
		{dest: "s3://site/a/b.html", want: Target{Bucket: "site", Key: "a/b.html"}},
		{dest: "s3://site", wantErr: true},
		{dest: "s3://site/dir/", wantErr: true},
		{dest: "s3:///key", wantErr: true},
		{dest: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.dest, func(t *testing.T) {
			got, err := ParseTarget(tt.dest)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "E161")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Bucket != "", got.IsS3())
		})
	}
}

func TestPublishFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "index.html")
	p := New(Options{})

	require.NoError(t, p.Publish(context.Background(), path, []byte("<p>one</p>")))
	require.NoError(t, p.Publish(context.Background(), path, []byte("<p>two</p>")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<p>two</p>", string(got))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestPublishS3(t *testing.T) {
	fake := &fakeS3{}
	p := New(Options{Client: fake})

	require.NoError(t, p.Publish(context.Background(), "s3://site/pages/index.html", []byte("<p>hi</p>")))

	assert.Equal(t, "site", fake.bucket)
	assert.Equal(t, "pages/index.html", fake.key)
	assert.Equal(t, ContentType, fake.contentType)
	assert.Equal(t, "<p>hi</p>", string(fake.body))
}

func TestPublishS3Error(t *testing.T) {
	boom := stderrors.New("access denied")
	p := New(Options{Client: &fakeS3{err: boom}})

	err := p.Publish(context.Background(), "s3://site/index.html", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "E161")
}

func TestNewClient(t *testing.T) {
	c := newClient(Options{Region: "eu-west-1", Endpoint: "http://localhost:9000"})
	o := c.Options()
	assert.Equal(t, "eu-west-1", o.Region)
	assert.Equal(t, "http://localhost:9000", aws.ToString(o.BaseEndpoint))
	assert.True(t, o.UsePathStyle)
}

func TestEnvCredentials(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "")
	_, err := envCredentials(context.Background())
	require.Error(t, err)

	t.Setenv("AWS_ACCESS_KEY_ID", "id")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "secret")
	creds, err := envCredentials(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "id", creds.AccessKeyID)
	assert.Equal(t, "secret", creds.SecretAccessKey)
}
