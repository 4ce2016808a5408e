package storage

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/legalpulse/survey-api/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (f *fakePutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	if params.Body != nil {
		f.body, _ = io.ReadAll(params.Body)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestClient_Upload(t *testing.T) {
	// Setup
	putter := &fakePutter{}
	client := newClient(putter, "exports", "https://cdn.example.com/", "archives")

	// Execute
	url, err := client.Upload(context.Background(), "archives/a.csv", []byte("id\n1\n"), ContentTypeCSV)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/archives/a.csv", url)
	assert.Equal(t, "exports", aws.ToString(putter.input.Bucket))
	assert.Equal(t, "archives/a.csv", aws.ToString(putter.input.Key))
	assert.Equal(t, ContentTypeCSV, aws.ToString(putter.input.ContentType))
	assert.Equal(t, int64(5), aws.ToInt64(putter.input.ContentLength))
	assert.Equal(t, "id\n1\n", string(putter.body))
}

func TestClient_UploadError(t *testing.T) {
	client := newClient(&fakePutter{err: errors.New("access denied")}, "exports", "https://cdn.example.com", "")

	_, err := client.Upload(context.Background(), "a.csv", []byte("x"), ContentTypeCSV)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestClient_ExportKey(t *testing.T) {
	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	assert.Equal(t, "exports/lawyer-surveys-20260304T050607Z.csv",
		newClient(nil, "b", "", "/exports/").ExportKey("lawyer-surveys", at))
	assert.Equal(t, "lawyer-surveys-20260304T050607Z.csv",
		newClient(nil, "b", "", "").ExportKey("lawyer-surveys", at))
}

func TestDefaultBaseURL(t *testing.T) {
	assert.Equal(t, "https://storage.example.net/exports", defaultBaseURL("https://storage.example.net/", "exports", "eu-1"))
	assert.Equal(t, "https://exports.s3.eu-west-1.amazonaws.com", defaultBaseURL("", "exports", "eu-west-1"))
}

func TestNewClient_RequiresConfiguration(t *testing.T) {
	_, err := NewClient(config.StorageConfig{BucketName: "exports"})
	assert.Error(t, err)

	client, err := NewClient(config.StorageConfig{
		BucketName:      "exports",
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		Endpoint:        "https://storage.example.net",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://storage.example.net/exports", client.baseURL)
}
