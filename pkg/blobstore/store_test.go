package blobstore

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 is an in-memory API implementation.
type fakeS3 struct {
	buckets map[string]bool
	objects map[string][]byte
}

func newFakeS3() *fakeS3 {
	return &fakeS3{
		buckets: make(map[string]bool),
		objects: make(map[string][]byte),
	}
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*in.Bucket+"/"+*in.Key] = data
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[*in.Bucket+"/"+*in.Key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, *in.Bucket+"/"+*in.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeS3) HeadBucket(_ context.Context, in *s3.HeadBucketInput, _ ...func(*s3.Options)) (*s3.HeadBucketOutput, error) {
	if !f.buckets[*in.Bucket] {
		return nil, &types.NotFound{}
	}
	return &s3.HeadBucketOutput{}, nil
}

func (f *fakeS3) CreateBucket(_ context.Context, in *s3.CreateBucketInput, _ ...func(*s3.Options)) (*s3.CreateBucketOutput, error) {
	f.buckets[*in.Bucket] = true
	return &s3.CreateBucketOutput{}, nil
}

func TestEnsureBucket_CreatesOnce(t *testing.T) {
	fake := newFakeS3()
	store := NewFromAPI(fake, "documents")
	ctx := context.Background()

	require.NoError(t, store.EnsureBucket(ctx))
	assert.True(t, fake.buckets["documents"])

	// Second call is a no-op.
	require.NoError(t, store.EnsureBucket(ctx))
}

func TestPutGetDelete_RoundTrip(t *testing.T) {
	fake := newFakeS3()
	store := NewFromAPI(fake, "documents")
	ctx := context.Background()

	text := []byte("P0301 cylinder 1 misfire detected on a 2015 Civic")
	require.NoError(t, store.Put(ctx, "raw/doc-1.txt", text, "text/plain"))

	got, err := store.Get(ctx, "raw/doc-1.txt")
	require.NoError(t, err)
	assert.Equal(t, text, got)

	require.NoError(t, store.Delete(ctx, "raw/doc-1.txt"))
	_, err = store.Get(ctx, "raw/doc-1.txt")
	assert.Error(t, err)
}

func TestPut_Overwrites(t *testing.T) {
	fake := newFakeS3()
	store := NewFromAPI(fake, "documents")
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "raw/doc-1.txt", []byte("v1"), "text/plain"))
	require.NoError(t, store.Put(ctx, "raw/doc-1.txt", []byte("v2"), "text/plain"))

	got, err := store.Get(ctx, "raw/doc-1.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)
}
