package minio

import (
	"context"
	"testing"

	"github.com/hupe1980/bitstring/blobstore"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMinioStore_Integration requires a running MinIO instance.
// Skip if not available.
func TestMinioStore_Integration(t *testing.T) {
	endpoint := "localhost:9000"
	accessKey := "minioadmin"
	secretKey := "minioadmin"
	bucket := "test-bitstring"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false,
	})
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}

	ctx := context.Background()

	// Check if MinIO is reachable
	_, err = client.ListBuckets(ctx)
	if err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	// Ensure bucket exists
	exists, err := client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		err = client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{})
		require.NoError(t, err)
	}

	store := NewStore(client, bucket, "test-prefix/")

	// Put and Get
	data := []byte("<BitString><size>4</size><count>4</count><bits>1010</bits></BitString>")
	require.NoError(t, store.Put(ctx, "b1.xml", data))

	got, err := store.Get(ctx, "b1.xml")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	// Delete
	require.NoError(t, store.Delete(ctx, "b1.xml"))

	_, err = store.Get(ctx, "b1.xml")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}
