package bitstring

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/hupe1980/bitstring/blobstore"
	"github.com/hupe1980/bitstring/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	blobstore.Store
	err error
}

func (s failingStore) Put(context.Context, string, []byte) error { return s.err }

func TestSaveLoad_Memory(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	b := demoVector(t)

	require.NoError(t, Save(ctx, store, "b1.xml", b))

	raw, err := store.Get(ctx, "b1.xml")
	require.NoError(t, err)
	assert.Equal(t, "<BitString><size>8</size><count>6</count><bits>101010</bits></BitString>", string(raw))

	got, err := Load(ctx, store, "b1.xml")
	require.NoError(t, err)
	assert.Equal(t, 8, got.Cap())
	assert.Equal(t, "101010", got.String())
}

func TestSaveLoad_Local(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewLocalStore(t.TempDir())

	for _, c := range []codec.Codec{codec.XML{Indent: "  "}, codec.JSON{}, codec.GoJSON{}} {
		t.Run(c.Name(), func(t *testing.T) {
			b := MustParse("1100101")
			name := "snapshots/b." + c.Name()

			require.NoError(t, Save(ctx, store, name, b, WithCodec(c)))

			got, err := Load(ctx, store, name, WithCodec(c))
			require.NoError(t, err)
			assert.True(t, b.Equal(got))
			assert.Equal(t, b.Cap(), got.Cap())
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()

	_, err := Load(ctx, store, "missing")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	require.NoError(t, store.Put(ctx, "corrupt", []byte("<BitString><size>")))
	_, err = Load(ctx, store, "corrupt")
	assert.ErrorIs(t, err, ErrMalformedSnapshot)

	// Written as JSON, read as XML
	require.NoError(t, Save(ctx, store, "json", MustParse("1"), WithCodec(codec.JSON{})))
	_, err = Load(ctx, store, "json")
	assert.ErrorIs(t, err, ErrMalformedSnapshot)
}

func TestSaveLoad_Logging(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	store := blobstore.NewMemoryStore()
	require.NoError(t, Save(ctx, store, "b1.xml", demoVector(t), WithLogger(logger)))
	assert.Contains(t, buf.String(), `"msg":"snapshot saved"`)
	assert.Contains(t, buf.String(), `"blob":"b1.xml"`)
	assert.Contains(t, buf.String(), `"codec":"xml"`)
	assert.Contains(t, buf.String(), `"count":6`)

	buf.Reset()
	_, err := Load(ctx, store, "b1.xml", WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"msg":"snapshot loaded"`)

	buf.Reset()
	boom := errors.New("disk full")
	err = Save(ctx, failingStore{Store: store, err: boom}, "b2.xml", MustParse("1"), WithLogger(logger))
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, buf.String(), `"msg":"snapshot save failed"`)
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
}

func TestOptions_NilFallbacks(t *testing.T) {
	opts := applyOptions([]Option{WithCodec(nil), WithLogger(nil), WithMetricsCollector(nil)})
	assert.Equal(t, "xml", opts.codec.Name())
	require.NotNil(t, opts.logger)
	assert.Equal(t, NoopMetricsCollector{}, opts.metricsCollector)

	// Noop logger must be usable
	opts.logger.LogLoad(context.Background(), nil, errors.New("ignored"))
}

func TestSaveLoad_Metrics(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	mc := &BasicMetricsCollector{}

	require.NoError(t, Save(ctx, store, "b1.xml", demoVector(t), WithMetricsCollector(mc)))
	_, err := Load(ctx, store, "b1.xml", WithMetricsCollector(mc))
	require.NoError(t, err)
	_, err = Load(ctx, store, "missing", WithMetricsCollector(mc))
	require.Error(t, err)
	err = Save(ctx, failingStore{Store: store, err: errors.New("boom")}, "b2.xml", MustParse("1"), WithMetricsCollector(mc))
	require.Error(t, err)

	stats := mc.GetStats()
	assert.Equal(t, int64(2), stats.SaveCount)
	assert.Equal(t, int64(1), stats.SaveErrors)
	assert.Equal(t, int64(len("<BitString><size>8</size><count>6</count><bits>101010</bits></BitString>")), stats.SaveBytes)
	assert.Equal(t, int64(2), stats.LoadCount)
	assert.Equal(t, int64(1), stats.LoadErrors)
	assert.GreaterOrEqual(t, stats.SaveAvgNanos, int64(0))
}
