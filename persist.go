package bitstring

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/bitstring/blobstore"
)

// Save encodes b with the configured codec and writes it to store under name.
func Save(ctx context.Context, store blobstore.Store, name string, b *BitString, optFns ...Option) (err error) {
	opts := applyOptions(optFns)
	log := opts.logger.WithBlob(name).WithCodec(opts.codec.Name())

	start := time.Now()
	var n int
	defer func() {
		opts.metricsCollector.RecordSave(n, time.Since(start), err)
		log.LogSave(ctx, b, n, err)
	}()

	data, err := Encode(b, optFns...)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	if err := store.Put(ctx, name, data); err != nil {
		return fmt.Errorf("put %s: %w", name, err)
	}

	n = len(data)
	return nil
}

// Load reads the blob stored under name and decodes it with the configured codec.
func Load(ctx context.Context, store blobstore.Store, name string, optFns ...Option) (b *BitString, err error) {
	opts := applyOptions(optFns)
	log := opts.logger.WithBlob(name).WithCodec(opts.codec.Name())

	start := time.Now()
	defer func() {
		opts.metricsCollector.RecordLoad(time.Since(start), err)
		log.LogLoad(ctx, b, err)
	}()

	data, err := store.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", name, err)
	}

	b, err = Decode(data, optFns...)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return b, nil
}
