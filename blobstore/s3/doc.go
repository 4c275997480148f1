// Package s3 provides an S3 implementation of the blobstore.Store interface.
//
// # Usage
//
//	store, err := s3.NewDefaultStore(ctx, "my-bucket", "masks/")
//	if err != nil {
//	    return err
//	}
//	err = bitstring.Save(ctx, store, "b1.xml", b)
//
// A pre-built *s3.Client (or anything satisfying Client) can be passed to
// NewStore instead.
package s3
