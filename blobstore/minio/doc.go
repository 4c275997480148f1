// Package minio provides a blobstore.Store implementation using the MinIO client.
//
// Works with MinIO and other S3-compatible servers (Ceph, Garage, SeaweedFS).
//
// # Basic Usage
//
//	client, err := minio.New("localhost:9000", &minio.Options{
//	    Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
//	    Secure: false,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	store := minioblob.NewStore(client, "my-bucket", "masks/")
//	err = bitstring.Save(ctx, store, "b1.xml", b)
package minio
