// Package storage is a thin S3-compatible bucket client. The site uses it to
// read language documents from object storage and to publish static exports.
//
//	b, err := storage.New(storage.Config{Bucket: "site", AccessKey: ak, SecretKey: sk})
//	rc, err := b.Get(ctx, "assets/i18n/es.json")
//
// Errors match ErrNotFound, ErrAccessDenied, ErrReadFailed or ErrUploadFailed.
package storage
