package deploys

import (
	"path"
	"path/filepath"
	"strings"
)

const (
	// AppSuffix is appended to an application name to form its aPM repository key.
	AppSuffix = ".aragonpm.eth"
	// RecordFile is the file name of a network's deployment record.
	RecordFile = "deploys.yml"

	s3Scheme = "s3://"
)

// AppKey returns the document key for an application.
func AppKey(app string) string {
	return app + AppSuffix
}

// RelativeRecordPath returns the slash-separated record location below a base.
func RelativeRecordPath(network string) string {
	return path.Join("environments", network, RecordFile)
}

// RecordPath resolves the record location for a network under base. A base of
// the form s3://bucket/prefix yields an S3 URI, anything else a file path.
func RecordPath(base, network string) string {
	if bucket, prefix, ok := SplitS3URI(base); ok {
		return s3Scheme + bucket + "/" + path.Join(prefix, RelativeRecordPath(network))
	}
	return filepath.Join(base, filepath.FromSlash(RelativeRecordPath(network)))
}

// IsS3URI reports whether location points at S3.
func IsS3URI(location string) bool {
	return strings.HasPrefix(location, s3Scheme)
}

// SplitS3URI splits s3://bucket/key into bucket and key.
func SplitS3URI(location string) (bucket, key string, ok bool) {
	if !IsS3URI(location) {
		return "", "", false
	}
	rest := strings.TrimPrefix(location, s3Scheme)
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" {
		return "", "", false
	}
	return bucket, key, true
}
