package storage

import (
	"context"
	"strings"
	"time"
)

// RawPayloadArchiver stores the original inbound payload bytes alongside
// the normalized lead, keyed by lead id, so rejected-field debugging and
// audits can always recover what the provider actually sent.
type RawPayloadArchiver struct {
	service *MinIOService
	bucket  string
}

// NewRawPayloadArchiver creates an archiver writing into the given bucket.
func NewRawPayloadArchiver(service *MinIOService, bucket string) *RawPayloadArchiver {
	return &RawPayloadArchiver{service: service, bucket: bucket}
}

// ArchiveRawPayload uploads the raw body under a date-prefixed key.
func (a *RawPayloadArchiver) ArchiveRawPayload(ctx context.Context, leadID, contentType string, body []byte) error {
	objectName := time.Now().UTC().Format("2006/01/02") + "/" + leadID + extensionFor(contentType)
	return a.service.PutObject(ctx, a.bucket, objectName, storedContentType(contentType), body)
}

func extensionFor(contentType string) string {
	if strings.Contains(strings.ToLower(contentType), "json") {
		return ".json"
	}
	return ".xml"
}

func storedContentType(contentType string) string {
	if contentType == "" {
		return "application/octet-stream"
	}
	return contentType
}
