package history

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ObjectPutter is the slice of the S3 API the archiver needs. *s3.Client
// satisfies it.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Archiver ships mutation log snapshots to an S3 bucket as JSON objects.
//
// Example usage:
//
//	cfg, _ := config.LoadDefaultConfig(context.Background())
//	arch := history.NewArchiver(s3.NewFromConfig(cfg), "my-bucket", "lumen/")
//	arch.Archive(ctx, "session-1", log)
type Archiver struct {
	client ObjectPutter
	bucket string
	prefix string
}

// NewArchiver creates an archiver writing under bucket/prefix.
func NewArchiver(client ObjectPutter, bucket, prefix string) *Archiver {
	return &Archiver{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}
}

// archiveDoc is the object body layout.
type archiveDoc struct {
	Session    string  `json:"session"`
	ArchivedAt string  `json:"archived_at"`
	Entries    []Entry `json:"entries"`
}

// Archive uploads the log's current window, keyed by session and the
// highest sequence it contains. Empty windows are skipped.
func (a *Archiver) Archive(ctx context.Context, session string, log *Log) error {
	entries := log.Entries()
	if len(entries) == 0 {
		return nil
	}

	body, err := json.Marshal(archiveDoc{
		Session:    session,
		ArchivedAt: time.Now().UTC().Format(time.RFC3339),
		Entries:    entries,
	})
	if err != nil {
		return fmt.Errorf("history: encode archive: %w", err)
	}

	key := fmt.Sprintf("%s%s/%d.json", a.prefix, session, entries[len(entries)-1].Seq)
	_, err = a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("history: archive upload failed: %w", err)
	}
	return nil
}
