package publish

import "context"

// Notifier delivers a finished collage to the announcement channel.
// Implementations must be safe for concurrent use.
type Notifier interface {
	// PublishPhoto sends the image with a caption. An error means the
	// announcement did not go out and may be retried on a later run.
	PublishPhoto(ctx context.Context, photo []byte, filename, caption string) error
}
