package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	vision "cloud.google.com/go/vision/v2/apiv1"
	"cloud.google.com/go/vision/v2/apiv1/visionpb"
)

// VisionRecognizer reads label text with Google Cloud Vision document
// text detection.
type VisionRecognizer struct {
	client  *vision.ImageAnnotatorClient
	timeout time.Duration
	logger  *slog.Logger
}

func NewVisionRecognizer(ctx context.Context, timeout time.Duration, logger *slog.Logger) (*VisionRecognizer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	client, err := vision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("vision client: %w", err)
	}
	return &VisionRecognizer{client: client, timeout: timeout, logger: logger}, nil
}

func (r *VisionRecognizer) Close() error {
	return r.client.Close()
}

func (r *VisionRecognizer) Recognize(ctx context.Context, imageBytes []byte) (string, error) {
	if len(imageBytes) == 0 {
		return "", &Error{Op: "recognize", Err: fmt.Errorf("empty image")}
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{{
			Image: &visionpb.Image{Content: imageBytes},
			Features: []*visionpb.Feature{
				{Type: visionpb.Feature_DOCUMENT_TEXT_DETECTION},
			},
		}},
	}

	resp, err := r.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return "", &Error{Op: "annotate", Err: err}
	}
	if resp == nil || len(resp.Responses) == 0 || resp.Responses[0] == nil {
		return "", nil
	}

	r0 := resp.Responses[0]
	if r0.Error != nil && r0.Error.Message != "" {
		return "", &Error{Op: "annotate", Err: fmt.Errorf("%s", r0.Error.Message)}
	}

	fta := r0.FullTextAnnotation
	if fta == nil || strings.TrimSpace(fta.Text) == "" {
		r.logger.Debug("vision returned no text", "elapsed_ms", time.Since(start).Milliseconds())
		return "", nil
	}

	text := collapseWhitespace(fta.Text)
	r.logger.Debug("vision ocr ok",
		"bytes", len(imageBytes),
		"text_len", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}

// collapseWhitespace trims lines and drops empty ones, keeping the
// line structure extraction patterns rely on.
func collapseWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, ln := range lines {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		out = append(out, ln)
	}
	return strings.Join(out, "\n")
}
