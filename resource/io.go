package resource

import (
	"context"
	"io"
)

// RateLimitedWriter wraps an io.Writer with the controller's dump rate limit.
type RateLimitedWriter struct {
	ctx context.Context
	w   io.Writer
	rc  *Controller
}

// NewRateLimitedWriter creates a new RateLimitedWriter.
// A nil controller yields a pass-through writer.
func NewRateLimitedWriter(ctx context.Context, w io.Writer, rc *Controller) *RateLimitedWriter {
	return &RateLimitedWriter{
		ctx: ctx,
		w:   w,
		rc:  rc,
	}
}

func (w *RateLimitedWriter) Write(p []byte) (n int, err error) {
	if err := w.rc.AcquireDump(w.ctx, len(p)); err != nil {
		return 0, err
	}
	return w.w.Write(p)
}
