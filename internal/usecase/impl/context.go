package impl

import (
	"context"

	deliverycontext "raseed/internal/delivery/context"
)

// requestIDFromContext reads the request ID propagated by the RequestID
// middleware, so published events stay traceable to the triggering request.
func requestIDFromContext(ctx context.Context) string {
	return deliverycontext.GetRequestIDFromContext(ctx)
}
