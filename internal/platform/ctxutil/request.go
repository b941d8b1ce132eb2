package ctxutil

import "context"

type requestInfoKey struct{}

// RequestInfo identifies one inbound request for logs and upstream calls.
type RequestInfo struct {
	TraceID   string
	RequestID string

	ClientIP  string
	UserAgent string
	Referer   string
}

func WithRequestInfo(ctx context.Context, ri *RequestInfo) context.Context {
	return context.WithValue(ctx, requestInfoKey{}, ri)
}

func GetRequestInfo(ctx context.Context) *RequestInfo {
	if ri, ok := ctx.Value(requestInfoKey{}).(*RequestInfo); ok {
		return ri
	}
	return nil
}

// RequestID returns the inbound request id, or "" outside a request.
func RequestID(ctx context.Context) string {
	if ri := GetRequestInfo(ctx); ri != nil {
		return ri.RequestID
	}
	return ""
}
