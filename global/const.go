package global

const (
	AppVersion = "1.0.0" // shown in the boot log and /healthz

	// Gin context key holding the per-request correlation id.
	CtxRequestIDKey = "request_id"

	// Header carrying the correlation id in and out.
	HeaderRequestID = "X-Request-ID"
)
