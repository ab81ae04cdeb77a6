package constants

// Заголовки
const (
	HeaderContentType = "Content-Type"
	HeaderRetryAfter  = "Retry-After"
)

const (
	ContentTypeJSON = "application/json; charset=utf-8"
)

// ServiceName используется в /health, логах и gRPC health.
const ServiceName = "vehicle-service"
