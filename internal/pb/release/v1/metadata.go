package releasev1

// Metadata keys exchanged by client and server.
const (
	// AuthorizationMetadataKey carries "Bearer <admin token>" on admin calls.
	AuthorizationMetadataKey = "authorization"
	// RequestIDMetadataKey correlates client and server logs.
	RequestIDMetadataKey = "x-request-id"
)
