package common

// AuthorizationHeaderName is the HTTP header (and, lower-cased, the gRPC
// metadata key) that carries the bearer access token.
const AuthorizationHeaderName = "Authorization"

// BearerScheme is the authorization scheme expected in front of the token.
const BearerScheme = "Bearer"

// RequestIDHeaderName carries the per-request correlation id.
const RequestIDHeaderName = "X-Request-ID"
