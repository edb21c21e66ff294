// Package common contains shared constants and sentinel errors used across
// the admin authentication components.
package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on inbound requests.
const AccessTokenHeaderName = "authorization"

// BearerPrefix is stripped from the header value when present.
const BearerPrefix = "Bearer "
