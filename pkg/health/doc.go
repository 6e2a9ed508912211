// Package health exposes liveness and readiness endpoints.
//
// Readiness runs named checks concurrently; the site registers one that
// loads the default language document and, when configured, a Redis ping.
// Responses are plain text unless the client asks for JSON via the Accept
// header or ?format=json.
package health
