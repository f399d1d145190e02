// Package release implements the HTTP transport of the release server on gin.
//
// Read routes answer update checks and list releases; admin routes publish
// and retract releases and are guarded by a bearer token when one is
// configured. Every response carries an X-Request-ID header.
//
// Read routes and the embedded OpenAPI document at /api-docs/openapi.json
// answer browser CORS requests. Admin routes do not.
package release
