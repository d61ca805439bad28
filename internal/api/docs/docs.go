// Package docs carries the embedded OpenAPI document served at
// /swagger.
package docs

import _ "embed"

//go:embed openapi.json
var OpenAPI []byte
