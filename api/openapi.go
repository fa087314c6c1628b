// Package api embeds the OpenAPI description of the trip planner API.
package api

import _ "embed"

// OpenAPI is the raw openapi.yaml, served at /openapi.yaml.
//
//go:embed openapi.yaml
var OpenAPI []byte
