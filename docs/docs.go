// Package docs ships the OpenAPI description of the JSON API.
package docs

import _ "embed"

// SwaggerYAML is served verbatim at /swagger.yaml.
//
//go:embed swagger.yaml
var SwaggerYAML []byte
