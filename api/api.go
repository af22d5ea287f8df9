// Package api holds the OpenAPI contract of the HTTP interface.
package api

import (
	_ "embed"
)

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -config oapi-codegen.yaml openapi.yml

// OpenAPISpec is the raw openapi.yml document. GetSwagger in
// internal/generated/servers parses it.
//
//go:embed openapi.yml
var OpenAPISpec []byte
