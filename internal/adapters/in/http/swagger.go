package http

import (
	"encoding/json"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

var registerDocOnce sync.Once

type openAPIDoc struct {
	body string
}

// ReadDoc implements swag.Swagger.
func (d openAPIDoc) ReadDoc() string {
	return d.body
}

// RegisterSwaggerDoc publishes doc as the swag default instance read by the
// /swagger UI. Only the first call registers.
func RegisterSwaggerDoc(doc *openapi3.T) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	registerDocOnce.Do(func() {
		swag.Register(swag.Name, openAPIDoc{body: string(body)})
	})
	return nil
}
