// Package api embeds the OpenAPI document of the canteen HTTP surface.
package api

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.yml
var spec []byte

// Spec returns the raw YAML document.
func Spec() []byte {
	return spec
}

// GetSwagger loads and validates the embedded document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(spec)
	if err != nil {
		return nil, fmt.Errorf("error loading openapi document: %w", err)
	}

	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("openapi document is invalid: %w", err)
	}

	return doc, nil
}

type swaggerDoc struct {
	json string
}

func (d swaggerDoc) ReadDoc() string {
	return d.json
}

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterSwaggerDoc publishes the document under swag.Name so that the
// swagger UI handler can serve it. Subsequent calls are no-ops.
func RegisterSwaggerDoc() error {
	registerOnce.Do(func() {
		doc, err := GetSwagger()
		if err != nil {
			registerErr = err
			return
		}

		raw, err := json.Marshal(doc)
		if err != nil {
			registerErr = fmt.Errorf("error encoding openapi document: %w", err)
			return
		}

		swag.Register(swag.Name, swaggerDoc{json: string(raw)})
	})

	return registerErr
}
