package http

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

//go:embed openapi.yaml
var openAPIDocument []byte

// swag keeps a process-wide registry that panics on a second registration.
var registerSwag sync.Once

// APIDoc is the validated OpenAPI description of the HTTP surface.
type APIDoc struct {
	doc  *openapi3.T
	json string
}

// LoadAPIDoc parses and validates the embedded OpenAPI document.
func LoadAPIDoc() (*APIDoc, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode openapi document: %w", err)
	}
	return &APIDoc{doc: doc, json: string(raw)}, nil
}

// ReadDoc implements swag.Swagger.
func (d *APIDoc) ReadDoc() string {
	return d.json
}

// Operations lists "METHOD /path" for every documented operation.
func (d *APIDoc) Operations() []string {
	var ops []string
	for path, item := range d.doc.Paths.Map() {
		for method := range item.Operations() {
			ops = append(ops, method+" "+path)
		}
	}
	return ops
}

// RegisterDocs serves the raw document at /openapi.json and the Swagger UI under /swagger/.
func RegisterDocs(router EchoRouter, doc *APIDoc) {
	registerSwag.Do(func() { swag.Register(swag.Name, doc) })

	router.GET("/openapi.json", func(ctx echo.Context) error {
		return ctx.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(doc.json))
	})
	router.GET("/swagger/*", echoSwagger.WrapHandler)
}
