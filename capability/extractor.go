// Package capability models the capability trees exported by satellite
// packages: branches, leaf integrations, path discovery and variable
// extraction.
package capability

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrUnsupportedShape is returned when a leaf value implements neither
// RequestResponder nor FlatVariables.
var ErrUnsupportedShape = errors.New("unsupported integration shape")

// VariableExtractor returns the request and response variables of an integration.
// The implementation is chosen once, when the leaf is created.
type VariableExtractor interface {
	ExtractVariables() (request, response []Variable)
}

type requestResponseExtractor struct {
	integration RequestResponder
}

func (e requestResponseExtractor) ExtractVariables() (request, response []Variable) {
	return variablesOf(e.integration.Request()), variablesOf(e.integration.Response())
}

// variablesOf treats a nil source, including a typed nil pointer, as a side
// without variables.
func variablesOf(src VariableSource) []Variable {
	if src == nil {
		return nil
	}
	if v := reflect.ValueOf(src); v.Kind() == reflect.Pointer && v.IsNil() {
		return nil
	}
	return src.Variables()
}

type flatExtractor struct {
	integration FlatVariables
}

func (e flatExtractor) ExtractVariables() (request, response []Variable) {
	return e.integration.RequestVariables(), e.integration.ResponseVariables()
}

// NewExtractor picks the extraction strategy for an integration.
// The request/response shape wins when both are implemented.
func NewExtractor(integration Integration) (VariableExtractor, error) {
	switch v := integration.(type) {
	case RequestResponder:
		return requestResponseExtractor{integration: v}, nil
	case FlatVariables:
		return flatExtractor{integration: v}, nil
	case nil:
		return nil, fmt.Errorf("%w: nil integration", ErrUnsupportedShape)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedShape, integration)
	}
}
