package capability

// Integration is the opaque object a satellite contributes at a leaf of its
// capability tree. It must implement RequestResponder or FlatVariables.
type Integration any

// Variable describes a single input or output field of an integration.
type Variable struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Required    bool   `json:"required,omitempty" yaml:"required,omitempty"`
}

// VariableSource exposes the variables of one side of an integration.
type VariableSource interface {
	Variables() []Variable
}

// RequestResponder is the request/response integration shape.
// Either side may be nil, as an untyped nil or a nil pointer; that side then
// has no variables.
type RequestResponder interface {
	Request() VariableSource
	Response() VariableSource
}

// FlatVariables is the flat integration shape, declaring variables directly.
type FlatVariables interface {
	RequestVariables() []Variable
	ResponseVariables() []Variable
}

// Named is implemented by integrations that declare a preferred display name.
type Named interface {
	Name() string
}
