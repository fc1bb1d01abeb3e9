package capability

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Keys that mark a YAML mapping as an integration rather than a branch.
const (
	keyRequest = "request"
	keyHandle  = "handle"
)

// VariableList is a static VariableSource.
type VariableList []Variable

// Variables returns the list itself.
func (l VariableList) Variables() []Variable {
	return l
}

// RequestResponseDescriptor is a declaration-only integration in the
// request/response shape.
type RequestResponseDescriptor struct {
	DisplayName  string
	RequestSide  VariableSource
	ResponseSide VariableSource
}

// Name returns the declared display name.
func (d *RequestResponseDescriptor) Name() string { return d.DisplayName }

// Request returns the request side, or nil.
func (d *RequestResponseDescriptor) Request() VariableSource { return d.RequestSide }

// Response returns the response side, or nil.
func (d *RequestResponseDescriptor) Response() VariableSource { return d.ResponseSide }

// FlatDescriptor is a declaration-only integration in the flat shape.
type FlatDescriptor struct {
	DisplayName string
	Request     []Variable
	Response    []Variable
}

// Name returns the declared display name.
func (d *FlatDescriptor) Name() string { return d.DisplayName }

// RequestVariables returns the declared request variables.
func (d *FlatDescriptor) RequestVariables() []Variable { return d.Request }

// ResponseVariables returns the declared response variables.
func (d *FlatDescriptor) ResponseVariables() []Variable { return d.Response }

type sideSpec struct {
	Variables []Variable `yaml:"variables"`
}

type leafSpec struct {
	Name              string     `yaml:"name"`
	Request           *sideSpec  `yaml:"request"`
	Response          *sideSpec  `yaml:"response"`
	Handle            yaml.Node  `yaml:"handle"`
	RequestVariables  []Variable `yaml:"request_variables"`
	ResponseVariables []Variable `yaml:"response_variables"`
}

// LoadTree reads a YAML capability tree. A mapping with a "request" or
// "handle" key is an integration; any other mapping is a branch. This is the
// only place the key-based rule applies: the returned tree is already split
// into branches and leaves.
func LoadTree(r io.Reader) (Node, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return MustBranch(), nil
		}
		return nil, fmt.Errorf("decoding capability tree: %w", err)
	}

	root := &doc
	if doc.Kind == yaml.DocumentNode {
		if len(doc.Content) == 0 {
			return MustBranch(), nil
		}
		root = doc.Content[0]
	}
	return loadNode(root, "")
}

func loadNode(n *yaml.Node, path string) (Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: capability %q must be a mapping", n.Line, path)
	}

	if hasLeafKey(n) {
		return loadLeaf(n, path)
	}

	entries := make([]Entry, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i].Value
		child, err := loadNode(n.Content[i+1], joinPath(path, key))
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Key: key, Node: child})
	}

	b, err := NewBranch(entries...)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", n.Line, err)
	}
	return b, nil
}

func hasLeafKey(n *yaml.Node) bool {
	for i := 0; i+1 < len(n.Content); i += 2 {
		switch n.Content[i].Value {
		case keyRequest, keyHandle:
			return true
		}
	}
	return false
}

func loadLeaf(n *yaml.Node, path string) (Node, error) {
	var spec leafSpec
	if err := n.Decode(&spec); err != nil {
		return nil, fmt.Errorf("line %d: integration %q: %w", n.Line, path, err)
	}

	var integration Integration
	if spec.Request != nil || spec.Response != nil {
		d := &RequestResponseDescriptor{DisplayName: spec.Name}
		if spec.Request != nil {
			d.RequestSide = VariableList(spec.Request.Variables)
		}
		if spec.Response != nil {
			d.ResponseSide = VariableList(spec.Response.Variables)
		}
		integration = d
	} else {
		integration = &FlatDescriptor{
			DisplayName: spec.Name,
			Request:     spec.RequestVariables,
			Response:    spec.ResponseVariables,
		}
	}
	leaf, err := NewLeaf(integration)
	if err != nil {
		return nil, fmt.Errorf("integration %q: %w", path, err)
	}
	return leaf, nil
}
