package capability_test

import (
	"testing"

	"github.com/reglet-dev/reglet-integrations/capability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rrIntegration struct {
	name     string
	request  capability.VariableSource
	response capability.VariableSource
}

func (i *rrIntegration) Name() string                        { return i.name }
func (i *rrIntegration) Request() capability.VariableSource  { return i.request }
func (i *rrIntegration) Response() capability.VariableSource { return i.response }

// bothShapes implements both shapes; request/response must win.
type bothShapes struct {
	rrIntegration
}

func (bothShapes) RequestVariables() []capability.Variable {
	return []capability.Variable{{Name: "flat.request"}}
}

func (bothShapes) ResponseVariables() []capability.Variable {
	return []capability.Variable{{Name: "flat.response"}}
}

// fieldSource dereferences its receiver, so a nil *fieldSource panics.
type fieldSource struct {
	vars []capability.Variable
}

func (s *fieldSource) Variables() []capability.Variable { return s.vars }

func TestNewBranch_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		entries []capability.Entry
		wantErr string
	}{
		{
			name:    "empty key",
			entries: []capability.Entry{{Key: "", Node: flat("x")}},
			wantErr: "cannot be empty",
		},
		{
			name:    "dotted key",
			entries: []capability.Entry{{Key: "a.b", Node: flat("x")}},
			wantErr: "cannot contain",
		},
		{
			name:    "nil node",
			entries: []capability.Entry{{Key: "a"}},
			wantErr: "has no node",
		},
		{
			name: "duplicate key",
			entries: []capability.Entry{
				{Key: "a", Node: flat("x")},
				{Key: "a", Node: flat("y")},
			},
			wantErr: "duplicate",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := capability.NewBranch(tc.entries...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}

	assert.Panics(t, func() {
		capability.MustBranch(capability.Entry{Key: ""})
	})
}

func TestBranch_Keys(t *testing.T) {
	t.Parallel()

	b := capability.MustBranch(
		capability.Entry{Key: "z", Node: flat("z")},
		capability.Entry{Key: "a", Node: flat("a")},
	)
	assert.Equal(t, []string{"z", "a"}, b.Keys())
	assert.Equal(t, 2, b.Len())

	_, ok := b.Child("missing")
	assert.False(t, ok)
}

func TestNewLeaf(t *testing.T) {
	t.Parallel()

	t.Run("request/response shape", func(t *testing.T) {
		integration := &rrIntegration{
			name:     "Lookup",
			request:  capability.VariableList{{Name: "zip", Type: "string", Required: true}},
			response: capability.VariableList{{Name: "city"}},
		}
		leaf, err := capability.NewLeaf(integration)
		require.NoError(t, err)

		req, resp := leaf.Variables()
		assert.Equal(t, []capability.Variable{{Name: "zip", Type: "string", Required: true}}, req)
		assert.Equal(t, []capability.Variable{{Name: "city"}}, resp)
		assert.Equal(t, "Lookup", leaf.DeclaredName())
		assert.Same(t, integration, leaf.Integration())
	})

	t.Run("request/response with missing side", func(t *testing.T) {
		leaf := capability.MustLeaf(&rrIntegration{
			request: capability.VariableList{{Name: "email"}},
		})
		req, resp := leaf.Variables()
		assert.Len(t, req, 1)
		assert.Empty(t, resp)
	})

	t.Run("request/response with typed nil side", func(t *testing.T) {
		var missing *fieldSource
		leaf := capability.MustLeaf(&rrIntegration{
			request:  &fieldSource{vars: []capability.Variable{{Name: "email"}}},
			response: missing,
		})

		var req, resp []capability.Variable
		require.NotPanics(t, func() { req, resp = leaf.Variables() })
		assert.Equal(t, []capability.Variable{{Name: "email"}}, req)
		assert.Empty(t, resp)
	})

	t.Run("flat shape", func(t *testing.T) {
		leaf := capability.MustLeaf(&capability.FlatDescriptor{
			Request:  []capability.Variable{{Name: "lead.email"}},
			Response: []capability.Variable{{Name: "outcome"}},
		})
		req, resp := leaf.Variables()
		assert.Equal(t, "lead.email", req[0].Name)
		assert.Equal(t, "outcome", resp[0].Name)
		assert.Empty(t, leaf.DeclaredName())
	})

	t.Run("request/response wins over flat", func(t *testing.T) {
		leaf := capability.MustLeaf(&bothShapes{rrIntegration{
			request: capability.VariableList{{Name: "rr.request"}},
		}})
		req, resp := leaf.Variables()
		assert.Equal(t, "rr.request", req[0].Name)
		assert.Empty(t, resp)
	})

	t.Run("unsupported shape", func(t *testing.T) {
		_, err := capability.NewLeaf(struct{}{})
		require.ErrorIs(t, err, capability.ErrUnsupportedShape)

		_, err = capability.NewLeaf(nil)
		require.ErrorIs(t, err, capability.ErrUnsupportedShape)
	})
}
