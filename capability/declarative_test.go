package capability_test

import (
	"strings"
	"testing"

	"github.com/reglet-dev/reglet-integrations/capability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleTree = `
outbound:
  salesforce:
    create_lead:
      handle: true
      request_variables:
        - name: lead.email
          type: email
          required: true
      response_variables:
        - name: outcome
inbound:
  form:
    name: Web Form
    request:
      variables:
        - name: email
    response:
      variables: []
`

func TestLoadTree(t *testing.T) {
	t.Parallel()

	tree, err := capability.LoadTree(strings.NewReader(sampleTree))
	require.NoError(t, err)

	paths := capability.FindPaths(tree, "")
	assert.Equal(t, []string{"outbound.salesforce.create_lead", "inbound.form"}, paths)

	t.Run("handle leaf is flat", func(t *testing.T) {
		leaf, err := capability.Resolve(tree, "outbound.salesforce.create_lead")
		require.NoError(t, err)
		assert.IsType(t, &capability.FlatDescriptor{}, leaf.Integration())

		req, resp := leaf.Variables()
		require.Len(t, req, 1)
		assert.Equal(t, capability.Variable{Name: "lead.email", Type: "email", Required: true}, req[0])
		require.Len(t, resp, 1)
		assert.Equal(t, "outcome", resp[0].Name)
		assert.Empty(t, leaf.DeclaredName())
	})

	t.Run("request leaf is request/response", func(t *testing.T) {
		leaf, err := capability.Resolve(tree, "inbound.form")
		require.NoError(t, err)
		assert.IsType(t, &capability.RequestResponseDescriptor{}, leaf.Integration())
		assert.Equal(t, "Web Form", leaf.DeclaredName())

		req, resp := leaf.Variables()
		assert.Len(t, req, 1)
		assert.Empty(t, resp)
	})
}

func TestLoadTree_RootLeaf(t *testing.T) {
	t.Parallel()

	tree, err := capability.LoadTree(strings.NewReader("handle: true\nrequest_variables: [{name: a}]\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{""}, capability.FindPaths(tree, ""))
}

func TestLoadTree_Empty(t *testing.T) {
	t.Parallel()

	tree, err := capability.LoadTree(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, capability.FindPaths(tree, ""))
}

func TestLoadTree_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "scalar branch", input: "inbound: 42\n"},
		{name: "dotted key", input: "a.b:\n  handle: true\n"},
		{name: "bad variables", input: "x:\n  handle: true\n  request_variables: nope\n"},
		{name: "invalid yaml", input: "x: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := capability.LoadTree(strings.NewReader(tc.input))
			assert.Error(t, err)
		})
	}
}
