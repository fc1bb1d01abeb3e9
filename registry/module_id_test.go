package registry_test

import (
	"testing"

	"github.com/reglet-dev/reglet-integrations/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModuleID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		pkg     string
		path    string
		isRoot  bool
		wantErr bool
	}{
		{input: "leadconduit-zip.inbound.lookup", pkg: "leadconduit-zip", path: "inbound.lookup"},
		{input: "leadconduit-custom.", pkg: "leadconduit-custom", path: "", isRoot: true},
		{input: "leadconduit-zip", wantErr: true},
		{input: ".inbound.lookup", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			t.Parallel()

			id, err := registry.ParseModuleID(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.pkg, id.Package())
			assert.Equal(t, tc.path, id.Path())
			assert.Equal(t, tc.isRoot, id.IsRoot())
			assert.Equal(t, tc.input, id.String())
		})
	}
}

func TestNewModuleID_RoundTrip(t *testing.T) {
	t.Parallel()

	id := registry.NewModuleID("leadconduit-crm", "outbound.create_lead")
	parsed, err := registry.ParseModuleID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}
