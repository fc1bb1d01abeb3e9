package resolvers_test

import (
	"testing"

	"github.com/reglet-dev/reglet-integrations/plugin/resolvers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSemverResolver_Resolve(t *testing.T) {
	t.Parallel()

	resolver := resolvers.NewSemverResolver()

	tests := []struct {
		name       string
		constraint string
		available  []string
		expected   string
		wantErr    bool
	}{
		{name: "pinned", constraint: "1.4.0", available: []string{"1.3.2", "1.4.0", "1.5.0"}, expected: "1.4.0"},
		{name: "caret picks highest minor", constraint: "^1.2.0", available: []string{"1.2.0", "1.9.1", "2.0.0"}, expected: "1.9.1"},
		{name: "tilde stays on minor", constraint: "~1.2.0", available: []string{"1.2.0", "1.2.7", "1.3.0"}, expected: "1.2.7"},
		{name: "x range", constraint: "2.x", available: []string{"1.9.0", "2.0.3", "2.4.0", "3.0.0"}, expected: "2.4.0"},
		{name: "latest", constraint: "latest", available: []string{"0.1.0", "3.0.0", "2.9.9"}, expected: "3.0.0"},
		{name: "empty means any", constraint: "", available: []string{"1.0.0", "1.2.0"}, expected: "1.2.0"},
		{name: "prerelease excluded", constraint: "^1.0.0", available: []string{"1.0.0", "1.1.0-beta.1"}, expected: "1.0.0"},
		{name: "skips unparseable versions", constraint: "^1.0.0", available: []string{"1.0.0", "next", "1.1.0"}, expected: "1.1.0"},
		{name: "nothing satisfies", constraint: "^2.0.0", available: []string{"1.0.0", "1.9.9"}, wantErr: true},
		{name: "nothing available", constraint: "^1.0.0", available: nil, wantErr: true},
		{name: "git url constraint", constraint: "git+https://github.com/activeprospect/leadconduit-zip.git", available: []string{"1.0.0"}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolver.Resolve(tc.constraint, tc.available)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.expected, got)
			}
		})
	}
}

func TestSemverResolver_Satisfies(t *testing.T) {
	t.Parallel()

	resolver := resolvers.NewSemverResolver()

	tests := []struct {
		name       string
		constraint string
		version    string
		want       bool
		wantErr    bool
	}{
		{name: "caret in range", constraint: "^1.2.0", version: "1.4.0", want: true},
		{name: "caret out of range", constraint: "^1.2.0", version: "2.0.0", want: false},
		{name: "tilde", constraint: "~1.2.0", version: "1.3.0", want: false},
		{name: "exact", constraint: "1.2.0", version: "1.2.0", want: true},
		{name: "any", constraint: "*", version: "0.0.1", want: true},
		{name: "latest", constraint: "latest", version: "3.1.4", want: true},
		{name: "git url", constraint: "git+https://github.com/activeprospect/leadconduit-zip.git", version: "1.0.0", wantErr: true},
		{name: "bad version", constraint: "^1.0.0", version: "one", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolver.Satisfies(tc.constraint, tc.version)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
