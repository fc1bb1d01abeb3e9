package entities

import (
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/reglet-dev/reglet-integrations/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQualifyingDependencies(t *testing.T) {
	t.Parallel()

	host := &manifest.Manifest{
		Name: "leadconduit-api",
		Dependencies: map[string]string{
			"lodash":              "^4.17.0",
			"leadconduit-zip":     "^1.2.0",
			"leadconduit-crm":     "git+https://github.com/activeprospect/leadconduit-crm.git",
			"leadconduit-batch":   "",
			"not-leadconduit-foo": "1.0.0",
		},
	}

	deps, err := QualifyingDependencies(host, "leadconduit-*")
	require.NoError(t, err)

	var names []string
	for _, d := range deps {
		names = append(names, d.Name.String())
	}
	assert.Equal(t, []string{"leadconduit-batch", "leadconduit-crm", "leadconduit-zip"}, names)
	assert.Equal(t, "^1.2.0", deps[2].Constraint)
}

func TestQualifyingDependencies_EdgeCases(t *testing.T) {
	t.Parallel()

	t.Run("nil host", func(t *testing.T) {
		deps, err := QualifyingDependencies(nil, "leadconduit-*")
		require.NoError(t, err)
		assert.Empty(t, deps)
	})

	t.Run("no dependencies", func(t *testing.T) {
		deps, err := QualifyingDependencies(&manifest.Manifest{Name: "host"}, "leadconduit-*")
		require.NoError(t, err)
		assert.Empty(t, deps)
	})

	t.Run("bad pattern", func(t *testing.T) {
		_, err := QualifyingDependencies(&manifest.Manifest{}, "leadconduit-[")
		require.ErrorIs(t, err, doublestar.ErrBadPattern)
	})

	t.Run("matching name that is not a satellite name", func(t *testing.T) {
		host := &manifest.Manifest{Dependencies: map[string]string{"leadconduit-v1.5": "1.0.0"}}
		_, err := QualifyingDependencies(host, "leadconduit-*")
		assert.ErrorContains(t, err, "leadconduit-v1.5")
	})
}

func TestMatchName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		name    string
		want    bool
	}{
		{"leadconduit-*", "leadconduit-zip", true},
		{"leadconduit-*", "leadconduit-", true},
		{"leadconduit-*", "leadconduit", false},
		{"leadconduit-{zip,crm}", "leadconduit-crm", true},
		{"*", "anything", true},
	}

	for _, tc := range tests {
		got, err := MatchName(tc.pattern, tc.name)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s ~ %s", tc.pattern, tc.name)
	}
}

func TestDependency_String(t *testing.T) {
	t.Parallel()

	dep, err := NewDependency("leadconduit-zip", "^1.0.0")
	require.NoError(t, err)
	assert.Equal(t, "leadconduit-zip@^1.0.0", dep.String())

	dep, err = NewDependency("leadconduit-zip", "")
	require.NoError(t, err)
	assert.Equal(t, "leadconduit-zip", dep.String())

	_, err = NewDependency("", "")
	assert.Error(t, err)
}
