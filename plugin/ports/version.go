package ports

// VersionResolver evaluates version constraints.
type VersionResolver interface {
	// Resolve picks the highest available version that satisfies constraint.
	Resolve(constraint string, available []string) (string, error)

	// Satisfies reports whether version is within constraint. It errors when
	// either side cannot be parsed.
	Satisfies(constraint, version string) (bool, error)
}
