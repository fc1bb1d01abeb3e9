package capability

import (
	"errors"
	"fmt"
	"strings"
)

// PathSeparator joins branch keys into dotted paths.
const PathSeparator = "."

// ErrPathNotFound is returned when a dotted path does not lead to a leaf.
var ErrPathNotFound = errors.New("capability path not found")

// FindPaths returns the dotted paths of every leaf below node, depth-first
// in child order. A leaf at the root yields a single empty path.
func FindPaths(node Node, prefix string) []string {
	switch n := node.(type) {
	case *Leaf:
		if n == nil {
			return nil
		}
		return []string{prefix}
	case *Branch:
		var paths []string
		for _, key := range n.Keys() {
			child, _ := n.Child(key)
			paths = append(paths, FindPaths(child, joinPath(prefix, key))...)
		}
		return paths
	default:
		return nil
	}
}

// Resolve walks a dotted path from root and returns the leaf it names.
// The empty path names the root itself.
func Resolve(root Node, path string) (*Leaf, error) {
	node := root
	if path != "" {
		for _, segment := range strings.Split(path, PathSeparator) {
			branch, ok := node.(*Branch)
			if !ok {
				return nil, fmt.Errorf("%w: %q stops before segment %q", ErrPathNotFound, path, segment)
			}
			child, ok := branch.Child(segment)
			if !ok {
				return nil, fmt.Errorf("%w: %q has no segment %q", ErrPathNotFound, path, segment)
			}
			node = child
		}
	}

	leaf, ok := node.(*Leaf)
	if !ok || leaf == nil {
		return nil, fmt.Errorf("%w: %q is not an integration", ErrPathNotFound, path)
	}
	return leaf, nil
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + PathSeparator + key
}
