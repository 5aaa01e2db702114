// Package tokens resolves dot-path token references inside a theme tree.
//
// A reference is a string such as "colors.primary" whose first segment names
// a top-level key of the same tree. Each top-level call tracks the paths on
// its own resolution stack, so a cycle is reported as an error instead of
// recursing forever. There is no cache shared between calls.
package tokens

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	themeerrors "github.com/alexisbeaulieu97/themekit/pkg/errors"
)

var referencePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*(\.[A-Za-z0-9_-]+)+$`)

// LooksLikeReference reports whether s has reference syntax, without checking
// that its root exists.
func LooksLikeReference(s string) bool {
	return referencePattern.MatchString(s)
}

// IsReference reports whether s is a reference into tree.
func IsReference(tree map[string]any, s string) bool {
	if !referencePattern.MatchString(s) {
		return false
	}
	root, _, _ := strings.Cut(s, ".")
	_, ok := tree[root]
	return ok
}

// Resolve walks tree along path and returns the terminal value, following
// references until a non-reference value is reached.
func Resolve(tree map[string]any, path string) (any, error) {
	r := newResolver(tree)
	return r.resolve(path)
}

// ResolveString returns value unchanged when it is not a reference, otherwise
// the scalar it resolves to formatted as a string.
func ResolveString(tree map[string]any, value string) (string, error) {
	if !IsReference(tree, value) {
		return value, nil
	}

	resolved, err := Resolve(tree, value)
	if err != nil {
		return "", err
	}
	s, ok := scalarString(resolved)
	if !ok {
		return "", fmt.Errorf("%w: %q refers to a group, not a value", themeerrors.ErrInvalidArgument, value)
	}
	return s, nil
}

// ResolveAll returns a deep copy of tree with every reference leaf replaced
// by the value it resolves to. Leaves are visited in sorted key order so the
// first reported error is stable.
func ResolveAll(tree map[string]any) (map[string]any, error) {
	out, err := resolveNode(tree, tree)
	if err != nil {
		return nil, err
	}
	return out.(map[string]any), nil
}

func resolveNode(tree map[string]any, node any) (any, error) {
	switch v := node.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			child, err := resolveNode(tree, v[k])
			if err != nil {
				return nil, err
			}
			out[k] = child
		}
		return out, nil
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			child, err := resolveNode(tree, item)
			if err != nil {
				return nil, err
			}
			out[i] = child
		}
		return out, nil
	case string:
		if !IsReference(tree, v) {
			return v, nil
		}
		resolved, err := Resolve(tree, v)
		if err != nil {
			return nil, err
		}
		if _, ok := scalarString(resolved); !ok {
			return nil, fmt.Errorf("%w: %q refers to a group, not a value", themeerrors.ErrInvalidArgument, v)
		}
		return resolved, nil
	default:
		return v, nil
	}
}

type resolver struct {
	tree    map[string]any
	stack   []string
	onStack map[string]bool
}

func newResolver(tree map[string]any) *resolver {
	return &resolver{tree: tree, onStack: make(map[string]bool)}
}

func (r *resolver) resolve(path string) (any, error) {
	if r.onStack[path] {
		idx := indexOf(r.stack, path)
		cycle := append(append([]string{}, r.stack[idx:]...), path)
		return nil, themeerrors.NewCyclicReferenceError(path, cycle)
	}

	r.onStack[path] = true
	r.stack = append(r.stack, path)
	defer func() {
		r.stack = r.stack[:len(r.stack)-1]
		delete(r.onStack, path)
	}()

	value, ok := lookup(r.tree, path)
	if !ok {
		return nil, themeerrors.NewUnresolvedTokenError(path, r.stack)
	}

	if s, isString := value.(string); isString && IsReference(r.tree, s) {
		return r.resolve(s)
	}
	return value, nil
}

func lookup(tree map[string]any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}

	var current any = tree
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			next, ok := node[segment]
			if !ok {
				return nil, false
			}
			current = next
		case map[string]string:
			next, ok := node[segment]
			if !ok {
				return nil, false
			}
			current = next
		default:
			return nil, false
		}
	}
	return current, true
}

func scalarString(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case int:
		return strconv.Itoa(val), true
	case int64:
		return strconv.FormatInt(val, 10), true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(val), true
	default:
		return "", false
	}
}

func indexOf(slice []string, target string) int {
	for i, v := range slice {
		if v == target {
			return i
		}
	}
	return -1
}
