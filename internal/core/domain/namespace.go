package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// ModulePath is the colon-delimited position of a module in the project
// hierarchy, e.g. ":data:api-client".
type ModulePath string

// Segments splits the path into its hierarchy segments, ignoring the
// leading separator and empty segments left by doubled separators.
func (p ModulePath) Segments() []string {
	parts := strings.Split(string(p), ":")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// String returns the raw path.
func (p ModulePath) String() string { return string(p) }

// Namespace is the dotted identifier derived from a module path. It feeds
// the host's module-identity mechanism and is computed once per module.
type Namespace string

// String returns the namespace as a plain string.
func (n Namespace) String() string { return string(n) }

// DeriveNamespace turns a module path into a dotted namespace under the
// given prefix. The first path segment keeps its hyphens as dot separators
// (group-level namespaces stay readable); every later segment collapses its
// hyphens entirely (leaf identifiers stay valid single path components in
// generated code). The asymmetry is intentional.
//
//	DeriveNamespace("com.example", ":data:api-client") == "com.example.data.apiclient"
//
// A blank prefix is a configuration error.
func DeriveNamespace(prefix string, path ModulePath) (Namespace, error) {
	if strings.TrimSpace(prefix) == "" {
		err := zerr.With(ErrBlankNamespacePrefix, "prefix", prefix)
		return "", zerr.With(err, "path", path.String())
	}

	segments := path.Segments()
	transformed := make([]string, 0, len(segments)+1)
	transformed = append(transformed, prefix)
	for i, segment := range segments {
		if i == 0 {
			transformed = append(transformed, strings.ReplaceAll(segment, "-", "."))
			continue
		}
		transformed = append(transformed, strings.ReplaceAll(segment, "-", ""))
	}
	return Namespace(strings.Join(transformed, ".")), nil
}
