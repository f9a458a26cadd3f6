// Package geomprovider defines the external collaborator that supplies
// mesh geometry for named presets. STL parsing and asset loading are
// explicitly out of scope for this module; a Provider is injected by the
// embedding application (GUI, test harness) at configuration time.
package geomprovider

import "github.com/Jinderamarak/safe-stage/spatial"

// Provider resolves a named geometry asset (e.g. "thesis/chamber/walls",
// "thesis/stage/tilter") to a triangle mesh. Implementations typically wrap an
// STL loader or an in-memory asset bundle; this module never parses STL
// itself.
type Provider interface {
	Mesh(name string) (*spatial.TriangleMesh, error)
}

// Static is a trivial in-memory Provider, primarily useful for tests and
// for embedding applications that pre-load their geometry once at start-up.
type Static map[string]*spatial.TriangleMesh

// Mesh implements Provider.
func (s Static) Mesh(name string) (*spatial.TriangleMesh, error) {
	mesh, ok := s[name]
	if !ok {
		return nil, &missingAssetError{name: name}
	}
	return mesh, nil
}

type missingAssetError struct{ name string }

func (e *missingAssetError) Error() string {
	return "geomprovider: no geometry registered for " + e.name
}
