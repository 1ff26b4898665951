package testutil

import (
	"github.com/comalice/dispatchx"
)

// ConstructionPath builds a Dispatcher through one of the supported
// construction paths. Runtime behavior must be identical regardless of path,
// so the conformance suite runs once per path returned by Paths.
type ConstructionPath struct {
	Name string
	New  func(opts ...dispatchx.Option) (dispatchx.Dispatcher, error)
}

// Host is a plain domain value used as the composition target. It carries no
// reserved method names.
type Host struct {
	ID string
}

// Describe is an arbitrary pre-existing member; composition must leave it
// callable.
func (h *Host) Describe() string {
	return "host:" + h.ID
}

// Paths returns every supported construction path.
func Paths() []ConstructionPath {
	return []ConstructionPath{
		{
			Name: "direct",
			New: func(opts ...dispatchx.Option) (dispatchx.Dispatcher, error) {
				return dispatchx.New(opts...)
			},
		},
		{
			Name: "composed",
			New: func(opts ...dispatchx.Option) (dispatchx.Dispatcher, error) {
				return dispatchx.Compose(&Host{ID: "conformance"}, opts...)
			},
		},
	}
}
