// Package entities contains the value types produced by the poncoocr use cases.
package entities

// PathKind is the expected filesystem kind of a configured path.
type PathKind string

const (
	// PathKindDir marks a location that must be a directory.
	PathKindDir PathKind = "dir"
	// PathKindFile marks a location that must be a regular file.
	PathKindFile PathKind = "file"
)

// PathTarget is a configured location together with its expected kind.
type PathTarget struct {
	Option   string
	Path     string
	Expected PathKind
}

// PathStatus is the inspection result for one path option.
type PathStatus struct {
	Option   string   `json:"option"`
	Path     string   `json:"path"`
	Expected PathKind `json:"expected"`
	Exists   bool     `json:"exists"`
	Valid    bool     `json:"valid"`
	Reason   string   `json:"reason,omitempty"`
}

// PathReport aggregates the inspection of all path options.
type PathReport struct {
	Paths []PathStatus `json:"paths"`
}

// Invalid returns the entries that are missing or of the wrong kind.
func (r *PathReport) Invalid() []PathStatus {
	var out []PathStatus
	for _, p := range r.Paths {
		if !p.Valid {
			out = append(out, p)
		}
	}
	return out
}

// OK reports whether every inspected path is valid.
func (r *PathReport) OK() bool {
	return len(r.Invalid()) == 0
}
