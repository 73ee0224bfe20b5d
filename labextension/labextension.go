// Package labextension declares the JupyterLab front-end extension bundled
// with this library. The descriptor is read by the JupyterLab asset loader
// to locate the extension's static files; there is no logic here beyond the
// declaration itself.
package labextension

const (
	// Name is the npm package name of the front-end extension.
	Name = "wordslab-notebooks-lib"

	// Version is the extension's semantic version.
	Version = "0.0.12"
)

// Path maps a source directory in the package to a destination under the
// loader's extension root. The JSON keys match the loader's expected
// src/dest descriptor format.
type Path struct {
	Source      string `json:"src"`
	Destination string `json:"dest"`
}

// Paths returns the extension's asset path descriptors.
func Paths() []Path {
	return []Path{
		{Source: "labextension", Destination: Name},
	}
}
