package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Key kinds, used as the first key segment.
const (
	KindHTTP     = "http"
	KindLayout   = "layout"
	KindArtifact = "artifact"
)

// Keyer builds cache keys for each entry kind.
type Keyer interface {
	// HTTPKey generates a key for an upstream HTTP or API response.
	HTTPKey(namespace, key string) string
	// LayoutKey generates a key for a layout computed from the steps with the given hash.
	LayoutKey(stepsHash string, opts LayoutKeyOpts) string
	// ArtifactKey generates a key for a rendered artifact of the layout with the given hash.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts are the options that change a layout.
type LayoutKeyOpts struct {
	VizType  string  `json:"viz_type"`
	FontSize float64 `json:"font_size"`
}

// ArtifactKeyOpts are the options that change a rendered artifact.
type ArtifactKeyOpts struct {
	Format     string  `json:"format"`
	Scale      float64 `json:"scale,omitempty"`
	Background string  `json:"background,omitempty"`
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// DefaultKeyer is the standard key layout:
//
//	http:<namespace>:<key>
//	layout:<sha256 of steps hash and options>
//	artifact:<sha256 of layout hash and options>
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) HTTPKey(namespace, key string) string {
	return KindHTTP + ":" + namespace + ":" + key
}

func (DefaultKeyer) LayoutKey(stepsHash string, opts LayoutKeyOpts) string {
	return KindLayout + ":" + digest(stepsHash, opts)
}

func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return KindArtifact + ":" + digest(layoutHash, opts)
}

// digest hashes an input hash together with the options derived from it.
// Options are plain structs, so encoding cannot fail.
func digest(hash string, opts any) string {
	b, _ := json.Marshal(opts)
	return Hash(append([]byte(hash+"\x00"), b...))
}

// namespaced prefixes every key of an inner Keyer with "<ns>/".
type namespaced struct {
	Keyer
	ns string
}

// WithNamespace returns a Keyer whose keys are prefixed with ns, so several
// deployments can share one Redis or MongoDB backend. An empty ns returns
// inner unchanged; a nil inner means [DefaultKeyer].
func WithNamespace(inner Keyer, ns string) Keyer {
	if inner == nil {
		inner = DefaultKeyer{}
	}
	if ns == "" {
		return inner
	}
	return namespaced{Keyer: inner, ns: ns + "/"}
}

func (k namespaced) HTTPKey(namespace, key string) string {
	return k.ns + k.Keyer.HTTPKey(namespace, key)
}

func (k namespaced) LayoutKey(stepsHash string, opts LayoutKeyOpts) string {
	return k.ns + k.Keyer.LayoutKey(stepsHash, opts)
}

func (k namespaced) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.ns + k.Keyer.ArtifactKey(layoutHash, opts)
}
