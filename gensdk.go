// Package gensdk is the runtime shared by generator plugins: it speaks the
// line-delimited JSON-RPC session with a host over standard streams,
// advertises the generator's manifest, and on the session's single generate
// request runs the caller-supplied generation function and materializes the
// resulting module tree onto disk.
package gensdk

import (
	"log"
	"os"

	"github.com/go-git/go-billy/v5/osfs"

	"github.com/spacedriveapp/gensdk/api"
	"github.com/spacedriveapp/gensdk/lang"
)

// GenerateFn produces a module tree from the compiled schema artifacts and
// the open generator config. An error returned here is the one failure the
// host receives as a protocol-level error response; everything else that
// can go wrong in a session aborts the process.
type GenerateFn func(args api.GenerateArgs, config api.ConfigMap) (*api.Module, error)

// Generator is a plugin's static identity plus its generation function.
// Immutable once constructed; the runtime holds no other state across
// requests.
type Generator struct {
	// Name is advertised as the manifest prettyName and stamped into the
	// generated-file header.
	Name string
	// DefaultOutput is the output path advertised in the manifest.
	DefaultOutput string
	// Profile is the target-language profile; nil means lang.Rust().
	Profile *lang.Profile
	// Generate builds the module tree.
	Generate GenerateFn
}

// New builds a Generator with the default language profile.
func New(fn GenerateFn, name, defaultOutput string) *Generator {
	return &Generator{
		Name:          name,
		DefaultOutput: defaultOutput,
		Profile:       lang.Rust(),
		Generate:      fn,
	}
}

func (g *Generator) profile() *lang.Profile {
	if g.Profile != nil {
		return g.Profile
	}
	return lang.Rust()
}

// Run serves the plugin session: requests from stdin, responses to stderr,
// output written to the OS filesystem. It returns when the session ends
// (after the first generate request) and aborts the process on any fatal
// condition, leaving a diagnostic on stderr outside the protocol envelope.
func (g *Generator) Run() {
	if err := g.run(os.Stdin, os.Stderr, osfs.New("/")); err != nil {
		log.Fatalf("%s: %v", g.Name, err)
	}
}
