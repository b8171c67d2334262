// Package emit turns a module tree into files. The plan step is pure: it
// computes every (path, content) pair for a layout. The apply step writes a
// plan through a billy filesystem, so the whole writer is testable against
// an in-memory filesystem.
package emit

import (
	"fmt"
	"path/filepath"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/spacedriveapp/gensdk/api"
	"github.com/spacedriveapp/gensdk/internal/casing"
	"github.com/spacedriveapp/gensdk/lang"
)

// Entry is one file to be written.
type Entry struct {
	Path    string
	Content string
}

// Plan is the ordered set of files one generate call produces.
type Plan []Entry

// Paths enumerates every file path in write order, for the formatter pass.
func (p Plan) Paths() []string {
	paths := make([]string, len(p))
	for i, e := range p {
		paths[i] = e.Path
	}
	return paths
}

// Folder computes the nested-directory layout rooted at dir. A module with
// submodules becomes a directory holding each child plus an aggregator file
// (re-export declarations first, own contents after); a module without
// submodules becomes a single file named after it. The root module's own
// name is not used; dir itself is its directory.
func Folder(root *api.Module, dir, header string, profile *lang.Profile) Plan {
	var plan Plan
	folderInto(&plan, root, dir, header, profile)
	return plan
}

func folderInto(plan *Plan, m *api.Module, path, header string, profile *lang.Profile) {
	if len(m.Submodules) == 0 {
		*plan = append(*plan, Entry{
			Path:    path + profile.Ext,
			Content: header + m.Contents,
		})
		return
	}

	for _, sub := range m.Submodules {
		folderInto(plan, sub, filepath.Join(path, casing.Snake(sub.Name)), header, profile)
	}

	var b strings.Builder
	if profile.ReExport != nil {
		for _, sub := range m.Submodules {
			b.WriteString(profile.ReExport(casing.Snake(sub.Name)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(m.Contents)

	*plan = append(*plan, Entry{
		Path:    filepath.Join(path, profile.AggregatorName),
		Content: header + b.String(),
	})
}

// File computes the single-file layout: the whole tree flattened to path.
func File(root *api.Module, path, header string) Plan {
	return Plan{{Path: path, Content: header + root.Flatten()}}
}

// Clean removes stale output at path, directory or file. Best-effort:
// absence or permission failures are swallowed so generation always gets a
// chance to overwrite.
func Clean(fs billy.Filesystem, path string) {
	_ = util.RemoveAll(fs, path)
}

// Apply writes every entry, creating parent directories as needed. Each
// file is written in a single call. Any failure aborts generation: partial
// output is unsafe, and no rollback is attempted.
func Apply(fs billy.Filesystem, plan Plan) error {
	for _, entry := range plan {
		if dir := filepath.Dir(entry.Path); dir != "." {
			if err := fs.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output directory %s: %w", dir, err)
			}
		}
		if err := util.WriteFile(fs, entry.Path, []byte(entry.Content), 0o644); err != nil {
			return fmt.Errorf("create generated file %s: %w", entry.Path, err)
		}
	}
	return nil
}

// FormatAll runs the profile formatter over every written path, rewriting
// files that change. Purely cosmetic: every failure is ignored.
func FormatAll(fs billy.Filesystem, profile *lang.Profile, paths []string) {
	if profile.FormatFile == nil {
		return
	}
	for _, path := range paths {
		src, err := util.ReadFile(fs, path)
		if err != nil {
			continue
		}
		formatted, err := profile.FormatFile(src)
		if err != nil || string(formatted) == string(src) {
			continue
		}
		_ = util.WriteFile(fs, path, formatted, 0o644)
	}
}
