package gen

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

const manifestYAML = `
files:
  - path: models/user
    decls:
      - kind: class
        name: User
        exported: true
        tags: [model]
        attrs:
          - {name: id, type: number}
registries:
  - {file: index, name: MODELS, tag: model}
`

func writeManifest(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tsgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(manifestYAML), 0o644))
	return path
}

func TestRun_Filesystem(t *testing.T) {
	root := t.TempDir()
	cmd := &Cmd{
		Manifest: writeManifest(t),
		Root:     root,
		Opt:      map[string]string{"line_ending": "lf", "mkdir": "true"},
	}

	var stdout, stderr bytes.Buffer
	require.NoError(t, cmd.run(context.Background(), &stdout, &stderr))
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "generation complete")

	user, err := os.ReadFile(filepath.Join(root, "models", "user.ts"))
	require.NoError(t, err)
	assert.Equal(t, "/// AUTO GENERATED\n\nexport class User {\nid: number = 0;\n}\n", string(user))

	index, err := os.ReadFile(filepath.Join(root, "index.ts"))
	require.NoError(t, err)
	assert.Equal(t, "/// AUTO GENERATED\nimport {User} from \"./models/user\";\n\nexport const MODELS = [User];\n", string(index))
}

func TestRun_DryRun(t *testing.T) {
	root := t.TempDir()
	cmd := &Cmd{
		Manifest: writeManifest(t),
		Root:     root,
		Opt:      map[string]string{"ext": ".mts", "line_ending": "lf"},
		DryRun:   true,
	}

	var stdout, stderr bytes.Buffer
	require.NoError(t, cmd.run(context.Background(), &stdout, &stderr))

	archive := txtar.Parse(stdout.Bytes())
	require.Len(t, archive.Files, 2)
	assert.Equal(t, "models/user.mts", archive.Files[0].Name)
	assert.Equal(t, "index.mts", archive.Files[1].Name)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries, "dry run wrote to the root")
}

func TestRun_BadOption(t *testing.T) {
	cmd := &Cmd{
		Manifest: writeManifest(t),
		Root:     t.TempDir(),
		Opt:      map[string]string{"indent": "2"},
	}
	var stdout, stderr bytes.Buffer
	assert.Error(t, cmd.run(context.Background(), &stdout, &stderr))
}

func TestRun_InvalidManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("files = []\n"), 0o644))

	cmd := &Cmd{Manifest: path, Root: t.TempDir()}
	var stdout, stderr bytes.Buffer
	err := cmd.run(context.Background(), &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.toml")
}
