package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/astgen/errors"
	"github.com/teranos/astgen/version"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&errOut)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return out.String(), err
}

func TestVersionJSON(t *testing.T) {
	out, err := execute(t, "version", "--json")
	require.NoError(t, err)

	var info version.Info
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, version.Version, info.Version)
	assert.Equal(t, "^1", info.DescriptionVersions)
}

func TestGenerateCheckAndShow(t *testing.T) {
	dir := t.TempDir()
	desc := filepath.Join(dir, "ast.txt")
	outDir := filepath.Join(dir, "generated")
	require.NoError(t, os.WriteFile(desc, []byte("struct Item { #[kind] kind }\nflag Mutability;\n"), 0644))

	common := []string{"-d", desc, "-o", outDir, "--stamp", "none", "--workers", "2"}

	_, err := execute(t, common...)
	require.NoError(t, err)
	for _, name := range []string{"ast_deref_gen.inc.rs", "ast_names_gen.inc.rs", "list_node_ids_gen.inc.rs"} {
		assert.FileExists(t, filepath.Join(outDir, name))
	}

	_, err = execute(t, append([]string{"check"}, common...)...)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(desc, []byte("struct Item { #[kind] kind, id }\nflag Mutability;\n"), 0644))
	_, err = execute(t, append([]string{"check"}, common...)...)
	require.Error(t, err)
	assert.True(t, errors.IsOutOfDate(err))

	out, err := execute(t, append([]string{"config", "show", "--format", "json"}, common...)...)
	require.NoError(t, err)
	var shown map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.Equal(t, desc, shown["description"])
	assert.EqualValues(t, 2, shown["workers"])
	assert.Equal(t, "none", shown["banner"].(map[string]any)["stamp"])
}
