package codegen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestCompareDirectories_MetadataFiltering(t *testing.T) {
	generated := t.TempDir()
	existing := t.TempDir()

	writeFile(t, generated, "ast_names_gen.inc.rs",
		"// AUTOMATICALLY GENERATED - DO NOT EDIT\n// Produced 2025-12-27T10:00:00Z by astgen\n\nimpl AstName for A {}\n")
	writeFile(t, existing, "ast_names_gen.inc.rs",
		"// AUTOMATICALLY GENERATED - DO NOT EDIT\n// Produced 2025-12-25T08:00:00Z by astgen\n\nimpl AstName for A {}\n")

	result, err := CompareDirectories(generated, existing, true)
	require.NoError(t, err)
	assert.True(t, result.UpToDate)

	result, err = CompareDirectories(generated, existing, false)
	require.NoError(t, err)
	assert.False(t, result.UpToDate)
	assert.Equal(t, []string{"ast_names_gen.inc.rs"}, result.Differences)
}

func TestCompareDirectories_FunctionalChange(t *testing.T) {
	generated := t.TempDir()
	existing := t.TempDir()

	writeFile(t, generated, "list_node_ids_gen.inc.rs", "// Produced by astgen\nimpl ListNodeIds for A {}\n")
	writeFile(t, existing, "list_node_ids_gen.inc.rs", "// Produced by astgen\nimpl ListNodeIds for B {}\n")

	result, err := CompareDirectories(generated, existing, true)
	require.NoError(t, err)
	assert.False(t, result.UpToDate)
	assert.Equal(t, []string{"list_node_ids_gen.inc.rs"}, result.Differences)
}

func TestCompareDirectories_MissingFile(t *testing.T) {
	generated := t.TempDir()
	existing := t.TempDir()

	writeFile(t, generated, "ast_deref_gen.inc.rs", "impl AstDeref for A {}\n")

	result, err := CompareDirectories(generated, existing, true)
	require.NoError(t, err)
	assert.False(t, result.UpToDate)
	assert.Equal(t, []string{"ast_deref_gen.inc.rs"}, result.Missing)
	assert.Empty(t, result.Differences)
}

func TestFilterMetadataLines(t *testing.T) {
	out := FilterMetadataLines([]byte("// AUTOMATICALLY GENERATED - DO NOT EDIT\n  // Produced now by astgen\nfn x() {}"))
	assert.Equal(t, "// AUTOMATICALLY GENERATED - DO NOT EDIT\nfn x() {}", string(out))
}

func TestCompareDirectories_TrailingNewline(t *testing.T) {
	generated := t.TempDir()
	existing := t.TempDir()

	writeFile(t, generated, "ast_names_gen.inc.rs", "// Produced now by astgen\nimpl AstName for A {}\n")
	writeFile(t, existing, "ast_names_gen.inc.rs", "// Produced then by astgen\nimpl AstName for A {}")

	result, err := CompareDirectories(generated, existing, true)
	require.NoError(t, err)
	assert.False(t, result.UpToDate)
	assert.Equal(t, []string{"ast_names_gen.inc.rs"}, result.Differences)
}
