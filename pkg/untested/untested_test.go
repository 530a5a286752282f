//go:build integration

package untested

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lerenn/code-hygiene/internal/base"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
}

func newChecker() *Checker {
	return NewChecker(base.NewBase(base.NewBaseParams{}))
}

func TestChecker_Find_RoundTrip(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/Foo.ts", "export const foo = 1\n")
	writeFile(t, root, "src/Foo.test.ts", "import { foo } from './Foo'\n")

	untested, err := newChecker().Find(root)
	require.NoError(t, err)
	assert.Empty(t, untested)

	require.NoError(t, os.Remove(filepath.Join(root, "src", "Foo.test.ts")))

	untested, err = newChecker().Find(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/Foo.ts"}, untested)
}

func TestChecker_Find(t *testing.T) {
	root := t.TempDir()

	// Reported.
	writeFile(t, root, "src/modules/kanji/KanjiCard.vue", "<template></template>\n")
	writeFile(t, root, "src/modules/kanji/use-kanji.ts", "export function useKanji() {}\n")
	writeFile(t, root, "src/modules/kanji/helpers/index.ts", "import { x } from './x'\nexport { x }\n")
	writeFile(t, root, "src/modules/kanji/helpers/x.test.ts", "")
	writeFile(t, root, "src/modules/kanji/helpers/x.ts", "")
	writeFile(t, root, "src/modules/vocab/api.ts", "")
	writeFile(t, root, "src/modules/vocab/api.spec.ts", "")
	writeFile(t, root, "src/modules/vocab/app-config.ts", "")
	writeFile(t, root, "src/modules/vocab/index.ts", string([]byte{0xff, 0xfe}))
	writeFile(t, root, "root-level.ts", "")

	// Covered.
	writeFile(t, root, "src/modules/kanji/KanjiList.vue", "")
	writeFile(t, root, "src/modules/kanji/KanjiList.test.ts", "")

	// Barrel.
	writeFile(t, root, "src/modules/kanji/index.ts", "// barrel\nexport * from './use-kanji'\nexport { default as KanjiCard } from './KanjiCard.vue'\n")

	// Not source files.
	writeFile(t, root, "src/env.d.ts", "")
	writeFile(t, root, "src/types/global.d.ts", "")
	writeFile(t, root, "src/legacy.js", "")
	writeFile(t, root, "src/styles/main.css", "")

	// Ignored.
	writeFile(t, root, "src/main.ts", "")
	writeFile(t, root, "src/App.vue", "")
	writeFile(t, root, "vite.config.ts", "")
	writeFile(t, root, "src/pages/HomePage.vue", "")
	writeFile(t, root, "scripts/find-untested.ts", "")
	writeFile(t, root, "src/db/schema.ts", "")
	writeFile(t, root, "src/api/client.ts", "")
	writeFile(t, root, "src/shared/validation/index.ts", "export {\n  a,\n} from './a'\n")
	writeFile(t, root, "node_modules/vue/index.ts", "")

	untested, err := newChecker().Find(root)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"root-level.ts",
		"src/modules/kanji/KanjiCard.vue",
		"src/modules/kanji/helpers/index.ts",
		"src/modules/kanji/use-kanji.ts",
		"src/modules/vocab/api.spec.ts",
		"src/modules/vocab/api.ts",
		"src/modules/vocab/app-config.ts",
		"src/modules/vocab/index.ts",
	}, untested)
}

func TestChecker_Find_OnlyIndexFilesAreBarrels(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/exports.ts", "export * from './a'\n")

	untested, err := newChecker().Find(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"src/exports.ts"}, untested)
}

func TestChecker_Find_InvalidRoot(t *testing.T) {
	_, err := newChecker().Find(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestChecker_TestFileName(t *testing.T) {
	c := newChecker()

	assert.Equal(t, "Foo.test.ts", c.TestFileName("Foo.ts"))
	assert.Equal(t, "KanjiCard.test.ts", c.TestFileName("KanjiCard.vue"))
	assert.Equal(t, "api.spec.test.ts", c.TestFileName("api.spec.ts"))
}
