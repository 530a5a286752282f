//go:build integration

package unused

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

// setupProject lays out a small Vue project and returns its root.
func setupProject(t *testing.T) string {
	t.Helper()
	return setupProjectAt(t, t.TempDir())
}

// setupProjectAt lays out the same project under root.
func setupProjectAt(t *testing.T, root string) string {
	t.Helper()

	writeFile(t, root, "index.html", `<script type="module" src="/src/main.ts"></script>`)
	writeFile(t, root, "src/main.ts", "import { createApp } from 'vue'\nimport App from './App.vue'\nimport router from './router'\nimport { helper } from '@/shared/helper'\n")
	writeFile(t, root, "src/App.vue", "<script setup lang=\"ts\">\nimport KanjiCard from '@/modules/kanji/KanjiCard.vue'\nimport { vocab } from '@/modules/vocab'\n</script>\n")
	writeFile(t, root, "src/router/index.ts", "export const routes = [\n  { path: '/', component: () => import('@/pages/HomePage.vue') },\n]\n")
	writeFile(t, root, "src/pages/HomePage.vue", "<template></template>\n")
	writeFile(t, root, "src/pages/AboutPage.vue", "<template></template>\n")
	writeFile(t, root, "src/shared/helper.ts", "import { format } from '../utils/format'\nexport const helper = format\n")
	writeFile(t, root, "src/utils/format.ts", "export const format = (s: string) => s\n")
	writeFile(t, root, "src/modules/kanji/KanjiCard.vue", "<template></template>\n")
	writeFile(t, root, "src/modules/kanji/KanjiCard.test.ts", "import KanjiCard from './KanjiCard.vue'\n")
	writeFile(t, root, "src/modules/kanji/dead.ts", "export const dead = true\n")
	writeFile(t, root, "src/modules/kanji/only-tested.ts", "export const x = 1\n")
	writeFile(t, root, "src/modules/kanji/only-tested.test.ts", "import { x } from './only-tested'\n")
	writeFile(t, root, "src/modules/vocab/index.ts", "export const vocab = []\n")
	writeFile(t, root, "src/modules/vocab/removed.test.ts", "import { removed } from './removed'\n")
	writeFile(t, root, "src/app.config.ts", "export default {}\n")
	writeFile(t, root, "src/env.d.ts", "")
	writeFile(t, root, "src/types.d.ts", "")
	writeFile(t, root, "src/db/schema.ts", "")
	writeFile(t, root, "scripts/tool.ts", "")
	writeFile(t, root, "test/setup.ts", "")
	writeFile(t, root, "e2e/home.test.ts", "")
	writeFile(t, root, "legacy.js", "")
	writeFile(t, root, "node_modules/pkg/index.js", "")

	return root
}

func TestChecker_Find(t *testing.T) {
	root := setupProject(t)

	found, err := newChecker().Find(root)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"legacy.js",
		"src/modules/kanji/dead.ts",
		"src/modules/kanji/only-tested.ts",
		"src/modules/vocab/removed.test.ts",
	}, found)
}

func TestChecker_Find_RootWithGlobMetacharacters(t *testing.T) {
	for _, name := range []string{"proj[1]", "proj[x"} {
		t.Run(name, func(t *testing.T) {
			root := setupProjectAt(t, filepath.Join(t.TempDir(), name))

			found, err := newChecker().Find(root)
			require.NoError(t, err)

			assert.NotContains(t, found, "src/pages/HomePage.vue")
			assert.NotContains(t, found, "src/pages/AboutPage.vue")
			assert.Equal(t, []string{
				"legacy.js",
				"src/modules/kanji/dead.ts",
				"src/modules/kanji/only-tested.ts",
				"src/modules/vocab/removed.test.ts",
			}, found)
		})
	}
}

func TestChecker_Unused(t *testing.T) {
	root := setupProject(t)

	unused, err := newChecker().Unused(root)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"legacy.js",
		"src/modules/kanji/dead.ts",
		"src/modules/kanji/only-tested.ts",
	}, unused)
	assert.NotContains(t, unused, "src/pages/AboutPage.vue")
}

func TestChecker_Orphans(t *testing.T) {
	root := setupProject(t)
	writeFile(t, root, "src/modules/vocab/VocabList.test.ts", "")
	writeFile(t, root, "src/modules/vocab/VocabList.vue", "")
	writeFile(t, root, "src/modules/vocab/legacy.test.ts", "")
	writeFile(t, root, "src/modules/vocab/legacy.js", "")
	writeFile(t, root, "test/helpers/render.test.ts", "")

	orphans, err := newChecker().Orphans(root)
	require.NoError(t, err)

	assert.Equal(t, []string{"src/modules/vocab/removed.test.ts"}, orphans)
}

func TestChecker_SourceFiles(t *testing.T) {
	root := setupProject(t)

	sources, err := newChecker().SourceFiles(root)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"legacy.js",
		"src/modules/kanji/KanjiCard.vue",
		"src/modules/kanji/dead.ts",
		"src/modules/kanji/only-tested.ts",
		"src/modules/vocab/index.ts",
		"src/pages/AboutPage.vue",
		"src/pages/HomePage.vue",
		"src/shared/helper.ts",
		"src/utils/format.ts",
	}, sources)
}

func TestChecker_UsedFiles(t *testing.T) {
	root := setupProject(t)

	used, err := newChecker().UsedFiles(root)
	require.NoError(t, err)

	for _, rel := range []string{
		"src/App.vue",
		"src/router/index.ts",
		"src/pages/HomePage.vue",
		"src/shared/helper.ts",
		"src/utils/format.ts",
		"src/modules/kanji/KanjiCard.vue",
		"src/modules/vocab/index.ts",
	} {
		assert.True(t, used.Contains(base.AbsPath(root, rel)), rel)
	}
	assert.False(t, used.Contains(base.AbsPath(root, "src/modules/kanji/only-tested.ts")))
}

func TestChecker_Find_AllUsed(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/main.ts", "import { a } from '@/a'\n")
	writeFile(t, root, "src/a.ts", "export const a = 1\n")
	writeFile(t, root, "src/a.test.ts", "import { a } from './a'\n")

	found, err := newChecker().Find(root)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestChecker_Find_InvalidRoot(t *testing.T) {
	_, err := newChecker().Find(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
