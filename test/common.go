//go:build e2e

package test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lerenn/code-hygiene/internal/cli"
)

// Result holds the outcome of one hygiene invocation.
type Result struct {
	Code   int
	Stdout string
	Stderr string
}

// Lines returns the reported paths, in output order.
func (r Result) Lines() []string {
	var findings []string
	for _, line := range strings.Split(r.Stdout, "\n") {
		if strings.HasPrefix(line, "  ") {
			findings = append(findings, strings.TrimSpace(line))
		}
	}
	return findings
}

// runHygiene runs the hygiene command in-process.
func runHygiene(t *testing.T, args ...string) Result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd(&cli.Options{})
	cmd.SetArgs(append(args, "--no-color"))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(""))

	code := cli.Execute(cmd)
	return Result{Code: code, Stdout: stdout.String(), Stderr: stderr.String()}
}

// writeTree creates files under root from a map of relative path to content.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
}

// setupVueProject creates a small Vite + Vue project with one untested file,
// one unused file and one orphaned test.
func setupVueProject(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"index.html":       `<div id="app"></div><script type="module" src="/src/main.ts"></script>`,
		"package.json":     `{"name": "kanji-app"}`,
		"vite.config.ts":   "import { defineConfig } from 'vite'\nexport default defineConfig({})\n",
		"vitest.config.ts": "export default {}\n",
		"tsconfig.json":    "{}\n",

		"src/main.ts":         "import { createApp } from 'vue'\nimport App from './App.vue'\nimport router from './router'\ncreateApp(App).use(router).mount('#app')\n",
		"src/App.vue":         "<template><RouterView /></template>\n<script setup lang=\"ts\">\nimport AppHeader from '@/shared/components/AppHeader.vue'\n</script>\n",
		"src/env.d.ts":        "/// <reference types=\"vite/client\" />\n",
		"src/router/index.ts": "import { createRouter } from 'vue-router'\nconst routes = [\n  { path: '/', component: () => import('@/pages/HomePage.vue') },\n  { path: '/kanji', component: () => import('@/pages/KanjiPage.vue') },\n]\nexport default createRouter({ routes })\n",

		"src/pages/HomePage.vue":  "<script setup lang=\"ts\">\nimport KanjiCard from '@/modules/kanji/KanjiCard.vue'\nimport { useKanji } from '@/modules/kanji'\n</script>\n",
		"src/pages/KanjiPage.vue": "<template></template>\n",

		"src/modules/kanji/index.ts":              "// Public API\nexport { default as KanjiCard } from './KanjiCard.vue'\nexport * from './use-kanji'\n",
		"src/modules/kanji/KanjiCard.vue":         "<script setup lang=\"ts\">\nimport { useKanji } from './use-kanji'\nimport { format } from '../../shared/utils/format'\n</script>\n",
		"src/modules/kanji/KanjiCard.test.ts":     "import KanjiCard from './KanjiCard.vue'\n",
		"src/modules/kanji/use-kanji.ts":          "export function useKanji() {}\n",
		"src/modules/kanji/use-kanji.test.ts":     "import { useKanji } from './use-kanji'\n",
		"src/modules/kanji/kanji-stats.ts":        "export const stats = {}\n",
		"src/modules/kanji/kanji-removed.test.ts": "import { removed } from './kanji-removed'\n",
		"src/shared/components/AppHeader.vue":     "<template></template>\n",
		"src/shared/components/AppHeader.test.ts": "import AppHeader from './AppHeader.vue'\n",
		"src/shared/utils/format.ts":              "export const format = (s: string) => s.trim()\n",
		"src/shared/utils/format.test.ts":         "import { format } from './format'\n",
		"src/shared/types/kanji.ts":               "export interface Kanji { character: string }\n",
		"src/db/seed.ts":                          "export const seed = []\n",

		"scripts/release.ts":        "console.log('release')\n",
		"e2e/home.test.ts":          "import { test } from '@playwright/test'\n",
		"test/helpers/render.ts":    "import { mount } from '@vue/test-utils'\n",
		"node_modules/vue/index.js": "export const createApp = () => {}\n",
		"dist/assets/index.js":      "import './chunk.js'\n",
	})

	return root
}
