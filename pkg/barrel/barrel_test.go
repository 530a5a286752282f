//go:build unit

package barrel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBarrelExport(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{
			name:     "Only exports",
			text:     "export * from './KanjiList'\nexport { default as KanjiCard } from './KanjiCard.vue'\n",
			expected: true,
		},
		{
			name: "Exports with comments and blank lines",
			text: `/**
 * Kanji list module
 */

// Components
export { default as KanjiList } from './KanjiList.vue'

/* composables */
export * from './composables'
// types
export type { Kanji } from './kanji-types'
`,
			expected: true,
		},
		{
			name:     "Windows line endings",
			text:     "export * from './a'\r\nexport * from './b'\r\n",
			expected: true,
		},
		{
			name:     "Non-export statement",
			text:     "import { ref } from 'vue'\nexport const count = ref(0)\n",
			expected: false,
		},
		{
			name:     "Empty file",
			text:     "",
			expected: false,
		},
		{
			name:     "Only whitespace",
			text:     "\n   \n\t\n",
			expected: false,
		},
		{
			name:     "Only comments",
			text:     "// nothing here\n/* still\nnothing */\n",
			expected: false,
		},
		{
			name: "Multi-line export is not recognised",
			text: `export {
  useKanjiList,
  useKanjiFilters,
} from './composables'
`,
			expected: false,
		},
		{
			name:     "Code after a single-line block comment",
			text:     "/* header */\nconst x = 1\nexport { x }\n",
			expected: false,
		},
		{
			name:     "Line opening a block comment is dropped entirely",
			text:     "export * from './a' /* legacy\nconst hidden = 1 */\nexport * from './b'\n",
			expected: true,
		},
		{
			name:     "Unterminated block comment hides the rest",
			text:     "export * from './a'\n/* todo\nconst x = 1\n",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsBarrelExport(tt.text))
		})
	}
}
