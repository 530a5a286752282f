//go:build unit

package walker

import (
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lerenn/code-hygiene/pkg/fs"
	"github.com/lerenn/code-hygiene/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeEntry struct {
	name string
	dir  bool
}

func (e fakeEntry) Name() string {
	return e.name
}

func (e fakeEntry) IsDir() bool {
	return e.dir
}

func (e fakeEntry) Type() iofs.FileMode {
	if e.dir {
		return iofs.ModeDir
	}
	return 0
}

func (e fakeEntry) Info() (iofs.FileInfo, error) {
	return fakeInfo(e), nil
}

type fakeInfo fakeEntry

func (i fakeInfo) Name() string {
	return i.name
}

func (i fakeInfo) Size() int64 {
	return 0
}

func (i fakeInfo) Mode() iofs.FileMode {
	return fakeEntry(i).Type()
}

func (i fakeInfo) ModTime() time.Time {
	return time.Time{}
}

func (i fakeInfo) IsDir() bool {
	return i.dir
}

func (i fakeInfo) Sys() any {
	return nil
}

func TestWalker_Walk_UnreadableSubdirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fs.NewMockFS(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)

	root := "/project"
	mockFS.EXPECT().ReadDir(root).Return([]os.DirEntry{
		fakeEntry{name: "locked", dir: true},
		fakeEntry{name: "src", dir: true},
		fakeEntry{name: "index.html"},
	}, nil)
	mockFS.EXPECT().ReadDir(filepath.Join(root, "locked")).Return(nil, os.ErrPermission)
	mockFS.EXPECT().ReadDir(filepath.Join(root, "src")).Return([]os.DirEntry{
		fakeEntry{name: "main.ts"},
	}, nil)
	mockLogger.EXPECT().Logf("Skipping unreadable directory %s: %v", "locked", os.ErrPermission).Times(1)

	w := NewWalker(NewWalkerParams{FS: mockFS, Logger: mockLogger})

	var seen []string
	err := w.Walk(root, func(relDir string, _, _ []string) error {
		seen = append(seen, relDir)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{".", "src"}, seen)
}

func TestWalker_Walk_PruneIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fs.NewMockFS(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)

	mockFS.EXPECT().ReadDir("/project").Return([]os.DirEntry{
		fakeEntry{name: "node_modules", dir: true},
	}, nil)
	mockLogger.EXPECT().Logf("Pruning directory: %s", "node_modules").Times(1)

	w := NewWalker(NewWalkerParams{FS: mockFS, Logger: mockLogger})
	err := w.Walk("/project", func(relDir string, dirs, _ []string) error {
		assert.Empty(t, dirs)
		return nil
	})
	assert.NoError(t, err)
}
