//go:build unit

package cli

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/lerenn/code-hygiene/pkg/config"
	"github.com/lerenn/code-hygiene/pkg/fs"
)

func TestSession_ConfigError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFS := fs.NewMockFS(ctrl)
	mockManager := config.NewMockManager(ctrl)

	expectRoot(mockFS)
	mockManager.EXPECT().DefaultConfig().Return(config.NewManager(mockFS).DefaultConfig())
	mockManager.EXPECT().
		ResolveConfig(projectRoot, "custom.yaml").
		Return(nil, "", fmt.Errorf("%w: custom.yaml", config.ErrConfigNotFound))

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd(&Options{FS: mockFS, ConfigManager: mockManager})
	cmd.SetArgs([]string{"unused", projectRoot, "--config", "custom.yaml", "--quiet"})
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	assert.Equal(t, 1, Execute(cmd))
	assert.Empty(t, stdout.String())
	assert.Equal(t, "Error: config file not found: custom.yaml\n", stderr.String())
}

func TestExecute_UsageError(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd(&Options{})
	cmd.SetArgs([]string{"untested", "a", "b"})
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	assert.Equal(t, 1, Execute(cmd))
	assert.Contains(t, stderr.String(), "Error: accepts at most 1 arg(s), received 2")
}
