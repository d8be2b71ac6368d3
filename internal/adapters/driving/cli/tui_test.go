package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTUICmd_Use(t *testing.T) {
	assert.Equal(t, "tui", tuiCmd.Use)
}

func TestTUICmd_Short(t *testing.T) {
	assert.Equal(t, "Browse and run examples in a terminal UI", tuiCmd.Short)
}

func TestTUICmd_LongDescribesControls(t *testing.T) {
	assert.Contains(t, tuiCmd.Long, "Controls:")
	assert.Contains(t, tuiCmd.Long, "Tab")
}

func TestTUICmd_NotConfigured(t *testing.T) {
	SetServices(nil)
	defer func() { servicesConfigured = false }()

	err := execute(new(bytes.Buffer), "tui")

	assert.Error(t, err)
}

func TestMCPCmd_HasServe(t *testing.T) {
	names := make([]string, 0)
	for _, c := range mcpCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "serve")
	assert.NotNil(t, mcpServeCmd.Flags().Lookup("port"))
}

func TestMCPServe_NotConfigured(t *testing.T) {
	SetServices(nil)
	defer func() { servicesConfigured = false }()

	err := execute(new(bytes.Buffer), "mcp", "serve")

	assert.Error(t, err)
}
