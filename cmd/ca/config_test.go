package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "a.yaml", configPath([]string{"-sim", "life", "-config", "a.yaml", "-tps", "3"}))
	assert.Equal(t, "b.yaml", configPath([]string{"--config=b.yaml"}))
	assert.Equal(t, "", configPath([]string{"-sim", "life"}))
}
