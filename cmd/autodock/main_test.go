package main

import (
	"testing"

	"github.com/spacehole-rogue/autodock/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestGridSize(t *testing.T) {
	cols, rows := gridSize(config.WindowConfig{Width: 1280, Height: 720})
	assert.Equal(t, 80, cols)
	assert.Equal(t, 45, rows)

	cols, rows = gridSize(config.WindowConfig{Width: 1000, Height: 500})
	assert.Equal(t, 62, cols)
	assert.Equal(t, 31, rows)
}
