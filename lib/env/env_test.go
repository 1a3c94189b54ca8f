package env_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oss.terrastruct.com/shapes/lib/env"
)

func TestDir(t *testing.T) {
	t.Setenv("SHAPES_DIR", "")
	assert.Equal(t, ".", env.Dir())

	t.Setenv("SHAPES_DIR", "/tmp/shapes")
	assert.Equal(t, "/tmp/shapes", env.Dir())
}

func TestDebug(t *testing.T) {
	t.Setenv("DEBUG", "1")
	assert.True(t, env.Debug())

	t.Setenv("DEBUG", "")
	assert.False(t, env.Debug())
}
