package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_AllPresent(t *testing.T) {
	t.Setenv("LYRICECHO_TEST_A", "a")
	t.Setenv("LYRICECHO_TEST_B", "b")

	env, err := LoadEnv([]string{"LYRICECHO_TEST_A", "LYRICECHO_TEST_B"})
	require.NoError(t, err)
	assert.Equal(t, "a", env["LYRICECHO_TEST_A"])
	assert.Equal(t, "b", env["LYRICECHO_TEST_B"])
}

func TestLoadEnv_Missing(t *testing.T) {
	t.Setenv("LYRICECHO_TEST_EMPTY", "")

	_, err := LoadEnv([]string{"LYRICECHO_TEST_EMPTY"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LYRICECHO_TEST_EMPTY")
}

func TestGetEnv(t *testing.T) {
	t.Setenv("LYRICECHO_TEST_SET", "value")
	t.Setenv("LYRICECHO_TEST_UNSET", "")

	assert.Equal(t, "value", GetEnv("LYRICECHO_TEST_SET", "def"))
	assert.Equal(t, "def", GetEnv("LYRICECHO_TEST_UNSET", "def"))
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("LYRICECHO_TEST_DUR", "")
	d, err := GetEnvDuration("LYRICECHO_TEST_DUR", 3*time.Second)
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, d)

	t.Setenv("LYRICECHO_TEST_DUR", "250ms")
	d, err = GetEnvDuration("LYRICECHO_TEST_DUR", time.Second)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, d)

	t.Setenv("LYRICECHO_TEST_DUR", "soon")
	_, err = GetEnvDuration("LYRICECHO_TEST_DUR", time.Second)
	assert.Error(t, err)
}
