package disasm

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeProfile(t *testing.T, text string) (path string) {
	t.Helper()

	path = filepath.Join(t.TempDir(), "layout.star")
	err := os.WriteFile(path, []byte(text), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	return
}

func TestLoadConfig(t *testing.T) {
	assert := assert.New(t)

	path := writeProfile(t, "base = 96\ndata = 296\nterminator = \"SYSCALL\"\n")

	config, err := LoadConfig(path)
	assert.NoError(err)
	assert.Equal(uint32(96), config.Base)
	assert.Equal(uint32(296), config.Data)
	assert.Equal("SYSCALL", config.Terminator)
}

func TestLoadConfigDefaults(t *testing.T) {
	assert := assert.New(t)

	path := writeProfile(t, "# nothing overridden\n")

	config, err := LoadConfig(path)
	assert.NoError(err)
	assert.Equal(DefaultConfig(), config)
}

func TestLoadConfigPartial(t *testing.T) {
	assert := assert.New(t)

	path := writeProfile(t, "base = 0\n")

	config, err := LoadConfig(path)
	assert.NoError(err)
	assert.Equal(uint32(0), config.Base)
	assert.Equal(DefaultConfig().Data, config.Data)
	assert.Equal(DefaultConfig().Terminator, config.Terminator)
}

func TestLoadConfigBadValue(t *testing.T) {
	assert := assert.New(t)

	table := []string{
		"base = \"oops\"\n",
		"data = -1\n",
		"data = 0x100000000\n",
		"terminator = 4\n",
	}

	for _, text := range table {
		path := writeProfile(t, text)

		_, err := LoadConfig(path)
		var ev ErrConfigValue
		assert.Error(err, text)
		assert.True(errors.As(err, &ev), text)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	assert := assert.New(t)

	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.star"))
	assert.Error(err)
}
