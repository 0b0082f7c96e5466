package omarchy

import (
	"errors"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
)

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeLayout creates the Omarchy directory layout under a temporary home and
// returns the home directory.
func makeLayout(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	themeDir := filepath.Join(home, ".config", "omarchy", "current", "theme")
	require.NoError(t, os.MkdirAll(themeDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(themeDir, "chromium.theme"), []byte("1,2,3\n"), 0644))
	return home
}

func TestHomeDir(t *testing.T) {
	t.Run("FromEnv", func(t *testing.T) {
		t.Setenv("HOME", "/home/test")
		home, err := HomeDir()
		require.NoError(t, err)
		assert.Equal(t, "/home/test", home)
	})

	t.Run("EmptyEnvFallsBack", func(t *testing.T) {
		t.Setenv("HOME", "")
		orig := lookupUser
		t.Cleanup(func() { lookupUser = orig })
		lookupUser = func() (*user.User, error) {
			return &user.User{HomeDir: "/var/home/fallback"}, nil
		}

		home, err := HomeDir()
		require.NoError(t, err)
		assert.Equal(t, "/var/home/fallback", home)
	})

	t.Run("NoSource", func(t *testing.T) {
		t.Setenv("HOME", "")
		orig := lookupUser
		t.Cleanup(func() { lookupUser = orig })
		lookupUser = func() (*user.User, error) {
			return nil, errors.New("user: unknown userid 4242")
		}

		_, err := HomeDir()
		var resErr *ResolutionError
		require.ErrorAs(t, err, &resErr)
		assert.ErrorIs(t, err, syscall.ENOENT)
	})

	t.Run("TooLong", func(t *testing.T) {
		t.Setenv("HOME", "/"+strings.Repeat("h", PathMax-1))
		_, err := HomeDir()
		assert.ErrorIs(t, err, syscall.ERANGE)
	})
}

func TestCurrentDir(t *testing.T) {
	t.Run("Exists", func(t *testing.T) {
		home := makeLayout(t)
		dir, err := CurrentDir(home)
		require.NoError(t, err)
		assert.Equal(t, home+"/.config/omarchy/current", dir)
	})

	t.Run("Symlink", func(t *testing.T) {
		home := t.TempDir()
		target := filepath.Join(home, "themes", "tokyo-night")
		require.NoError(t, os.MkdirAll(target, 0755))
		require.NoError(t, os.MkdirAll(filepath.Join(home, ".config", "omarchy"), 0755))
		require.NoError(t, os.Symlink(target, filepath.Join(home, ".config", "omarchy", "current")))

		_, err := CurrentDir(home)
		assert.NoError(t, err)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := CurrentDir(t.TempDir())
		var resErr *ResolutionError
		require.ErrorAs(t, err, &resErr)
		assert.Equal(t, "opendir", resErr.Op)
		assert.ErrorIs(t, err, syscall.ENOENT)
	})

	t.Run("NotADirectory", func(t *testing.T) {
		home := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(home, ".config", "omarchy"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(home, ".config", "omarchy", "current"), nil, 0644))

		_, err := CurrentDir(home)
		assert.ErrorIs(t, err, syscall.ENOTDIR)
	})

	t.Run("Overflow", func(t *testing.T) {
		// The home fits, the formatted path doesn't.
		home := "/" + strings.Repeat("h", PathMax-10)
		_, err := CurrentDir(home)
		var resErr *ResolutionError
		require.ErrorAs(t, err, &resErr)
		assert.Equal(t, "format", resErr.Op)
		assert.ErrorIs(t, err, syscall.ERANGE)
	})
}

func TestThemeFile(t *testing.T) {
	home := makeLayout(t)
	current := home + "/.config/omarchy/current"

	path, err := ThemeFile(current)
	require.NoError(t, err)
	assert.Equal(t, current+"/theme/chromium.theme", path)

	require.NoError(t, os.Remove(path))
	_, err = ThemeFile(current)
	assert.ErrorIs(t, err, syscall.ENOENT)
}
