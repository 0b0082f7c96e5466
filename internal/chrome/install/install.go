// Package install registers a native messaging host with Chromium-family
// browsers on Linux.
package install

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Manifest models the Chrome native messaging host manifest JSON.
//
// See the official Chrome documentation at:
// https://developer.chrome.com/docs/apps/nativeMessaging/#native-messaging-host
type Manifest struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Path           string   `json:"path"`
	AllowedOrigins []string `json:"allowed_origins"`
	Typ            string   `json:"type"`
}

// manifestType is the (only supported) value for the "type" field in the
// manifest.
const manifestType = "stdio"

// Marshal returns on-disk encoding of the manifest.
func (m Manifest) Marshal() ([]byte, error) {
	m.Typ = manifestType
	if m.AllowedOrigins == nil {
		m.AllowedOrigins = []string{}
	}
	return json.MarshalIndent(m, "", "  ")
}

// Filename is the appropriate name for the manifest file (with no path).
func (m Manifest) Filename() string {
	return m.Name + ".json"
}

// CurrentUser installs the manifest for the calling user.
func CurrentUser(m Manifest, b Browser) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return User(m, b, home)
}

// User installs the manifest in a user-specific directory under homeDir,
// creating the directory if needed.  It returns the manifest's path.
func User(m Manifest, b Browser, homeDir string) (string, error) {
	sub, err := b.userSubDir()
	if err != nil {
		return "", err
	}
	return install(m, filepath.Join(homeDir, sub))
}

// System installs the manifest in the system-wide directory.  It returns the
// manifest's path.
func System(m Manifest, b Browser) (string, error) {
	dir, err := b.systemDir()
	if err != nil {
		return "", err
	}
	return install(m, dir)
}

// install writes the serialized manifest into dir.
func install(m Manifest, dir string) (string, error) {
	buf, err := m.Marshal()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf(`creating manifest directory: %w`, err)
	}
	name := filepath.Join(dir, m.Filename())
	if err := os.WriteFile(name, buf, 0644); err != nil {
		return "", fmt.Errorf(`writing manifest: %w`, err)
	}
	return name, nil
}
