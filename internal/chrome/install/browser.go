package install

import "fmt"

// Browser selects which browser's manifest directories to use.
type Browser string

const (
	Chromium Browser = "chromium"
	Chrome   Browser = "chrome"
)

// userSubDirs are the user-specific install locations, relative to a user's
// home directory.
var userSubDirs = map[Browser]string{
	Chromium: ".config/chromium/NativeMessagingHosts",
	Chrome:   ".config/google-chrome/NativeMessagingHosts",
}

// systemDirs are the system-wide install locations.
var systemDirs = map[Browser]string{
	Chromium: "/etc/chromium/native-messaging-hosts",
	Chrome:   "/etc/opt/chrome/native-messaging-hosts",
}

// String implements pflag.Value.
func (b *Browser) String() string {
	return string(*b)
}

// Set implements pflag.Value.
func (b *Browser) Set(value string) error {
	if _, ok := userSubDirs[Browser(value)]; !ok {
		return fmt.Errorf("unknown browser %q, want %s or %s", value, Chromium, Chrome)
	}
	*b = Browser(value)
	return nil
}

// Type implements pflag.Value.
func (b *Browser) Type() string {
	return "browser"
}

func (b Browser) userSubDir() (string, error) {
	if dir, ok := userSubDirs[b]; ok {
		return dir, nil
	}
	return "", fmt.Errorf("unknown browser %q", string(b))
}

func (b Browser) systemDir() (string, error) {
	if dir, ok := systemDirs[b]; ok {
		return dir, nil
	}
	return "", fmt.Errorf("unknown browser %q", string(b))
}
