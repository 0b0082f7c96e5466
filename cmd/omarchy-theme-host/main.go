// package main implements a Chrome native messaging host that sends the
// current Omarchy theme color to the browser, and resends it whenever the
// theme changes.
//
// The host only writes to stdout.  It runs until the browser kills it or a
// fatal error occurs, in which case the exit status is the OS error code.
package main

import (
	"io"
	"os"
)

import (
	"github.com/p00ya/omarchy-theme-bridge/internal/chrome"
	"github.com/p00ya/omarchy-theme-bridge/internal/logging"
	"github.com/p00ya/omarchy-theme-bridge/internal/themehost"
)

// newHost returns the framer for out, which must be unbuffered.
func newHost(out io.Writer) *chrome.Host {
	return chrome.NewHost(out, logging.NewLogger("framer"))
}

func main() {
	log := logging.NewLogger("watcher")
	if len(os.Args) > 1 {
		// Chrome passes the calling extension's origin.
		log.Debugf("started by %s", os.Args[1])
	}

	err := themehost.New(newHost(os.Stdout), log).Run()
	os.Exit(themehost.ExitCode(err))
}
