// package main implements a command-line utility for registering the theme
// host with Chromium or Google Chrome.
package main

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
)

import flag "github.com/spf13/pflag"

import "github.com/p00ya/omarchy-theme-bridge/internal/chrome/install"

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage:\n"+
		"%s [--system] [--browser BROWSER] [-o ORIGIN]... [-d DESC] [--print] NAME BINARY\n\n", os.Args[0])
	flag.PrintDefaults()
}

const (
	exitSuccess      = 0
	exitInvalidUsage = 1
	exitFailure      = 2
)

var nameRegexp = regexp.MustCompile(`^([a-z0-9_]+)(\.[a-z0-9_]+)*$`)

func validateName(name string) bool {
	return nameRegexp.MatchString(name)
}

// validateOrigins checks that every origin parses as a URL.
func validateOrigins(origins []string) error {
	for _, o := range origins {
		if _, err := url.Parse(o); err != nil {
			return fmt.Errorf("invalid origin %q: %w", o, err)
		}
	}
	return nil
}

func main() {
	sys := flag.Bool("system", false, "Install system-wide (instead of for current user)")
	desc := flag.StringP("description", "d", "Omarchy theme color", "Host description")
	origins := flag.StringArrayP("origin", "o", nil, "Allowed-origin URL.  Repeat flag for multiple URLs")
	printOnly := flag.Bool("print", false, "Write the manifest to stdout instead of installing it")
	browser := install.Chromium
	flag.Var(&browser, "browser", "Browser to register with: chromium or chrome")

	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Error: expected 2 arguments, got %d\n", flag.NArg())
		printUsage()
		os.Exit(exitInvalidUsage)
	}

	name := flag.Arg(0)
	if !validateName(name) {
		fmt.Fprintf(os.Stderr, "Error: invalid host name \"%s\"\n", name)
		os.Exit(exitInvalidUsage)
	}
	if err := validateOrigins(*origins); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitInvalidUsage)
	}
	binary := flag.Arg(1)
	switch fi, err := os.Stat(binary); {
	case err != nil:
		fmt.Fprintf(os.Stderr, "Warning: accessing binary: %v\n", err)
	case fi.Mode()&0100 == 0:
		fmt.Fprintf(os.Stderr, "Warning: binary %s is not executable\n", binary)
	}
	absPath, err := filepath.Abs(binary)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving absolute path to %s\n", binary)
		os.Exit(exitFailure)
	}

	m := install.Manifest{
		Name:           name,
		Description:    *desc,
		Path:           absPath,
		AllowedOrigins: *origins,
	}

	if *printOnly {
		buf, err := m.Marshal()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitFailure)
		}
		fmt.Println(string(buf))
		os.Exit(exitSuccess)
	}

	var written string
	if *sys {
		written, err = install.System(m, browser)
	} else {
		written, err = install.CurrentUser(m, browser)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitFailure)
	}

	fmt.Printf("Wrote manifest for %s to %s\n", name, written)
}
