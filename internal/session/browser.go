package session

import (
	"os/exec"
	"path/filepath"
	"runtime"
)

// Browser reveals a file's containing directory in the desktop file
// manager.
type Browser interface {
	Open(path string) error
}

// OSBrowser shells out to the platform opener.
type OSBrowser struct{}

func (OSBrowser) Open(path string) error {
	dir := filepath.Dir(path)
	opener := "xdg-open"
	if runtime.GOOS == "darwin" {
		opener = "open"
	}
	return exec.Command(opener, dir).Start()
}

// FakeBrowser records Open calls for tests.
type FakeBrowser struct {
	Opened []string
	Err    error
}

func (f *FakeBrowser) Open(path string) error {
	f.Opened = append(f.Opened, path)
	return f.Err
}
