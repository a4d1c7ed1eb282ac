package config

import (
	"io"
	"io/fs"
	"os"
)

// Scenario files are read through fileSystem. Tests replace it with an
// fstest.MapFS.
var fileSystem fs.FS = osFS{}

type osFS struct{}

// Open implements fs.FS on top of the real filesystem. Unlike os.DirFS, it
// accepts absolute paths.
func (o osFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

func readFile(path string) ([]byte, error) {
	fd, err := fileSystem.Open(path)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return io.ReadAll(fd)
}
