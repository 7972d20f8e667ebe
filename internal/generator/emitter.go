package generator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Emitter receives the complete source of one generated file.
type Emitter interface {
	Emit(pkgPath, baseName string, src []byte) error
}

// FileEmitter writes generated files next to the package sources.
type FileEmitter struct {
	mu   sync.RWMutex
	dirs map[string]string
	// outputDir, when set, receives every file instead. It holds one Go
	// package, the first one emitted into it.
	outputDir string
	outputPkg string
}

// NewFileEmitter creates a file emitter. outputDir may be empty.
func NewFileEmitter(outputDir string) *FileEmitter {
	return &FileEmitter{dirs: map[string]string{}, outputDir: outputDir}
}

// SetDir records the source directory of a package.
func (e *FileEmitter) SetDir(pkgPath, dir string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dirs[pkgPath] = dir
}

// Path returns where the file for baseName in pkgPath is written.
func (e *FileEmitter) Path(pkgPath, baseName string) (string, error) {
	dir := e.outputDir
	if dir == "" {
		e.mu.RLock()
		d, ok := e.dirs[pkgPath]
		e.mu.RUnlock()
		if !ok {
			return "", fmt.Errorf("no directory known for package %q", pkgPath)
		}
		dir = d
	}
	return filepath.Join(dir, FileName(baseName)), nil
}

func (e *FileEmitter) Emit(pkgPath, baseName string, src []byte) error {
	path, err := e.Path(pkgPath, baseName)
	if err != nil {
		return err
	}
	if e.outputDir != "" {
		if err := e.claimOutputDir(pkgPath); err != nil {
			return err
		}
		if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, src, 0o644)
}

// claimOutputDir binds the output directory to pkgPath on first use and
// rejects files of any other package.
func (e *FileEmitter) claimOutputDir(pkgPath string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch e.outputPkg {
	case "":
		e.outputPkg = pkgPath
	case pkgPath:
	default:
		return fmt.Errorf("output dir %s already holds package %s, cannot add files of %s",
			e.outputDir, e.outputPkg, pkgPath)
	}
	return nil
}

// DryRunEmitter prints generated files instead of writing them.
type DryRunEmitter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewDryRunEmitter creates an emitter printing to w.
func NewDryRunEmitter(w io.Writer) *DryRunEmitter {
	return &DryRunEmitter{w: w}
}

func (e *DryRunEmitter) Emit(pkgPath, baseName string, src []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, err := fmt.Fprintf(e.w, "// %s/%s\n", pkgPath, FileName(baseName)); err != nil {
		return err
	}
	_, err := e.w.Write(src)
	return err
}
