// Package safety guards the fallback move path. The operator is free
// to send any classified file to the trash, but a malformed or
// degenerate target must never reach a rename syscall.
package safety

import (
	"errors"
	"path/filepath"
	"strings"
)

var (
	ErrInvalidPath   = errors.New("invalid path")
	ErrProtectedPath = errors.New("protected path")
	ErrTrashCycle    = errors.New("path already inside trash directory")
)

// Validator enforces the move contract for the fallback mover.
type Validator struct {
	TrashDir string
}

func NewValidator(trashDir string) *Validator {
	return &Validator{TrashDir: filepath.Clean(trashDir)}
}

// ValidateMoveTarget is the single authorization point for fallback
// moves. Returns a typed error on violation.
func (v *Validator) ValidateMoveTarget(path string) error {
	p, err := NormalizePath(path)
	if err != nil {
		return err
	}
	if p == "/" || p == filepath.VolumeName(p)+string(filepath.Separator) {
		return ErrProtectedPath
	}
	if hasPathPrefix(p, v.TrashDir) {
		return ErrTrashCycle
	}
	return nil
}

// NormalizePath converts path to absolute, cleaned form.
func NormalizePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", ErrInvalidPath
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", ErrInvalidPath
	}
	return filepath.Clean(abs), nil
}

func hasPathPrefix(path, root string) bool {
	if root == "" {
		return false
	}
	if path == root {
		return true
	}
	return strings.HasPrefix(path, root+string(filepath.Separator))
}
