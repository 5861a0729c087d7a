package trash

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"reclaim/internal/safety"
)

// Mover moves files into the trash. It prefers the system primitive
// and falls back to a direct move into the trash directory, renaming
// on collision so nothing already trashed is ever overwritten.
type Mover struct {
	primitive Primitive
	trashDir  string
	validator *safety.Validator
	logger    *log.Logger
}

func NewMover(primitive Primitive, trashDir string, logger *log.Logger) *Mover {
	return &Mover{
		primitive: primitive,
		trashDir:  filepath.Clean(trashDir),
		validator: safety.NewValidator(trashDir),
		logger:    logger,
	}
}

// Move sends path to the trash. The primitive is tried first when
// available; any primitive failure degrades to the fallback move
// rather than aborting.
func (m *Mover) Move(path string) error {
	if m.primitive != nil && m.primitive.Available() {
		err := m.primitive.Trash(path)
		if err == nil {
			return nil
		}
		if m.logger != nil {
			m.logger.Printf("trash: %s failed, falling back to move: %v", m.primitive.Name(), err)
		}
	}
	return m.fallbackMove(path)
}

func (m *Mover) fallbackMove(path string) error {
	if err := m.validator.ValidateMoveTarget(path); err != nil {
		return err
	}
	if err := os.MkdirAll(m.trashDir, 0o700); err != nil {
		return fmt.Errorf("create trash dir: %w", err)
	}
	dest := m.collisionFreeName(filepath.Base(path))
	if err := movePath(path, dest); err != nil {
		return fmt.Errorf("move to trash: %w", err)
	}
	return nil
}

// collisionFreeName returns a destination path inside the trash dir
// that does not exist yet, appending " (N)" before the extension the
// way Finder names duplicates.
func (m *Mover) collisionFreeName(base string) string {
	dest := filepath.Join(m.trashDir, base)
	if _, err := os.Lstat(dest); errors.Is(err, os.ErrNotExist) {
		return dest
	}
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	for n := 1; ; n++ {
		dest = filepath.Join(m.trashDir, fmt.Sprintf("%s (%d)%s", stem, n, ext))
		if _, err := os.Lstat(dest); errors.Is(err, os.ErrNotExist) {
			return dest
		}
	}
}

// movePath renames src to dest, copying across filesystems when the
// trash dir lives on a different volume.
func movePath(src, dest string) error {
	err := os.Rename(src, dest)
	if err == nil {
		return nil
	}
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) && errors.Is(linkErr.Err, syscall.EXDEV) {
		return copyAndRemove(src, dest)
	}
	return err
}

func copyAndRemove(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		return err
	}
	if err := out.Close(); err != nil {
		os.Remove(dest)
		return err
	}
	return os.Remove(src)
}
