package storage

import (
	"os"

	"github.com/randomtask2000/Kohya-prep/internal/domain/port"
)

// FSWorkspace выполняет построение дерева и запись результатов на локальной
// файловой системе.
type FSWorkspace struct{}

func NewFSWorkspace() *FSWorkspace { return &FSWorkspace{} }

// PrepareClean рекурсивно удаляет path и создаёт его заново пустым.
func (w *FSWorkspace) PrepareClean(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return err
	}
	return os.MkdirAll(path, 0o755)
}

// EnsureDir создаёт path и недостающих родителей.
func (w *FSWorkspace) EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// WriteFile пишет data в path, заменяя существующий файл.
func (w *FSWorkspace) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

var _ port.Workspace = (*FSWorkspace)(nil)
