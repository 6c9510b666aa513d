package port

// Workspace выполняет файловые эффекты построения дерева и записи результатов,
// чтобы сервисы оставались тестируемыми.
type Workspace interface {
	// PrepareClean рекурсивно удаляет path и создаёт его заново пустым.
	PrepareClean(path string) error

	// EnsureDir создаёт path и недостающих родителей. Падает, если сегмент
	// существует и не является директорией.
	EnsureDir(path string) error

	// WriteFile пишет data в path, заменяя существующий файл.
	WriteFile(path string, data []byte) error
}
