package app

import (
	"fmt"

	"github.com/randomtask2000/Kohya-prep/internal/domain/entity"
	"github.com/randomtask2000/Kohya-prep/internal/domain/port"
)

// LayoutGenerator материализует LayoutPlan на диске.
type LayoutGenerator struct {
	workspace port.Workspace
}

func NewLayoutGenerator(workspace port.Workspace) *LayoutGenerator {
	return &LayoutGenerator{workspace: workspace}
}

// Build очищает корень плана и создаёт вложенное дерево датасета по порядку.
// Существующий корень удаляется: каждый прогон начинается с чистой
// директории. Возвращает листовую директорию для изображений.
func (g *LayoutGenerator) Build(plan *entity.LayoutPlan) (string, error) {
	if err := g.workspace.PrepareClean(plan.Root); err != nil {
		return "", fmt.Errorf("prepare %s: %w", plan.Root, err)
	}
	for _, dir := range plan.Dirs() {
		if err := g.workspace.EnsureDir(dir); err != nil {
			return "", fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return plan.ImageDir(), nil
}
