package entity

import (
	"fmt"
	"path/filepath"
)

// DefaultRepeatFactor — множитель повторов Kohya, зашитый в имена директорий
// датасета.
const DefaultRepeatFactor = 3

// LayoutPlan описывает дерево выходных директорий одного прогона и выдаёт
// последовательные имена файлов. План считается один раз до записи;
// дальше меняется только счётчик.
type LayoutPlan struct {
	Root        string
	ClassName   string
	LoraName    string
	RepeatCount int
	SourceCount int

	seq int
}

// NewLayoutPlan строит план с множителем повторов по умолчанию.
func NewLayoutPlan(root, className, loraName string, sourceCount int) *LayoutPlan {
	return &LayoutPlan{
		Root:        root,
		ClassName:   className,
		LoraName:    loraName,
		RepeatCount: DefaultRepeatFactor,
		SourceCount: sourceCount,
	}
}

// DatasetName — токен "{repeat*count}_{class}", встречается в дереве дважды.
func (p *LayoutPlan) DatasetName() string {
	return fmt.Sprintf("%d_%s", p.RepeatCount*p.SourceCount, p.ClassName)
}

// LeafName — директория, куда попадают обучающие изображения.
func (p *LayoutPlan) LeafName() string {
	return fmt.Sprintf("%s %s", p.DatasetName(), p.LoraName)
}

// Dirs возвращает все директории дерева в порядке создания.
func (p *LayoutPlan) Dirs() []string {
	dataset := filepath.Join(p.Root, p.DatasetName())
	img := filepath.Join(dataset, "dest", "img")
	return []string{
		dataset,
		filepath.Join(dataset, "dest"),
		img,
		filepath.Join(img, "log"),
		filepath.Join(img, "model"),
		filepath.Join(img, p.LeafName()),
	}
}

// ImageDir — листовая директория для записи изображений.
func (p *LayoutPlan) ImageDir() string {
	dirs := p.Dirs()
	return dirs[len(dirs)-1]
}

// NextFileName сдвигает счётчик и возвращает следующее имя файла.
// Вызывается только для исходников, прошедших проверку читаемости,
// чтобы битые файлы не съедали номер.
func (p *LayoutPlan) NextFileName(format string) string {
	p.seq++
	return fmt.Sprintf("image_%d.%s", p.seq, format)
}

// Sequence возвращает, сколько имён уже выдано.
func (p *LayoutPlan) Sequence() int { return p.seq }
