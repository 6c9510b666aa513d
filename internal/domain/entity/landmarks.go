package entity

import (
	"image"
	"sort"
)

// LandmarkSet сопоставляет имени черты лица упорядоченные точки её контура.
// Пустой набор означает, что детекция ориентиров ничего не нашла.
type LandmarkSet map[string][]image.Point

// Empty сообщает, что ни у одной черты нет точек.
func (s LandmarkSet) Empty() bool {
	for _, pts := range s {
		if len(pts) > 0 {
			return false
		}
	}
	return true
}

// Names возвращает отсортированные имена черт хотя бы с одной точкой.
func (s LandmarkSet) Names() []string {
	names := make([]string, 0, len(s))
	for name, pts := range s {
		if len(pts) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
