package entity

import (
	"sort"
	"strings"
)

// TagSet — отсортированный набор тегов подписи одного изображения, без дублей.
type TagSet []string

// NewTagSet собирает набор из имён, отбрасывая дубли.
func NewTagSet(names ...string) TagSet {
	seen := make(map[string]struct{}, len(names))
	set := make(TagSet, 0, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		set = append(set, name)
	}
	sort.Strings(set)
	return set
}

// Union возвращает новый набор с тегами обоих наборов.
func (s TagSet) Union(other TagSet) TagSet {
	return NewTagSet(append(append([]string{}, s...), other...)...)
}

// Contains сообщает, есть ли имя в наборе.
func (s TagSet) Contains(name string) bool {
	for _, t := range s {
		if t == name {
			return true
		}
	}
	return false
}

// Caption рендерит набор в текст файла подписи.
func (s TagSet) Caption() string {
	return strings.Join(s, ", ")
}

// FallbackFeatureTags — общий набор тегов на случай, когда детекция ориентиров
// на кропе лица ничего не дала.
func FallbackFeatureTags() TagSet {
	return NewTagSet("face", "forehead", "eye_region", "nose_region", "mouth_region", "chin_region")
}
