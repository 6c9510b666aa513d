package entity

import "image"

// FaceCrop собирает кропы одного кадра вместе с тегами подписей.
// На кадр выдаётся не больше одного FaceCrop, даже если лиц несколько.
type FaceCrop struct {
	Feature     image.Image // необработанная область лица
	FeatureTags TagSet
	Head        image.Image // расширенная область головы, дополненная до фиксированного квадрата
	HeadTags    TagSet

	// Masked хранит вырезки по чертам лица с обнулёнными пикселями вне полигона.
	// Заполняется только для черт с достаточным числом точек.
	Masked map[string]image.Image
}
