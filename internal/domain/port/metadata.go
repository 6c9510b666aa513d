package port

// OrientationReader извлекает значение ориентации EXIF из закодированного
// изображения. Любая ошибка означает «ориентация неизвестна» и даёт
// тождественный поворот.
type OrientationReader interface {
	Orientation(data []byte) (int, error)
}
