package port

import "errors"

// ErrUnavailable возвращает бэкенд, который не может отработать: либо сборка
// без нативной зависимости, либо не выполнено предусловие на вход.
// Вызывающие трактуют это как «пропустить шаг».
var ErrUnavailable = errors.New("backend is not available")
