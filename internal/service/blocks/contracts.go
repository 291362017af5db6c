package blocks

import "context"

// BlockRepository интерфейс репозитория временных блоков
type BlockRepository interface {
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
