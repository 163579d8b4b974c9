package utils

import (
	"io"

	"github.com/MrSnakeDoc/tabgen/internal/logger"
)

// Close closes c and ignores any error.
// Use for read-only handles in defer where the error carries no information.
func Close(c io.Closer) {
	_ = c.Close()
}

// MustClose closes c and logs any error under the given name.
func MustClose(c io.Closer, log logger.Logger, name string) {
	if err := c.Close(); err != nil {
		log.Warn("failed to close", logger.String("name", name), logger.Error(err))
	}
}
