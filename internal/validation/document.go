package validation

import (
	"fmt"
	"strings"
)

// MaxTitleLen максимальная длина заголовка документа или события
const MaxTitleLen = 256

// ValidateTitle проверяет заголовок документа или события.
// Пустой заголовок (или состоящий из одних пробелов) не допускается.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title cannot be empty")
	}

	if len(title) > MaxTitleLen {
		return fmt.Errorf("title must not exceed %d characters", MaxTitleLen)
	}

	return nil
}
