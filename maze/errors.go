package maze

import "fmt"

// ConfigurationError reports a board size that cannot be carved
type ConfigurationError struct {
	Size int
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("maze: size %d too small (minimum %d)", e.Size, MinSize)
}
