package types

import "go.uber.org/zap"

// Logger wraps a named zap sugared logger together with the path its file
// core writes to.
type Logger struct {
	*zap.SugaredLogger
	LogsPath string
	Name     string
}
