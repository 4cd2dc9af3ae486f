package interpreter

import (
	"time"

	"smart-task-api/pkg/datemath"
	"smart-task-api/pkg/llm"
	pkgLog "smart-task-api/pkg/log"
)

// Interpreter turns raw natural-language commands into validated task field
// sets via the completion service, with regex fallback extraction when the
// service's output is unusable.
type Interpreter struct {
	l        pkgLog.Logger
	llm      llm.Completer
	dateMath *datemath.Parser
	now      func() time.Time
}

// New creates a new Interpreter.
func New(l pkgLog.Logger, completer llm.Completer, dateMath *datemath.Parser) *Interpreter {
	return &Interpreter{
		l:        l,
		llm:      completer,
		dateMath: dateMath,
		now:      time.Now,
	}
}
