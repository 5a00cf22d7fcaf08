package app

import (
	"fmt"
	"runtime/debug"

	"github.com/bft-labs/pomo/internal/ports"
	"github.com/bft-labs/pomo/pkg/log"
)

// notify calls every registered observer in registration order.
// A panicking observer is logged and skipped so the remaining observers and
// the cycle itself are unaffected.
func (e *Engine) notify() {
	for i, o := range e.observers {
		e.safeNotify(i, o)
	}
}

func (e *Engine) safeNotify(index int, o ports.Observer) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("observer panicked",
				log.Int("observer", index),
				log.String("panic", fmt.Sprint(r)),
				log.String("stack", string(debug.Stack())),
			)
		}
	}()
	o.OnCycleComplete(e.nextState, e.completedPomodoros)
}
