package workers

import "errors"

var ErrDispatcherStopped = errors.New("dispatcher stopped")
