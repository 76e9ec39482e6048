package worker

import "errors"

// ErrSkipped is the result error of jobs dropped after Stop.
var ErrSkipped = errors.New("job skipped: pool stopped")
