package sink

import "errors"

// ErrSinkClosed indicates Append was called on a FileSink after Close.
var ErrSinkClosed = errors.New("sink: sink is closed")
