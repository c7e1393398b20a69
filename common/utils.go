package common

import (
	"log"
	"runtime"
)

// HandleError logs a non-nil error with its call site and reports
// whether an error was present, letting callers skip-and-continue.
func HandleError(err error) (b bool) {
	if err != nil {
		// notice that we're using 1, so it will actually log where
		// the error happened, 0 = this function, we don't want that.
		_, fn, line, _ := runtime.Caller(1)
		log.Printf("[error] %s:%d %v", fn, line, err)
		b = true
	}
	return
}
