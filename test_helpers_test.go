package radical

import "errors"

var errWrite = errors.New("write err")

type errWriter struct{}

func (errWriter) Write(_ []byte) (int, error) {
	return 0, errWrite
}

// discardWriter accepts everything, mirroring io.Discard without the
// ReaderFrom fast path.
type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) {
	return len(p), nil
}
