package msvc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is the terminal discovery failure: no installation candidate
// resolved to an existing configuration script.
var ErrNotFound = errors.New("Microsoft Visual Studio not found")

// ErrMalformedTranscript indicates the host shell's output did not split into
// the expected before/script/after stages.
var ErrMalformedTranscript = errors.New("malformed configuration transcript")

// UsageError reports that the configuration script printed a usage error in
// its own output despite exiting successfully.
type UsageError struct {
	Lines []string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("invalid parameters\n%s", strings.Join(e.Lines, "\n"))
}
