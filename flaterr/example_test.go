package flaterr_test

import (
	"fmt"
	"io/fs"

	"github.com/thanhminhmr/go-flaterr/flaterr"
)

// Path errors compare by pointer identity, so they cannot serve as payload
// in a comparable error set. Flattening captures their message, type, and
// causal chain into a value that can.
func ExampleCapture() {
	err := &fs.PathError{Op: "open", Path: "/etc/passwd", Err: fs.ErrPermission}

	flat := flaterr.Capture(err)
	fmt.Println(flat)
	fmt.Printf("%+v\n", flat)
	fmt.Println(flat == flaterr.Capture(err))

	// Output:
	// open /etc/passwd: permission denied
	// open /etc/passwd: permission denied (source: permission denied, original type: `*fs.PathError`)
	// true
}
