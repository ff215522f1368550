package optimize

import "errors"

// ErrFold indicates the reduce pass's constant-folding phase could not
// evaluate a binary expression whose operands were both numeric literals
// (division by zero, an unknown operator, or arithmetic overflow). Such a
// failure aborts the reduce pass rather than silently skipping the
// offending node.
var ErrFold = errors.New("optimize: constant fold failed")
