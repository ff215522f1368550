package alias

import "errors"

// ErrExportTargetUnresolved indicates an export's alias names no
// variable the expander ever bound — the environment and the Dst
// program have drifted apart, which should not happen for a program
// that passed through package expand successfully.
var ErrExportTargetUnresolved = errors.New("alias: export alias is not a bound variable")
