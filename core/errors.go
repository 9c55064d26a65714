package core

import "errors"

// ErrInsufficientData indicates fewer usable rows than the component-specific
// minimum: 3 samples for the metrics extractor, 20 rows for the transfer fit.
// Callers decide whether to skip a population group or abort.
var ErrInsufficientData = errors.New("not enough usable rows")
