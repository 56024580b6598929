package geom

import "errors"

// ErrDegenerateLine indicates that a line's two endpoints coincide
// within Epsilon, so the line has no well-defined direction.
var ErrDegenerateLine = errors.New("geom: line start and end must differ")
