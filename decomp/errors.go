// SPDX-License-Identifier: MIT

package decomp

import (
	"errors"
	"fmt"
)

// ErrUnknownMethod is returned by ParseMethod for names it does not recognise.
var ErrUnknownMethod = errors.New("decomp: unknown QR method")

// Operation tags used when wrapping sentinels.
const (
	opLU          = "LU"
	opGramSchmidt = "GramSchmidt"
	opHouseholder = "Householder"
	opDet         = "Det"
	opQR          = "QR"
	opParseMethod = "ParseMethod"
)

// Panic messages for invalid option values.
const (
	panicPivotTolerance = "decomp: WithPivotTolerance: tol must be finite, non-negative"
)

// decompErrorf wraps err with an operation tag, preserving it for errors.Is.
func decompErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
