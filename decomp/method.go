// SPDX-License-Identifier: MIT

package decomp

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/linalg/element"
	"github.com/katalvlaran/linalg/matrix"
)

// Method names a QR algorithm for callers that select it at run time
// (configuration, command-line flags). The zero value, MethodUnknown, is
// rejected by QR.
type Method int

const (
	// MethodUnknown is the zero value; QR rejects it.
	MethodUnknown Method = iota
	// MethodGramSchmidt selects GramSchmidt.
	MethodGramSchmidt
	// MethodHouseholder selects Householder.
	MethodHouseholder
)

// String returns the canonical lower-case name accepted by ParseMethod.
func (m Method) String() string {
	switch m {
	case MethodGramSchmidt:
		return "gram-schmidt"
	case MethodHouseholder:
		return "householder"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps a name to a Method. Matching ignores case and accepts
// "gram-schmidt", "gramschmidt", "gs", "householder" and "hh".
// Errors: ErrUnknownMethod for anything else.
func ParseMethod(name string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gram-schmidt", "gramschmidt", "gs":
		return MethodGramSchmidt, nil
	case "householder", "hh":
		return MethodHouseholder, nil
	default:
		return MethodUnknown, decompErrorf(opParseMethod, fmt.Errorf("%q: %w", name, ErrUnknownMethod))
	}
}

// QR runs the factorization selected by method.
// Errors: those of the selected algorithm, or ErrUnknownMethod.
func QR[E element.Float](a *matrix.Dense[E], method Method) (*QRResult[E], error) {
	switch method {
	case MethodGramSchmidt:
		return GramSchmidt(a)
	case MethodHouseholder:
		return Householder(a)
	default:
		return nil, decompErrorf(opQR, ErrUnknownMethod)
	}
}
