// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/decomp"
	"github.com/katalvlaran/linalg/element"
	"github.com/katalvlaran/linalg/internal/config"
	"github.com/katalvlaran/linalg/internal/logging"
	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/random"
)

// run dispatches on the configured precision.
func run(cfg *config.Config, log *logging.Logger) error {
	switch cfg.Precision {
	case config.PrecisionFloat32:
		return diagnose[float32](cfg, log)
	case config.PrecisionFloat64:
		return diagnose[float64](cfg, log)
	default:
		return fmt.Errorf("%w: precision %q", config.ErrInvalid, cfg.Precision)
	}
}

// diagnose draws a standard normal matrix and logs, per factorization, the
// largest reconstruction error and (for QR) the loss of orthogonality.
func diagnose[E element.Float](cfg *config.Config, log *logging.Logger) error {
	a := random.Normal[E](cfg.Rows, cfg.Cols, random.WithSeed(cfg.Seed))
	log = log.ForInput(cfg.Rows, cfg.Cols, cfg.Precision)
	log.Debug("input", zap.Stringer("matrix", a))

	var opts []decomp.Option
	if cfg.ExactPivot {
		opts = append(opts, decomp.WithExactPivot())
	}

	if a.IsSquare() {
		if err := diagnoseLU(a, opts, log); err != nil {
			return err
		}
	} else {
		log.Info("skipping LU and determinant: input is not square")
	}

	method := cfg.QRMethod()
	start := time.Now()
	qr, err := decomp.QR(a, method)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	prod, err := matrix.Mul(qr.Q, qr.R)
	if err != nil {
		return err
	}
	residual, err := matrix.MaxAbsDiff(a, prod)
	if err != nil {
		return err
	}
	orth, err := matrix.MaxAbsDiff(matrix.Gram(qr.Q), matrix.Identity[E](cfg.Rows))
	if err != nil {
		return err
	}
	log.Info("qr",
		zap.Stringer("method", method),
		zap.Float64("residual", float64(residual)),
		zap.Float64("orthogonality", float64(orth)),
		zap.Duration("elapsed", elapsed),
	)

	return nil
}

func diagnoseLU[E element.Float](a *matrix.Dense[E], opts []decomp.Option, log *logging.Logger) error {
	start := time.Now()
	res, err := decomp.LU(a, opts...)
	switch {
	case errors.Is(err, matrix.ErrSingularMatrix):
		log.Warn("lu: singular input", zap.Error(err))
	case err != nil:
		return err
	default:
		residual, err := matrix.MaxAbsDiff(a, res.Reconstruct())
		if err != nil {
			return err
		}
		log.Info("lu",
			zap.Ints("perm", res.P),
			zap.Int("swaps", decomp.PermutationSwaps(res.P)),
			zap.Float64("residual", float64(residual)),
			zap.Duration("elapsed", time.Since(start)),
		)
	}

	det, err := decomp.Det(a, opts...)
	if err != nil {
		return err
	}
	log.Info("det",
		zap.Float64("value", float64(det)),
		zap.Float64("reference", mat.Det(matrix.AsGonum(a))),
	)

	return nil
}
