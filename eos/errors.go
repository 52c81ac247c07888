package eos

import "errors"

var (
	// ErrConfiguration is returned for an unrecognized EOS variant or an
	// otherwise unusable run configuration.
	ErrConfiguration = errors.New("eos: configuration error")

	// ErrDataInconsistency is returned when an ideal-gas polynomial table
	// violates its bin or coefficient invariants.
	ErrDataInconsistency = errors.New("eos: inconsistent data")
)
