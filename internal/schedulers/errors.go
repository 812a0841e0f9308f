package schedulers

import "errors"

var (
	// ErrMissingPriority is returned by the priority-based algorithms when at
	// least one input process has no priority assigned. It is reported before
	// any scheduling decision is made.
	ErrMissingPriority = errors.New("process has no priority assigned")

	// ErrInvalidTimeQuantum is returned by Round Robin for a non-positive
	// quantum, regardless of input size.
	ErrInvalidTimeQuantum = errors.New("time quantum must be positive")
)
