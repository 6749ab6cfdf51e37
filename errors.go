package mcf

import (
	"errors"
	"fmt"
)

// Sentinel errors for mcf operations. Callers should branch on these with
// errors.Is; messages are never stringified into the sentinel itself so
// wrapping with %w at call sites keeps errors.Is working.
var (
	// ErrBadArgument indicates an invalid node/arc id or an invalid bound
	// (lower > upper, negative capacity, etc).
	ErrBadArgument = errors.New("mcf: bad argument")

	// ErrAlreadySolved indicates a pre-solve-only mutation was attempted
	// after Solve has been called, without an intervening Reset.
	ErrAlreadySolved = errors.New("mcf: mutation after solve")

	// ErrNotSolved indicates a result accessor was called before Solve,
	// or Solve returned NotSolved.
	ErrNotSolved = errors.New("mcf: solver has not produced a result")

	// ErrNumericOverflow indicates the Big-M cost or an intermediate
	// cost*flow product would exceed int64 range.
	ErrNumericOverflow = errors.New("mcf: numeric overflow")

	// ErrIterationLimit indicates the pivot-count safety cap was hit
	// before the active pivot rule reported an empty sweep.
	ErrIterationLimit = errors.New("mcf: iteration limit reached")
)

// argErrorf wraps ErrBadArgument with call-site context. Sentinels are
// never stringified directly; %w keeps errors.Is(err, ErrBadArgument) true.
func argErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("mcf: "+format+": %w", append(args, ErrBadArgument)...)
}

// ValidationError aggregates every mismatch the validator (C8) finds in a
// single pass, rather than stopping at the first failure, so a test run
// reports the complete picture in one shot.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 1 {
		return fmt.Sprintf("mcf: validation failed: %s", e.Violations[0])
	}
	return fmt.Sprintf("mcf: validation failed (%d violations): %s", len(e.Violations), e.Violations[0])
}

// add appends a violation message. Validate returns nil, not an empty
// *ValidationError, when no violation was added.
func (e *ValidationError) add(format string, args ...interface{}) {
	e.Violations = append(e.Violations, fmt.Sprintf(format, args...))
}
