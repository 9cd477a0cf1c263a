package lesspass

import (
	"errors"
	"fmt"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// ErrInvalidArgument is wrapped by every error this package returns; all of them are caller
// errors detected before any output is produced.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	ErrLength     = fmt.Errorf("%w: length must be an integer in the [%d; %d] range", ErrInvalidArgument, MinLength, MaxLength)
	ErrCounter    = fmt.Errorf("%w: counter must be an integer in the [0; %d] range", ErrInvalidArgument, MaxCounter)
	ErrIterations = fmt.Errorf("%w: iterations must be an integer in the [%d; 100,000,000] range", ErrInvalidArgument, MinIterations)
	ErrCharset    = fmt.Errorf("%w: not all characters can be excluded", ErrInvalidArgument)
	ErrAlgorithm  = fmt.Errorf("%w: unknown digest algorithm", ErrInvalidArgument)
	ErrEntropy    = fmt.Errorf("%w: entropy must be %d hexadecimal characters", ErrInvalidArgument, EntropySize*2)
)
