// SPDX-License-Identifier: MIT

package binding

import "github.com/pkg/errors"

var (
	// ErrMulShape reports a product whose operand shapes are not multipliable
	// within the registry (inner mismatch, unregistered operand or result, 1x1 result).
	ErrMulShape = errors.New("binding: incompatible shapes for multiplication")

	// ErrNoBinding reports an (op, form, operands) combination the catalog does not hold.
	ErrNoBinding = errors.New("binding: no binding for operands")

	// ErrUnknownOp is returned by ParseOp for unrecognized names.
	ErrUnknownOp = errors.New("binding: unknown operation")

	// ErrBadInput reports a shape list Generate cannot walk (unregistered or duplicated shapes).
	ErrBadInput = errors.New("binding: invalid generator input")

	// ErrRuleResult reports a rule that produced a tensor shape outside the registry.
	ErrRuleResult = errors.New("binding: rule produced unregistered shape")
)
