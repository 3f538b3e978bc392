// File: chain.go
// Title: Validator Chain
// Description: Runs validators in sequence against one value.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15

package validation

// Chain runs validators in order and combines their results
type Chain struct {
	validators       []Validator
	stopOnFirstError bool
}

// NewChain creates a chain of validators
func NewChain(validators ...Validator) *Chain {
	return &Chain{validators: validators}
}

// Add appends a validator
func (c *Chain) Add(v Validator) *Chain {
	c.validators = append(c.validators, v)
	return c
}

// StopOnFirstError makes the chain return after the first failure
func (c *Chain) StopOnFirstError(stop bool) *Chain {
	c.stopOnFirstError = stop
	return c
}

// Validate implements Validator
func (c *Chain) Validate(value interface{}) Result {
	results := make([]Result, 0, len(c.validators))
	for _, v := range c.validators {
		r := v.Validate(value)
		results = append(results, r)
		if c.stopOnFirstError && !r.Valid {
			break
		}
	}
	return Combine(results...)
}

// Len returns the number of validators
func (c *Chain) Len() int {
	return len(c.validators)
}
