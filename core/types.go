// Package core defines the Graph and Edge types, the sentinel errors raised
// while validating them, and the ValidationError wrapper.
//
// Errors:
//
//	ErrEmptyVertexID   - vertex ID is the empty string.
//	ErrDuplicateVertex - vertex ID declared more than once.
//	ErrVertexNotFound  - referenced vertex does not exist.
//	ErrNegativeWeight  - edge weight is below zero.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph validation.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrDuplicateVertex indicates that the same vertex ID was declared twice.
	ErrDuplicateVertex = errors.New("core: duplicate vertex")

	// ErrVertexNotFound indicates an edge or query referenced an undeclared vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrNegativeWeight indicates that an edge carries a negative weight.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// ValidationError reports why a graph (or anything built on top of one)
// could not be constructed. Subject names the offending vertex or edge.
//
// errors.Is(err, ErrNegativeWeight) and friends see through it.
type ValidationError struct {
	// Subject describes the rejected element, e.g. `edge #3 A→B` or `vertex "X"`.
	Subject string

	// Err is the sentinel describing the failure.
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Subject == "" {
		return e.Err.Error()
	}

	return fmt.Sprintf("%v: %s", e.Err, e.Subject)
}

// Unwrap exposes the sentinel to errors.Is / errors.As.
func (e *ValidationError) Unwrap() error { return e.Err }

// Invalid builds a *ValidationError for subject wrapping err.
func Invalid(subject string, err error) error {
	return &ValidationError{Subject: subject, Err: err}
}

// Edge is a directed, weighted connection From → To.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the non-negative traversal cost.
	Weight int64
}

// String renders the edge as "A→B(4)".
func (e Edge) String() string {
	return fmt.Sprintf("%s→%s(%d)", e.From, e.To, e.Weight)
}

// BothWays returns the pair of directed edges modelling an undirected
// connection between a and b.
func BothWays(a, b string, weight int64) []Edge {
	return []Edge{
		{From: a, To: b, Weight: weight},
		{From: b, To: a, Weight: weight},
	}
}

// Graph is an immutable directed weighted graph.
//
// nodes keeps declaration order; index maps a vertex ID to its position in
// nodes; out[i] holds the outgoing edges of nodes[i] in construction order.
// A *Graph is safe for concurrent readers since nothing mutates it after
// NewGraph returns.
type Graph struct {
	nodes []string
	index map[string]int
	edges []Edge
	out   [][]Edge
}
