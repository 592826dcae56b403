package services

import (
	"sync/atomic"

	"canteen/internal/core/domain/model/kernel"
)

// TokenSequence hands out strictly increasing tokens.
// Next is an atomic increment-and-fetch, so one sequence may be shared by
// several ledgers or goroutines without producing duplicates.
//
// Example:
//
//	seq := services.NewTokenSequence(100)
//	seq.Next() // 100
//	seq.Next() // 101
type TokenSequence struct {
	last atomic.Int64
}

// NewTokenSequence creates a sequence whose first token is start.
// The start is clamped to [kernel.MinToken, kernel.MaxTokenStart].
func NewTokenSequence(start kernel.Token) *TokenSequence {
	start = min(max(start, kernel.MinToken), kernel.MaxTokenStart)

	s := &TokenSequence{}
	s.last.Store(int64(start) - 1)
	return s
}

// Next returns the next token.
func (s *TokenSequence) Next() kernel.Token {
	return kernel.Token(s.last.Add(1))
}

// Peek returns the token the next call to Next will return.
func (s *TokenSequence) Peek() kernel.Token {
	return kernel.Token(s.last.Load() + 1)
}
