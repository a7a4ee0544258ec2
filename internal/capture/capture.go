// Package capture models voice capture: a recognizer is asked for text,
// and the answer comes back later tagged with the token of the request
// that asked for it.
package capture

import (
	"context"
	"errors"
	"strings"
	"unicode"
)

// ErrEmptyCapture means the recognizer produced nothing usable.
var ErrEmptyCapture = errors.New("voice recognition result is empty")

// Purpose says what a captured text will be used for.
type Purpose int

const (
	PurposeCreate Purpose = iota
	PurposeEdit
)

func (p Purpose) String() string {
	if p == PurposeEdit {
		return "edit"
	}
	return "create"
}

// Recognizer turns speech (or anything standing in for it) into text.
type Recognizer interface {
	Recognize(ctx context.Context) (string, error)
}

// RecognizerFunc adapts a function to Recognizer.
type RecognizerFunc func(ctx context.Context) (string, error)

func (f RecognizerFunc) Recognize(ctx context.Context) (string, error) { return f(ctx) }

// Static returns a recognizer that always hears text.
func Static(text string) Recognizer {
	return RecognizerFunc(func(context.Context) (string, error) { return text, nil })
}

// Normalize trims a recognition result and rejects empty or control-only
// text with ErrEmptyCapture.
func Normalize(text string) (string, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return ' '
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, text)
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return "", ErrEmptyCapture
	}
	return cleaned, nil
}
