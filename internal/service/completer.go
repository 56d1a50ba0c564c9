package service

import "context"

//go:generate mockgen -source=./completer.go -destination=./mocks/completer.mock.go -package=svcmocks -typed=true Completer

// Completer turns a prompt into model text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
