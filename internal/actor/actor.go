// Package actor carries the identity on whose behalf a request runs.
//
// There is no authentication yet: the API installs a configured default actor. Swapping in
// a real identity only changes where WithID is called, not the services reading it.
package actor

import (
	"context"
	"errors"
)

var ErrNoActor = errors.New("no actor in context")

type ctxKey struct{}

// WithID returns a copy of ctx acting as the user with the given id.
func WithID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

// ID returns the acting user id stored in ctx.
func ID(ctx context.Context) (int64, error) {
	id, ok := ctx.Value(ctxKey{}).(int64)
	if !ok {
		return 0, ErrNoActor
	}
	return id, nil
}
