// Package fetch holds the outcome of loading a list from the remote API.
// An empty list and a failed load are distinct states.
package fetch

import "context"

type State int

const (
	Loading State = iota
	Loaded
	Failed
)

func (s State) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return "loading"
	}
}

type Result[T any] struct {
	State State
	Items []T
	Err   error
}

func Pending[T any]() Result[T] {
	return Result[T]{State: Loading}
}

func Done[T any](items []T) Result[T] {
	return Result[T]{State: Loaded, Items: items}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{State: Failed, Err: err}
}

// Run calls `load` and settles the result. A context already done yields Failed without calling `load`.
func Run[T any](ctx context.Context, load func(ctx context.Context) ([]T, error)) Result[T] {
	if err := ctx.Err(); err != nil {
		return Fail[T](err)
	}
	items, err := load(ctx)
	if err != nil {
		return Fail[T](err)
	}
	return Done(items)
}

func (r Result[T]) IsLoading() bool { return r.State == Loading }

func (r Result[T]) IsLoaded() bool { return r.State == Loaded }

func (r Result[T]) IsFailed() bool { return r.State == Failed }

// IsEmpty is true only for a successful load of zero items.
func (r Result[T]) IsEmpty() bool { return r.State == Loaded && len(r.Items) == 0 }
