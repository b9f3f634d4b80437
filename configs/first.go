package configs

import (
	"errors"
	"iter"
)

// First returns the zero value when path is not set anywhere.
// Malformed config is a programming or deployment error and panics.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(err)
	}
	return value
}

// Lookup is First that tells unset apart from the zero value.
func Lookup[T any](loader Loader, path string) *T {
	value := new(T)
	if err := loader.AssignFirst(path, value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return nil
		}
		panic(err)
	}
	return value
}

func All[T any](loader Loader, path string) iter.Seq[T] {
	return func(yield func(T) bool) {
		for value, err := range loader.IterCueValues(path) {
			if err != nil {
				panic(err)
			}
			var v T
			if err := value.Decode(&v); err != nil {
				panic(err)
			}
			if !yield(v) {
				break
			}
		}
	}
}
