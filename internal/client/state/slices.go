package state

func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func indexOf[T any](list []T, id string, key func(T) string) int {
	for i := range list {
		if key(list[i]) == id {
			return i
		}
	}
	return -1
}

// without copia sin el elemento i.
func without[T any](in []T, i int) []T {
	out := make([]T, 0, len(in)-1)
	out = append(out, in[:i]...)
	return append(out, in[i+1:]...)
}
