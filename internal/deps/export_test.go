package deps

// SetLookPath replaces the PATH lookup for the duration of a test.
func SetLookPath(fn func(string) (string, error)) func() {
	prev := lookPath
	lookPath = fn
	return func() { lookPath = prev }
}
