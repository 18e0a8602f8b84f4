//go:build !unix && !windows

package region

// mapAnon allocates from the Go heap when anonymous mappings are unavailable.
func mapAnon(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func unmapAnon([]byte) error {
	return nil
}
