//go:build !unix

package viewport

// Platforms without SIGWINCH get no resize notifications; the class is
// re-detected on demand through Current instead.
func watchResize(s *Signal, onChange func(Class)) {}
