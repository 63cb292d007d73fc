package ports

// Console is the user-facing output stream of the goal, distinct from
// diagnostic logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=console.go -destination=mocks/mock_console.go -package=mocks
type Console interface {
	WriteStdout(msg string)
	WriteStderr(msg string)
}
