package interpreter

// ExitCodeFromError maps the result of Run to a process exit status: 0 when
// the run completed, 1 for every error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
