package patternmatcher

// ResultKind tags the four states a Resume call may leave a frame in.
type ResultKind byte

const (
	// resultNone is the value fed to a freshly pushed frame's first Resume
	// call. No Resume implementation ever produces it as an output.
	resultNone ResultKind = iota
	resultSuccess
	resultFailure
	resultInProgress
)

// result is the tri-state value threaded through the driver loop: a Resume
// call reports that it succeeded, failed, or wants a sub-fragment matched
// first (InProgress, carrying the frame to push).
type result struct {
	kind    ResultKind
	success Success
	context MatchContext
}

func successResult(s Success) result {
	return result{kind: resultSuccess, success: s}
}

func failureResult() result {
	return result{kind: resultFailure}
}

func inProgressResult(ctx MatchContext) result {
	return result{kind: resultInProgress, context: ctx}
}
