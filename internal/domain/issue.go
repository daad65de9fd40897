package domain

// Issue is a single tracker issue as returned by issue discovery. Only the
// fields the report pipeline needs are carried.
type Issue struct {
	Key    string
	Title  string
	Parent *ParentRef
}

// ParentRef is one link in an issue's ancestry chain. The upstream API nests
// these arbitrarily deep; a nil Parent marks the top of the chain. A ref with
// an empty Title is still a valid terminal node (incomplete upstream data).
type ParentRef struct {
	Key    string
	Title  string
	Parent *ParentRef
}
