package editor

import "reflect"

// EditRequest hands a value to a sub-editor. The sub-editor runs in its
// own future passes and calls Complete with the edited value when it is
// done. Never calling Complete abandons the edit; that is not an error.
type EditRequest struct {
	// Editor is the token of the sub-editor that should take the value.
	Editor string
	Member string
	Type   reflect.Type
	Value  any
	// Complete writes the edited value back into the original member.
	Complete func(any) error
}

// Router receives sub-editor hand-offs.
type Router interface {
	Delegate(req EditRequest)
}

// RouterFunc adapts a function to a Router.
type RouterFunc func(EditRequest)

func (f RouterFunc) Delegate(req EditRequest) { f(req) }

// Queue is a FIFO Router drained by the host between passes.
type Queue struct {
	pending []EditRequest
}

// Delegate enqueues req.
func (q *Queue) Delegate(req EditRequest) {
	q.pending = append(q.pending, req)
}

// Next pops the oldest request.
func (q *Queue) Next() (EditRequest, bool) {
	if len(q.pending) == 0 {
		return EditRequest{}, false
	}
	req := q.pending[0]
	q.pending = q.pending[1:]
	return req, true
}

// Len is the number of queued requests.
func (q *Queue) Len() int { return len(q.pending) }
