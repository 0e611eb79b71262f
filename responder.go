package retroui

// Responder is anything that can receive and optionally consume an input
// event. Returning true consumes the event and stops the chain; returning
// false offers it to the next responder.
//
// The chain itself has no knowledge of event semantics: a view's next
// responder is its parent view, the last view's is its owning panel, and
// the panel's is the application. Back-references along the chain are
// arena handles, never pointers, so a detached responder simply drops out
// of the chain instead of dangling.
type Responder interface {
	HandleEvent(ev Event) bool
}
