package service

// Client is a non-owning handle to one live connection. The transport layer
// owns the connection lifecycle; the coordinator only reacts to it.
type Client interface {
	// ID returns the unique connection identifier.
	ID() string
	// Connected reports whether the underlying connection is still open.
	Connected() bool
	// Send queues an outbound message for the client. It must never block;
	// delivery to a closed or slow client is silently dropped.
	Send(action string, payload any)
}
