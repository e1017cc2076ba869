package service

// MatchQueue is the FIFO waiting list for automatic pairing. It is not safe
// for concurrent use on its own; the coordinator serializes every access.
type MatchQueue struct {
	waiting []Client
}

func NewMatchQueue() *MatchQueue {
	return &MatchQueue{}
}

// Enqueue - appends the client to the back of the queue. A client that is
// already waiting is not enqueued twice; Enqueue reports whether the client
// was added.
func (that *MatchQueue) Enqueue(client Client) bool {
	for _, waiting := range that.waiting {
		if waiting.ID() == client.ID() {
			return false
		}
	}

	that.waiting = append(that.waiting, client)

	return true
}

// TakePair - removes and returns the two earliest-enqueued clients.
func (that *MatchQueue) TakePair() (Client, Client, bool) {
	if len(that.waiting) < 2 {
		return nil, nil, false
	}

	first, second := that.waiting[0], that.waiting[1]
	that.waiting = that.waiting[2:]

	return first, second, true
}

// PushFront - re-inserts the client at the front of the queue so it is paired
// first on the next attempt.
func (that *MatchQueue) PushFront(client Client) {
	that.waiting = append([]Client{client}, that.waiting...)
}

// Remove - filters the client out of the queue. Removing an absent client is
// a no-op.
func (that *MatchQueue) Remove(clientID string) {
	for i, waiting := range that.waiting {
		if waiting.ID() == clientID {
			that.waiting = append(that.waiting[:i], that.waiting[i+1:]...)
			return
		}
	}
}

func (that *MatchQueue) Len() int {
	return len(that.waiting)
}
