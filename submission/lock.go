package submission

import (
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// teamLocks serializes writes per team. Different teams never wait on each
// other.
type teamLocks struct {
	mu sync.Mutex
	m  map[primitive.ObjectID]*teamLock
}

type teamLock struct {
	sync.Mutex
	refs int
}

func newTeamLocks() *teamLocks {
	return &teamLocks{m: make(map[primitive.ObjectID]*teamLock)}
}

func (l *teamLocks) lock(id primitive.ObjectID) func() {
	l.mu.Lock()
	tl, ok := l.m[id]
	if !ok {
		tl = &teamLock{}
		l.m[id] = tl
	}
	tl.refs++
	l.mu.Unlock()

	tl.Lock()

	return func() {
		tl.Unlock()

		l.mu.Lock()
		tl.refs--
		if tl.refs == 0 {
			delete(l.m, id)
		}
		l.mu.Unlock()
	}
}
