package middleware

import (
	"sync"

	tele "gopkg.in/telebot.v4"
)

// userLock is a refcounted mutex so the lock map does not grow without
// bound as users come and go.
type userLock struct {
	mu   sync.Mutex
	refs int
}

// SerializePerUser runs updates from the same user one at a time.
// Dialogue state reads and writes inside a handler are therefore never
// interleaved with another update from that user.
func SerializePerUser() tele.MiddlewareFunc {
	var (
		locksMu sync.Mutex
		locks   = make(map[int64]*userLock)
	)
	acquire := func(userID int64) *userLock {
		locksMu.Lock()
		l, ok := locks[userID]
		if !ok {
			l = &userLock{}
			locks[userID] = l
		}
		l.refs++
		locksMu.Unlock()
		return l
	}
	release := func(userID int64, l *userLock) {
		locksMu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(locks, userID)
		}
		locksMu.Unlock()
	}
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			user := c.Sender()
			if user == nil {
				return next(c)
			}
			l := acquire(user.ID)
			l.mu.Lock()
			defer func() {
				l.mu.Unlock()
				release(user.ID, l)
			}()
			return next(c)
		}
	}
}
