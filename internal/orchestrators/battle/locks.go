package battle

import "sync"

// battleLocks hands out one mutex per battle ID. Entries are dropped once
// nobody holds or waits on them.
type battleLocks struct {
	mu    sync.Mutex
	locks map[string]*battleLock
}

type battleLock struct {
	mu   sync.Mutex
	refs int
}

func newBattleLocks() *battleLocks {
	return &battleLocks{locks: make(map[string]*battleLock)}
}

// lock blocks until the battle is free and returns the unlock func
func (l *battleLocks) lock(battleID string) func() {
	l.mu.Lock()
	bl, ok := l.locks[battleID]
	if !ok {
		bl = &battleLock{}
		l.locks[battleID] = bl
	}
	bl.refs++
	l.mu.Unlock()

	bl.mu.Lock()

	return func() {
		bl.mu.Unlock()

		l.mu.Lock()
		bl.refs--
		if bl.refs == 0 {
			delete(l.locks, battleID)
		}
		l.mu.Unlock()
	}
}

// size is the number of battles currently locked or waited on
func (l *battleLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
