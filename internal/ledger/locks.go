package ledger

import "sync"

// accountLocks serializes balance mutations per account. The map only grows,
// one mutex per account ever touched, which is fine for the account counts
// this service sees.
type accountLocks struct {
	mu sync.Mutex
	m  map[int]*sync.Mutex
}

func newAccountLocks() *accountLocks {
	return &accountLocks{m: make(map[int]*sync.Mutex)}
}

func (al *accountLocks) lock(accountID int) (unlock func()) {
	al.mu.Lock()
	l, ok := al.m[accountID]
	if !ok {
		l = &sync.Mutex{}
		al.m[accountID] = l
	}
	al.mu.Unlock()

	l.Lock()
	return l.Unlock
}
