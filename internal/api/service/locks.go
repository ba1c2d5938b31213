package service

import "sync"

const lockStripes = 64

// stripedLocks serializes turns per game without holding a mutex per game
// row. Two games may share a stripe; that only costs a little contention.
type stripedLocks struct {
	stripes [lockStripes]sync.Mutex
}

func (s *stripedLocks) forGame(id string) *sync.Mutex {
	var h uint32
	for _, c := range id {
		h = h*31 + uint32(c)
	}
	return &s.stripes[h%lockStripes]
}
