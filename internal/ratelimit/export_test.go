package ratelimit

// LocalKeys returns the number of local buckets held by a limiter created with NewLimiter
func LocalKeys(l Limiter) int {
	lim := l.(*limiter)
	lim.mu.Lock()
	defer lim.mu.Unlock()
	return len(lim.local)
}
