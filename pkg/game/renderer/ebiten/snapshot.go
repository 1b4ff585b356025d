package ebiten

// captureSnapshot copies the current panel image and status from the source
func (e *EbitenRenderer) captureSnapshot() {
	if e.src == nil {
		return
	}

	snap := renderSnapshot{
		valid:  true,
		frame:  e.src.Frame(),
		status: e.src.Status(),
	}

	e.snapshotMutex.Lock()
	e.snapshot = snap
	e.snapshotMutex.Unlock()
}

// currentSnapshot returns the last captured snapshot
func (e *EbitenRenderer) currentSnapshot() renderSnapshot {
	e.snapshotMutex.RLock()
	defer e.snapshotMutex.RUnlock()
	return e.snapshot
}
