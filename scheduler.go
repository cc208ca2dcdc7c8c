package main

// frameScheduler hands the sampler one callback per app.FrameEvent.
// Post, Remove and dispatch all run on the window loop goroutine, so a
// callback removed by Stop can never fire afterwards.
type frameScheduler struct {
	pending    func(int64)
	inFrame    bool
	invalidate func()
}

func (fs *frameScheduler) Post(cb func(int64)) {
	fs.pending = cb
	if !fs.inFrame && fs.invalidate != nil {
		fs.invalidate()
	}
}

func (fs *frameScheduler) Remove() {
	fs.pending = nil
}

// dispatch fires the pending callback with the frame timestamp and reports
// whether another frame was requested.
func (fs *frameScheduler) dispatch(timestampNanos int64) (rearmed bool) {
	cb := fs.pending
	if cb == nil {
		return false
	}
	fs.pending = nil
	fs.inFrame = true
	cb(timestampNanos)
	fs.inFrame = false
	return fs.pending != nil
}
