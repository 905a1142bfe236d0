package fractal

// InjectEvent queues ev on the window. It is returned by a later PollEvent in
// FIFO order.
func (w *HeadlessWindow) InjectEvent(ev Event) {
	w.queue = append(w.queue, ev)
}

// InjectClick queues a left-button press at the given screen coordinates.
func (w *HeadlessWindow) InjectClick(x, y int) {
	w.InjectEvent(PointerDownEvent(x, y))
}

// InjectQuit queues a quit request.
func (w *HeadlessWindow) InjectQuit() {
	w.InjectEvent(QuitEvent())
}

// Pending returns the number of queued events.
func (w *HeadlessWindow) Pending() int {
	return len(w.queue)
}

// PollEvent pops the oldest queued event.
func (w *HeadlessWindow) PollEvent() (Event, bool) {
	if len(w.queue) == 0 {
		return Event{}, false
	}
	ev := w.queue[0]
	copy(w.queue, w.queue[1:])
	w.queue = w.queue[:len(w.queue)-1]
	return ev, true
}
