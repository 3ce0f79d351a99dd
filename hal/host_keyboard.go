package hal

const keyEventSlots = 64

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, keyEventSlots)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

// emit queues an edge without blocking the tick; edges are dropped when the
// scene stops reading.
func (k *hostKeyboard) emit(code KeyCode, press bool) {
	select {
	case k.ch <- KeyEvent{Code: code, Press: press}:
	default:
	}
}
