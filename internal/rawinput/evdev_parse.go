package rawinput

import "encoding/binary"

// Linux input event types and codes.
const (
	evSyn = 0x00
	evKey = 0x01
	evRel = 0x02

	synReport = 0x00
	relX      = 0x00
	relY      = 0x01
)

// evdecoder turns a byte stream of struct input_event records from one
// device into Events. Relative motion is accumulated until SYN_REPORT.
type evdecoder struct {
	size   int
	device int
	kind   DeviceType

	buf    []byte
	dx, dy int32
}

func newEvdecoder(size, device int, kind DeviceType) *evdecoder {
	return &evdecoder{size: size, device: device, kind: kind}
}

// feed consumes chunk and appends completed events to out.
func (d *evdecoder) feed(chunk []byte, out []Event) []Event {
	d.buf = append(d.buf, chunk...)
	n := 0
	for ; len(d.buf)-n >= d.size; n += d.size {
		rec := d.buf[n : n+d.size]
		// type, code and value follow the timeval.
		tail := rec[d.size-8:]
		typ := binary.LittleEndian.Uint16(tail[0:2])
		code := binary.LittleEndian.Uint16(tail[2:4])
		value := int32(binary.LittleEndian.Uint32(tail[4:8]))
		out = d.record(typ, code, value, out)
	}
	d.buf = append(d.buf[:0], d.buf[n:]...)
	return out
}

func (d *evdecoder) record(typ, code uint16, value int32, out []Event) []Event {
	switch typ {
	case evRel:
		switch code {
		case relX:
			d.dx += value
		case relY:
			d.dy += value
		}
	case evSyn:
		if code == synReport && (d.dx != 0 || d.dy != 0) {
			out = append(out, Event{Kind: EventMouseMove, Device: d.device, DX: d.dx, DY: d.dy})
			d.dx, d.dy = 0, 0
		}
	case evKey:
		kind := EventOther
		if d.kind == Keyboards {
			kind = EventKey
		}
		out = append(out, Event{Kind: kind, Device: d.device})
	default:
		out = append(out, Event{Kind: EventOther, Device: d.device})
	}
	return out
}
