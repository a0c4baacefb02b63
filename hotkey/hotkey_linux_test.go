//go:build linux

package hotkey

import (
	"encoding/binary"
	"testing"
)

func TestChordFires(t *testing.T) {
	var c chord
	steps := []struct {
		code  uint16
		value int32
		want  bool
	}{
		{keyLCtrl, keyPress, false},
		{keyEsc, keyPress, false}, // shift not held yet
		{keyEsc, keyRelease, false},
		{keyRShift, keyPress, false},
		{keyRShift, 2, false}, // autorepeat keeps shift held
		{keyEsc, keyPress, true},
		{keyEsc, keyRelease, false},
		{keyLCtrl, keyRelease, false},
		{keyEsc, keyPress, false},
	}
	for i, s := range steps {
		if got := c.feed(s.code, s.value); got != s.want {
			t.Errorf("step %d (code=%d value=%d) = %v, want %v", i, s.code, s.value, got, s.want)
		}
	}
}

func TestEachKeyEvent(t *testing.T) {
	event := func(typ, code uint16, value int32) []byte {
		b := make([]byte, inputEventSize)
		binary.LittleEndian.PutUint16(b[16:], typ)
		binary.LittleEndian.PutUint16(b[18:], code)
		binary.LittleEndian.PutUint32(b[20:], uint32(value))
		return b
	}
	var buf []byte
	buf = append(buf, event(evKey, keyLCtrl, keyPress)...)
	buf = append(buf, event(0, 0, 0)...) // EV_SYN
	buf = append(buf, event(evKey, keyEsc, keyPress)...)
	buf = append(buf, 0, 0, 0) // truncated trailer

	var codes []uint16
	eachKeyEvent(buf, func(code uint16, value int32) {
		if value != keyPress {
			t.Errorf("value = %d, want press", value)
		}
		codes = append(codes, code)
	})
	if len(codes) != 2 || codes[0] != keyLCtrl || codes[1] != keyEsc {
		t.Errorf("codes = %v", codes)
	}
}
