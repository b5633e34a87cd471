package console

import (
	"bufio"
	"io"
	"unicode"
	"unicode/utf8"
)

type keyKind int

const (
	keyRune keyKind = iota
	keyEnter
	keyBackspace
	keyDelete
	keyLeft
	keyRight
	keyHome
	keyEnd
	keyPageUp
	keyPageDown
	keyCtrlA
	keyCtrlE
	keyCtrlW
	keyCtrlD
	keyCtrlC
	keyCtrlL
	keyTab
	keyAltB
	keyAltF
	keyUp
	keyDown
	keyCtrlU
	keyCtrlK
)

type key struct {
	kind keyKind
	r    rune
}

// readKeys decodes terminal input into keys until r fails or done is
// closed. A pending send is abandoned once done closes, so the goroutine
// never outlives its consumer by more than one blocking read.
func readKeys(r io.Reader, out chan<- key, done <-chan struct{}) {
	defer close(out)
	br := bufio.NewReader(r)
	lastWasCR := false
	for {
		b, err := br.ReadByte()
		if err != nil {
			return
		}
		if lastWasCR {
			lastWasCR = false
			if b == '\n' {
				continue
			}
		}
		var k key
		switch b {
		case 0x1b:
			var ok bool
			if k, ok = readEscape(br); !ok {
				continue
			}
		case '\r':
			k = key{kind: keyEnter}
			lastWasCR = true
		case '\n':
			k = key{kind: keyEnter}
		case 0x7f, 0x08:
			k = key{kind: keyBackspace}
		case 0x01:
			k = key{kind: keyCtrlA}
		case 0x05:
			k = key{kind: keyCtrlE}
		case 0x15:
			k = key{kind: keyCtrlU}
		case 0x0b:
			k = key{kind: keyCtrlK}
		case 0x0c:
			k = key{kind: keyCtrlL}
		case 0x17:
			k = key{kind: keyCtrlW}
		case 0x04:
			k = key{kind: keyCtrlD}
		case 0x03:
			k = key{kind: keyCtrlC}
		case 0x09:
			k = key{kind: keyTab}
		default:
			if b < 0x20 {
				continue
			}
			if b < utf8.RuneSelf {
				k = key{kind: keyRune, r: rune(b)}
				break
			}
			_ = br.UnreadByte()
			rn, _, err := br.ReadRune()
			if err != nil {
				return
			}
			k = key{kind: keyRune, r: rn}
		}
		select {
		case out <- k:
		case <-done:
			return
		}
	}
}

func readEscape(br *bufio.Reader) (key, bool) {
	b, err := br.ReadByte()
	if err != nil {
		return key{}, false
	}
	switch b {
	case '[':
		return readCSI(br)
	case 'O':
		return readSS3(br)
	case 'b', 'B':
		return key{kind: keyAltB}, true
	case 'f', 'F':
		return key{kind: keyAltF}, true
	}
	return key{}, false
}

var csiKeys = map[string]keyKind{
	"A":  keyUp,
	"B":  keyDown,
	"C":  keyRight,
	"D":  keyLeft,
	"H":  keyHome,
	"1~": keyHome,
	"7~": keyHome,
	"F":  keyEnd,
	"4~": keyEnd,
	"8~": keyEnd,
	"5~": keyPageUp,
	"6~": keyPageDown,
	"3~": keyDelete,
}

func readCSI(br *bufio.Reader) (key, bool) {
	seq := []byte{}
	for {
		b, err := br.ReadByte()
		if err != nil {
			return key{}, false
		}
		seq = append(seq, b)
		if b == '~' || unicode.IsLetter(rune(b)) {
			break
		}
		if len(seq) > 8 {
			return key{}, false
		}
	}
	kind, ok := csiKeys[string(seq)]
	return key{kind: kind}, ok
}

var ss3Keys = map[byte]keyKind{
	'A': keyUp,
	'B': keyDown,
	'C': keyRight,
	'D': keyLeft,
	'H': keyHome,
	'F': keyEnd,
}

func readSS3(br *bufio.Reader) (key, bool) {
	b, err := br.ReadByte()
	if err != nil {
		return key{}, false
	}
	kind, ok := ss3Keys[b]
	return key{kind: kind}, ok
}
