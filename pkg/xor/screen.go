package xor

// xorScreen applies a repeating key, one byte at a time.
type xorScreen struct {
	key []byte
	cur int
}

func (s *xorScreen) screen(b byte) byte {
	b ^= s.key[s.cur]
	s.cur = (s.cur + 1) % len(s.key)
	return b
}
