package render

// lit reports whether cell i of an RGBA buffer is drawn in any colour other
// than black.
func lit(buf []byte, i int) bool {
	base := i * 4
	if base+2 >= len(buf) {
		return false
	}
	return buf[base] != 0 || buf[base+1] != 0 || buf[base+2] != 0
}
