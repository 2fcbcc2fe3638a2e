package prng

// Rand implements RFC 6330's Rand(y,i,m): mixes the four bytes of y with
// offset i through the four permutation tables, then reduces mod m.
func Rand(y uint32, i uint32, m uint32) uint32 {
	x0 := byte(y & 0xFF)
	x1 := byte((y >> 8) & 0xFF)
	x2 := byte((y >> 16) & 0xFF)
	x3 := byte((y >> 24) & 0xFF)

	v := V[0][(uint32(x0)+i)%256] ^
		V[1][(uint32(x1)+i)%256] ^
		V[2][(uint32(x2)+i)%256] ^
		V[3][(uint32(x3)+i)%256]

	return v % m
}
