package noise

// grad1 picks +1 or -1 from the low bit of the hash and dots it with xf.
func grad1[T Float](hash uint8, xf T) T {
	if hash&0x1 != 0 {
		return xf
	}
	return -xf
}

// grad2 dots one of eight directions toward the edges and corners of the
// unit square with (xf, yf).
func grad2[T Float](hash uint8, xf, yf T) T {
	switch hash & 0x7 {
	case 0x0:
		return xf + yf
	case 0x1:
		return xf
	case 0x2:
		return xf - yf
	case 0x3:
		return -yf
	case 0x4:
		return -xf - yf
	case 0x5:
		return -xf
	case 0x6:
		return -xf + yf
	default:
		return yf
	}
}

// grad3 dots one of the twelve cube-edge directions with (xf, yf, zf).
// The last four cases repeat directions so that sixteen hash values spread
// evenly; 0xD and 0xF deliberately repeat 0x9 and 0xB.
func grad3[T Float](hash uint8, xf, yf, zf T) T {
	switch hash & 0xF {
	case 0x0:
		return xf + yf
	case 0x1:
		return -xf + yf
	case 0x2:
		return xf - yf
	case 0x3:
		return -xf - yf
	case 0x4:
		return xf + zf
	case 0x5:
		return -xf + zf
	case 0x6:
		return xf - zf
	case 0x7:
		return -xf - zf
	case 0x8:
		return yf + zf
	case 0x9:
		return -yf + zf
	case 0xA:
		return yf - zf
	case 0xB:
		return -yf - zf
	case 0xC:
		return yf + xf
	case 0xD:
		return -yf + zf
	case 0xE:
		return yf - xf
	default:
		return -yf - zf
	}
}
