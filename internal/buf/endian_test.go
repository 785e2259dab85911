package buf

import "testing"

func TestEndianHelpers(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}

	if got := U16LE(data); got != 0x2301 {
		t.Fatalf("U16LE = 0x%x, want 0x2301", got)
	}
	if got := U32LE(data); got != 0x67452301 {
		t.Fatalf("U32LE = 0x%x, want 0x67452301", got)
	}
	if got := U16BE(data); got != 0x0123 {
		t.Fatalf("U16BE = 0x%x, want 0x0123", got)
	}
	if got := U32BE(data); got != 0x01234567 {
		t.Fatalf("U32BE = 0x%x, want 0x01234567", got)
	}

	short := []byte{0xAA}
	if U16LE(short) != 0 || U16BE(short) != 0 {
		t.Fatalf("short 16-bit reads should return 0")
	}
	if U32LE(short) != 0 || U32BE(short) != 0 {
		t.Fatalf("short 32-bit reads should return 0")
	}
}
