package chunk

import "fmt"

// FourCC is a four-character chunk tag ("RIFF", "FORM", "fmt ", ...). Tags
// shorter than four characters are space-padded by convention; the zero value
// is not a valid tag in any dialect.
type FourCC [4]byte

// MakeFourCC builds a tag from a string, truncating past four bytes and
// NUL-padding short input. Use space padding explicitly where a dialect
// requires it ("fmt ").
func MakeFourCC(s string) FourCC {
	var f FourCC
	copy(f[:], s)
	return f
}

// MarshalText implements encoding.TextMarshaler so tags render as text in
// JSON and YAML output.
func (f FourCC) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// String renders printable tags verbatim and anything else as hex, so a tag
// read from a corrupt header never garbles error output.
func (f FourCC) String() string {
	for _, b := range f {
		if b < 0x20 || b > 0x7e {
			return fmt.Sprintf("0x%02x%02x%02x%02x", f[0], f[1], f[2], f[3])
		}
	}
	return string(f[:])
}
