// Package testutil builds synthetic chunk streams for tests. Builders honor
// the family's even-byte alignment: odd payloads grow a pad byte that the
// declared size does not count.
package testutil

import "encoding/binary"

// LEChunk returns one little-endian chunk: tag, 32-bit size, payload, pad.
func LEChunk(tag string, payload []byte) []byte {
	return rawChunk(binary.LittleEndian, tag, payload)
}

// BEChunk returns one big-endian chunk: tag, 32-bit size, payload, pad.
func BEChunk(tag string, payload []byte) []byte {
	return rawChunk(binary.BigEndian, tag, payload)
}

// LEGroup returns a little-endian group chunk (RIFF, LIST) whose payload is
// a form type followed by the given members, which must already be padded.
func LEGroup(tag, formType string, members ...[]byte) []byte {
	return rawChunk(binary.LittleEndian, tag, groupPayload(formType, members))
}

// BEGroup returns a big-endian group chunk (FORM, LIST, CAT ) whose payload
// is a form type followed by the given members.
func BEGroup(tag, formType string, members ...[]byte) []byte {
	return rawChunk(binary.BigEndian, tag, groupPayload(formType, members))
}

func rawChunk(order binary.AppendByteOrder, tag string, payload []byte) []byte {
	out := make([]byte, 0, 8+len(payload)+1)
	var id [4]byte
	copy(id[:], tag)
	out = append(out, id[:]...)
	out = order.AppendUint32(out, uint32(len(payload)))
	out = append(out, payload...)
	if len(payload)%2 != 0 {
		out = append(out, 0)
	}
	return out
}

func groupPayload(formType string, members [][]byte) []byte {
	var ft [4]byte
	copy(ft[:], formType)
	payload := append([]byte(nil), ft[:]...)
	for _, m := range members {
		payload = append(payload, m...)
	}
	return payload
}

// WaveFile returns a minimal stereo 16-bit PCM WAV file holding samples as
// the data payload.
func WaveFile(samples []byte) []byte {
	fmtPayload := make([]byte, 16)
	binary.LittleEndian.PutUint16(fmtPayload[0:], 1)      // PCM
	binary.LittleEndian.PutUint16(fmtPayload[2:], 2)      // channels
	binary.LittleEndian.PutUint32(fmtPayload[4:], 44100)  // sample rate
	binary.LittleEndian.PutUint32(fmtPayload[8:], 176400) // byte rate
	binary.LittleEndian.PutUint16(fmtPayload[12:], 4)     // block align
	binary.LittleEndian.PutUint16(fmtPayload[14:], 16)    // bits per sample
	return LEGroup("RIFF", "WAVE",
		LEChunk("fmt ", fmtPayload),
		LEChunk("data", samples),
	)
}

// InfoList returns a RIFF LIST/INFO chunk from tag/value pairs, each value
// NUL-terminated per the INFO convention.
func InfoList(pairs ...string) []byte {
	members := make([][]byte, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		members = append(members, LEChunk(pairs[i], append([]byte(pairs[i+1]), 0)))
	}
	return LEGroup("LIST", "INFO", members...)
}

// AIFFFile returns a minimal AIFF file: a COMM chunk describing stereo
// 16-bit audio at 44.1 kHz and an SSND chunk holding samples.
func AIFFFile(samples []byte) []byte {
	comm := make([]byte, 18)
	binary.BigEndian.PutUint16(comm[0:], 2)                      // channels
	binary.BigEndian.PutUint32(comm[2:], uint32(len(samples)/4)) // sample frames
	binary.BigEndian.PutUint16(comm[6:], 16)                     // bits per sample
	// 44100 encoded as an 80-bit extended float
	copy(comm[8:], []byte{0x40, 0x0e, 0xac, 0x44, 0, 0, 0, 0, 0, 0})

	ssnd := make([]byte, 8+len(samples)) // offset and block size prefix
	copy(ssnd[8:], samples)

	return BEGroup("FORM", "AIFF",
		BEChunk("COMM", comm),
		BEChunk("SSND", ssnd),
	)
}
