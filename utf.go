package javaio

/*
Modified UTF-8 string decoding, per the DataInput contract: a two-byte
length prefix followed by that many payload bytes, where the payload
uses 1-, 2-, and 3-byte sequences only. U+0000 may appear as the
overlong form 0xC0 0x80 (a literal 0x00 byte also decodes to it), and
supplementary-plane characters arrive pre-split as surrogate pairs of
two 3-byte sequences. Each sequence decodes to one 16-bit code unit;
surrogate pairing is validated only at the final UTF-16 conversion.
*/

import "unicode/utf16"

////////////////////////////////////////////////////////////////////////////////

// UTF reads a modified UTF-8 string, consuming 2 + length bytes from
// the source.
func (d *Decoder) UTF() (string, error) {
	length, err := d.readUint(2, "utf length")
	if err != nil {
		return "", err
	}
	payload := make([]byte, length)
	if err := d.fill(payload, "utf payload"); err != nil {
		return "", err
	}

	units := make([]uint16, 0, len(payload))
	for i := 0; i < len(payload); {
		b0 := payload[i]
		switch {
		case b0>>7 == 0b0:
			// 0xxxxxxx
			units = append(units, uint16(b0))
			i++
		case b0>>5 == 0b110:
			// 110xxxxx 10xxxxxx
			b1, err := contByte(payload, i+1)
			if err != nil {
				return "", err
			}
			units = append(units, uint16(b0&0b0001_1111)<<6|b1)
			i += 2
		case b0>>4 == 0b1110:
			// 1110xxxx 10xxxxxx 10xxxxxx
			b1, err := contByte(payload, i+1)
			if err != nil {
				return "", err
			}
			b2, err := contByte(payload, i+2)
			if err != nil {
				return "", err
			}
			units = append(units, uint16(b0&0b0000_1111)<<12|b1<<6|b2)
			i += 3
		default:
			// bare continuation byte or 4+-byte lead
			return "", InvalidDataError{"invalid utf lead byte"}
		}
	}
	return decodeUTF16(units)
}

// contByte returns the low six bits of the continuation byte at
// payload[i]. Running off the end of the payload means the length
// prefix promised fewer bytes than the sequence needs.
func contByte(payload []byte, i int) (uint16, error) {
	if i >= len(payload) {
		return 0, ShortReadError{"utf continuation byte"}
	}
	b := payload[i]
	if b>>6 != 0b10 {
		return 0, InvalidDataError{"invalid utf continuation byte"}
	}
	return uint16(b & 0b0011_1111), nil
}

// decodeUTF16 converts code units to a string, rejecting unpaired
// surrogates. utf16.Decode would silently substitute U+FFFD for them,
// which is indistinguishable from a genuine U+FFFD in the input, so
// pairing is checked first.
func decodeUTF16(units []uint16) (string, error) {
	for i := 0; i < len(units); i++ {
		switch u := units[i]; {
		case u >= 0xD800 && u < 0xDC00:
			if i+1 >= len(units) || units[i+1] < 0xDC00 || units[i+1] >= 0xE000 {
				return "", InvalidDataError{"unpaired high surrogate"}
			}
			i++
		case u >= 0xDC00 && u < 0xE000:
			return "", InvalidDataError{"unpaired low surrogate"}
		}
	}
	return string(utf16.Decode(units)), nil
}
