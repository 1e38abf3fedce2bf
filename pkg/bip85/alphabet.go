package bip85

import "encoding/binary"

// base85Alphabet is the RFC 1924 character set.
const base85Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz!#$%&()*+-;<=>?@^_`{|}~"

// emoji is the EmojiPassword alphabet. It has 64 entries so every byte maps without bias.
// Reordering or replacing an entry changes every derived emoji password.
var emoji = [64]string{
	"⚡", "🚀", "🐶", "🐷", "🚗", "🍉", "🍺", "🔔", "🍕", "🍒", "☀", "💊", "🍟", "🏠", "👻", "☔",
	"🐴", "🍎", "🍌", "🍇", "🍓", "🍋", "🍔", "🍩", "🍪", "🎂", "🍫", "🍿", "☕", "🍷", "🎁", "🎈",
	"🎉", "🎵", "🎸", "🎲", "🏀", "⚽", "🏆", "🚲", "✈", "🚢", "⏰", "💡", "🔑", "🔒", "💎", "📷",
	"📚", "✏", "🌙", "⭐", "🌈", "🌵", "🌲", "🌸", "🍀", "🔥", "💧", "❄", "🐱", "🐭", "🐸", "🐵",
}

// encodeBase85 encodes data without padding, the same as Python's base64.b85encode.
func encodeBase85(data []byte) string {
	out := make([]byte, 0, (len(data)+3)/4*5)
	for i := 0; i < len(data); i += 4 {
		var chunk [4]byte
		n := copy(chunk[:], data[i:])
		v := binary.BigEndian.Uint32(chunk[:])
		var digits [5]byte
		for j := len(digits) - 1; j >= 0; j-- {
			digits[j] = base85Alphabet[v%85]
			v /= 85
		}
		out = append(out, digits[:n+1]...)
	}
	return string(out)
}
