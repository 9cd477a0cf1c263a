package lesspass

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// MaxCounter is the largest counter accepted by Profile; Salt itself encodes any byte.
const MaxCounter = 99

const hexDigits = "0123456789ABCDEF"

// Salt binds a derivation to a website, a login and a counter.
//
// Counters below 16 are appended as one uppercase hexadecimal digit. Larger counters are
// appended as two digits with the low nibble FIRST (26 encodes as "A1", not "1A"); existing
// passwords for those counters depend on this order, so it must not be "fixed".
func Salt(site, login string, counter uint8) []byte {
	n := 1
	if counter >= 16 {
		n = 2
	}
	salt := make([]byte, 0, len(site)+len(login)+n)
	salt = append(salt, site...)
	salt = append(salt, login...)

	if counter < 16 {
		salt = append(salt, hexDigits[counter])
	} else {
		salt = append(salt, hexDigits[counter&0x0f], hexDigits[counter>>4&0x0f])
	}
	return salt
}
