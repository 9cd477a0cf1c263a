// Package lesspass derives site passwords from a master password the way LessPass does, so
// that the same inputs give the same password in every compatible implementation.
//
// A password is produced in three steps:
//
//	salt := lesspass.Salt("example.org", "contact@example.org", 1)
//	entropy, err := lesspass.Derive("password", salt, lesspass.SHA256, 100_000)
//	password, err := lesspass.Render(entropy, lesspass.All, 16) // "WHLpUL)e00[iHR+w"
//
// Entropy may be saved in its hexadecimal form (Entropy.String, ParseEntropy) and rendered
// later without the master password. Sum returns a fingerprint of a master password that can
// be shown or compared without revealing it.
//
// Everything here is pure and safe for concurrent use.
package lesspass
