package subsonic

import (
	"crypto/md5"
	"crypto/rand"
	"encoding/hex"
)

// credentials holds the derived authentication pair sent on every request.
//
// Subsonic token authentication works as follows:
//  1. Generate a 3 byte random salt
//  2. Encode the salt as 6 hexadecimal digits
//  3. Append the encoded salt to the password
//  4. MD5 that string: md5({password}{salt})
//
// The salt only needs to differ between runs so that the hashed token
// cannot be replayed; it is not a secret.
type credentials struct {
	salt  string // 6 lowercase hex characters
	token string // 32 lowercase hex characters
}

// saltBytes is the number of random bytes drawn for the salt.
const saltBytes = 3

// newCredentials derives the per-run salt and token from a password.
func newCredentials(password string) credentials {
	var raw [saltBytes]byte
	// rand.Read on the default source never fails.
	_, _ = rand.Read(raw[:])

	salt := hex.EncodeToString(raw[:])
	sum := md5.Sum([]byte(password + salt))

	return credentials{
		salt:  salt,
		token: hex.EncodeToString(sum[:]),
	}
}
