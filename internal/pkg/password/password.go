package password

import "golang.org/x/crypto/bcrypt"

// hashCost pins the bcrypt work factor instead of tracking the library
// default, so stored hashes keep a known cost across upgrades.
const hashCost = 10

func Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare runs the full bcrypt verification regardless of where the
// mismatch occurs, so timing does not leak the mismatch position.
func Compare(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
