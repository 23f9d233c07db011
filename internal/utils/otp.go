package utils

import (
	"math/rand"
	"strconv"
)

// OTPLength is the number of digits in a generated one-time code.
const OTPLength = 6

// GenerateOTP produces a uniformly-random 6-digit decimal code in the range
// [100000, 999999]. The first digit is never zero, so the string form is
// always exactly 6 characters.
//
// The code is not cryptographically hardened: it protects a low-value,
// single-use action and is only valid inside a short server-enforced expiry
// window.
func GenerateOTP() string {
	return strconv.Itoa(100000 + rand.Intn(900000))
}
