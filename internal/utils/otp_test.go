package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTP_AlwaysSixDigits(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := GenerateOTP()
		require.Len(t, code, OTPLength)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestGenerateOTP_NotConstant(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		seen[GenerateOTP()] = struct{}{}
	}

	// 100 draws from a 900000-value space collapsing to a single value
	// would mean the generator is broken.
	assert.Greater(t, len(seen), 1)
}
