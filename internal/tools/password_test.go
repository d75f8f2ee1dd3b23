package tools

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apperrors "github.com/wfunc/exercise-hub/internal/errors"
)

func TestGeneratePassword_Length(t *testing.T) {
	for _, length := range []int{4, 12, 64} {
		password, err := GeneratePassword(&PasswordRequest{Length: length})
		require.NoError(t, err)
		assert.Len(t, password, length)
	}
}

func TestGeneratePassword_LowercaseOnly(t *testing.T) {
	password, err := GeneratePassword(&PasswordRequest{Length: 64})
	require.NoError(t, err)

	for _, c := range password {
		assert.Contains(t, lowercaseChars, string(c))
	}
}

func TestGeneratePassword_RespectsCharacterPool(t *testing.T) {
	req := DefaultPasswordRequest()
	req.Length = 64

	password, err := GeneratePassword(req)
	require.NoError(t, err)

	pool := lowercaseChars + uppercaseChars + digitChars + symbolChars
	for _, c := range password {
		assert.Contains(t, pool, string(c))
	}
}

func TestGeneratePassword_RejectsOutOfRangeLength(t *testing.T) {
	for _, length := range []int{0, 3, 65} {
		_, err := GeneratePassword(&PasswordRequest{Length: length})
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.ErrFieldRange))
	}
}

func TestGeneratePassword_NotConstant(t *testing.T) {
	// 32位密码两次生成相同的概率可以忽略
	a, err := GeneratePassword(&PasswordRequest{Length: 32})
	require.NoError(t, err)
	b, err := GeneratePassword(&PasswordRequest{Length: 32})
	require.NoError(t, err)

	assert.False(t, strings.EqualFold(a, b))
}
