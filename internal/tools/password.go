package tools

import (
	"crypto/rand"
	"math/big"

	apperrors "github.com/wfunc/exercise-hub/internal/errors"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	symbolChars    = "!@#$%^&*()_-+=[]{}"
)

// PasswordRequest 密码生成入参
type PasswordRequest struct {
	Length           int  `json:"length" form:"length"`
	IncludeUppercase bool `json:"include_uppercase" form:"include_uppercase"`
	IncludeNumbers   bool `json:"include_numbers" form:"include_numbers"`
	IncludeSymbols   bool `json:"include_symbols" form:"include_symbols"`
}

// DefaultPasswordRequest 默认参数：12位，所有字符类开启
func DefaultPasswordRequest() *PasswordRequest {
	return &PasswordRequest{
		Length:           12,
		IncludeUppercase: true,
		IncludeNumbers:   true,
		IncludeSymbols:   true,
	}
}

// GeneratePassword 按字符池逐位均匀抽取生成密码，小写字母始终在池内
func GeneratePassword(req *PasswordRequest) (string, error) {
	if req.Length < 4 || req.Length > 64 {
		return "", apperrors.New(apperrors.ErrFieldRange).WithDetails("密码长度必须在4到64之间")
	}

	chars := lowercaseChars
	if req.IncludeUppercase {
		chars += uppercaseChars
	}
	if req.IncludeNumbers {
		chars += digitChars
	}
	if req.IncludeSymbols {
		chars += symbolChars
	}

	pool := []byte(chars)
	max := big.NewInt(int64(len(pool)))
	password := make([]byte, req.Length)
	for i := range password {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", apperrors.Wrap(err, apperrors.ErrUnknown, "生成随机数失败")
		}
		password[i] = pool[n.Int64()]
	}

	return string(password), nil
}
