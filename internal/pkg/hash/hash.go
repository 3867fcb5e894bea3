// Package hash provides the one-way password digests stored on accounts.
//
// A digest is deterministic: the same plaintext always yields the same
// string, so stored credentials are verified by recomputing and comparing.
// Switching the configured Hasher invalidates every stored digest.
package hash

import (
	"crypto/md5"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	MD5      = "md5"
	Argon2ID = "argon2id"
)

// Hasher 密码摘要
type Hasher interface {
	Digest(plaintext string) string
}

// New 按名称构造 Hasher, pepper 仅 argon2id 使用
func New(name, pepper string) (Hasher, error) {
	switch name {
	case "", MD5:
		return MD5Hasher{}, nil
	case Argon2ID:
		if pepper == "" {
			return nil, fmt.Errorf("argon2id hasher requires a pepper")
		}
		return NewArgon2ID(pepper), nil
	default:
		return nil, fmt.Errorf("unknown password hasher %q", name)
	}
}

// Equal 比较两个摘要, 常量时间
func Equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// MD5Hasher 输出小写 hex, 与历史数据兼容
type MD5Hasher struct{}

func (MD5Hasher) Digest(plaintext string) string {
	sum := md5.Sum([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// Argon2IDHasher 以固定 pepper 作为 salt 的 argon2id
type Argon2IDHasher struct {
	salt    []byte
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
}

func NewArgon2ID(pepper string) *Argon2IDHasher {
	return &Argon2IDHasher{
		salt:    []byte(pepper),
		time:    1,
		memory:  64 * 1024,
		threads: 4,
		keyLen:  32,
	}
}

func (h *Argon2IDHasher) Digest(plaintext string) string {
	key := argon2.IDKey([]byte(plaintext), h.salt, h.time, h.memory, h.threads, h.keyLen)
	return base64.RawStdEncoding.EncodeToString(key)
}
