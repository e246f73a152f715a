// Package random 提供随机数字串生成工具
package random

import (
	"crypto/rand"
	"math/big"
)

// GetRandomInt 生成 n 位随机数字串
// 使用 crypto/rand，适合用于生成昵称后缀等不可预测的标识
func GetRandomInt(n int) string {
	digits := make([]byte, n)
	for i := range digits {
		num, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			digits[i] = '0'
			continue
		}
		digits[i] = byte('0' + num.Int64())
	}
	return string(digits)
}
