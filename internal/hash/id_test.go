package hash

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		id   uint64
	}{
		{"nil", nil, 0xef46db3751d8e999},
		{"empty", []byte{}, 0xef46db3751d8e999},
		{"short bytes", []byte("test"), 0x4fdcca5ddb678139},
		{"longer bytes", []byte("this is a longer test string to hash"), 0x69275f7f7ee59dbd},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, Sum(tt.data))
		})
	}
}

func TestSumDistinguishesContent(t *testing.T) {
	a := Sum([]byte("adc_0,adc_1\n100,200\n"))
	b := Sum([]byte("adc_0,adc_1\n100,201\n"))
	assert.NotEqual(t, a, b)
}

func randBytes(n int) []byte {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range b {
		b[i] = letters[seededRand.Intn(len(letters))]
	}

	return b
}

func BenchmarkSum(b *testing.B) {
	data := randBytes(4096)
	b.ResetTimer()
	for b.Loop() {
		Sum(data)
	}
}
