package words

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"math/big"
	"time"
)

// Daily returns the word of the day for now.
// The pick is HMAC-SHA256(salt, "hangman/<UTC date>") reduced modulo the list
// length, so every player with the same list and salt gets the same word
// until midnight UTC.
func (l *List) Daily(now time.Time, salt string) string {
	return l.words[dayIndex(now, salt, len(l.words))]
}

func dayIndex(now time.Time, salt string, n int) int {
	mac := hmac.New(sha256.New, []byte(salt))
	fmt.Fprintf(mac, "hangman/%s", now.UTC().Format(time.DateOnly))
	v := new(big.Int).SetBytes(mac.Sum(nil))
	return int(v.Mod(v, big.NewInt(int64(n))).Int64())
}
