// Package keygen assigns short, URL-safe keys to canonical URLs.
//
// Key generation is deterministic wherever possible: the same canonical
// URL always yields the same first candidate, so two independent writers
// converge on one key unless it is already taken. Collisions escalate
// through three stages: short digest keys, long digest keys, and finally
// random keys.
package keygen

import (
	"crypto/md5"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"
	"strconv"
	"time"
)

const (
	// ShortLen is the length of a first-stage key.
	ShortLen = 6
	// LongLen is the length of second- and third-stage keys.
	LongLen = 8

	// MaxAttempts bounds the probes within a single stage.
	MaxAttempts = 5
	// MaxProbes bounds digest probes across both deterministic stages.
	// Past it generation falls through to the random stage.
	MaxProbes = 10

	alphabet     = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
	digestPrefix = 10 // bytes of the digest fed into base64
	randomPrefix = 2  // random chars ahead of the timestamp suffix
)

// CollisionFunc reports whether a candidate key is already taken.
type CollisionFunc func(key string) bool

// Candidate returns the deterministic key for a (canonical, attempt)
// pair. Attempt zero digests the canonical URL alone, which is what
// makes independent submissions of the same URL agree on a key.
func Candidate(canonical string, attempt int, long bool) string {
	input := canonical
	if attempt > 0 {
		input = fmt.Sprintf("%s:%d", canonical, attempt)
	}

	sum := md5.Sum([]byte(input))
	encoded := base64.RawURLEncoding.EncodeToString(sum[:digestPrefix])

	n := ShortLen
	if long {
		n = LongLen
	}
	return encoded[:n]
}

// Generate picks a free key for canonical, consulting isCollision for
// every candidate. It probes MaxAttempts short digest keys, then
// MaxAttempts long ones, then falls back to random keys. The random
// stage cannot loop: after MaxAttempts draws it settles on a
// timestamp-based key and accepts the residual collision risk.
func Generate(canonical string, isCollision CollisionFunc) (string, error) {
	probes := 0

	if key, ok := pickDigest(canonical, isCollision, false, &probes); ok {
		return key, nil
	}
	if key, ok := pickDigest(canonical, isCollision, true, &probes); ok {
		return key, nil
	}

	return pickRandom(isCollision)
}

func pickDigest(canonical string, isCollision CollisionFunc, long bool, probes *int) (string, bool) {
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		if *probes >= MaxProbes {
			return "", false
		}
		*probes++

		key := Candidate(canonical, attempt, long)
		if !isCollision(key) {
			return key, true
		}
	}
	return "", false
}

func pickRandom(isCollision CollisionFunc) (string, error) {
	for i := 0; i < MaxAttempts; i++ {
		key, err := randomKey(LongLen)
		if err != nil {
			return "", err
		}
		if !isCollision(key) {
			return key, nil
		}
	}

	// Collision storm: stop probing and take a timestamped key.
	prefix, err := randomKey(randomPrefix)
	if err != nil {
		return "", err
	}
	key := prefix + strconv.FormatInt(time.Now().Unix(), 36)
	if len(key) > LongLen {
		key = key[:LongLen]
	}
	return key, nil
}

func randomKey(n int) (string, error) {
	max := big.NewInt(int64(len(alphabet)))

	key := make([]byte, n)
	for i := range key {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to draw a random index: %w", err)
		}
		key[i] = alphabet[idx.Int64()]
	}
	return string(key), nil
}
