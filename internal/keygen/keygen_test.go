package keygen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const urlSafe = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

func noCollision(string) bool { return false }

func TestCandidateDeterminism(t *testing.T) {
	const canonical = "http://example.com/path?a=1"

	first := Candidate(canonical, 0, false)
	second := Candidate(canonical, 0, false)
	assert.Equal(t, first, second, "same inputs must yield the same key")

	assert.NotEqual(t, first, Candidate(canonical, 1, false),
		"a bumped attempt must change the key")
	assert.NotEqual(t, first, Candidate("http://example.com/other", 0, false),
		"a different URL must change the key")
}

func TestCandidateShape(t *testing.T) {
	short := Candidate("http://example.com", 0, false)
	long := Candidate("http://example.com", 0, true)

	assert.Len(t, short, ShortLen)
	assert.Len(t, long, LongLen)
	assert.Equal(t, short, long[:ShortLen], "long key extends the short digest")

	for _, key := range []string{short, long} {
		for _, c := range key {
			assert.Contains(t, urlSafe, string(c), "key %q has a char outside the alphabet", key)
		}
	}
}

func TestGenerateFirstAttemptWins(t *testing.T) {
	const canonical = "http://example.com"

	key, err := Generate(canonical, noCollision)
	require.NoError(t, err)
	assert.Equal(t, Candidate(canonical, 0, false), key)
}

func TestGenerateRetriesWithinStage(t *testing.T) {
	const canonical = "http://example.com"
	taken := map[string]bool{
		Candidate(canonical, 0, false): true,
		Candidate(canonical, 1, false): true,
	}

	key, err := Generate(canonical, func(k string) bool { return taken[k] })
	require.NoError(t, err)
	assert.Equal(t, Candidate(canonical, 2, false), key)
}

func TestGenerateEscalatesToLongKeys(t *testing.T) {
	const canonical = "http://example.com"

	taken := make(map[string]bool)
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		taken[Candidate(canonical, attempt, false)] = true
	}

	key, err := Generate(canonical, func(k string) bool { return taken[k] })
	require.NoError(t, err)
	assert.Len(t, key, LongLen)
	assert.Equal(t, Candidate(canonical, 0, true), key)
}

func TestGenerateFallsBackToRandom(t *testing.T) {
	const canonical = "http://example.com"

	taken := make(map[string]bool)
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		taken[Candidate(canonical, attempt, false)] = true
		taken[Candidate(canonical, attempt, true)] = true
	}

	key, err := Generate(canonical, func(k string) bool { return taken[k] })
	require.NoError(t, err)
	assert.Len(t, key, LongLen)
	assert.False(t, taken[key], "random key must not be one of the taken digests")
	assert.False(t, strings.HasPrefix(key, Candidate(canonical, 0, false)),
		"random fallback must leave the digest path")
}

func TestGenerateSurvivesCollisionStorm(t *testing.T) {
	// Everything collides: generation must still terminate with a key
	// of the requested length instead of looping.
	key, err := Generate("http://example.com", func(string) bool { return true })
	require.NoError(t, err)
	assert.Len(t, key, LongLen)
	for _, c := range key {
		assert.Contains(t, urlSafe, string(c))
	}
}

func TestGenerateProbeBudget(t *testing.T) {
	probes := 0
	_, err := Generate("http://example.com", func(string) bool {
		probes++
		return true
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, probes, MaxProbes+MaxAttempts,
		"digest probes are capped at %d and random draws at %d", MaxProbes, MaxAttempts)
}
