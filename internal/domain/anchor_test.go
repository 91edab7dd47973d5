package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnchor_DynamicResolvesOnce(t *testing.T) {
	a := DynamicAnchor()
	assert.False(t, a.Set)

	a = a.Resolve(1000)
	assert.True(t, a.Set)
	assert.Equal(t, int64(1000), a.Millis)

	a = a.Resolve(2000)
	assert.Equal(t, int64(1000), a.Millis, "anchor must not move once set")
}

func TestAnchor_FixedIgnoresResolve(t *testing.T) {
	a := FixedAnchor(1762194514910)

	a = a.Resolve(5)

	assert.True(t, a.Fixed)
	assert.Equal(t, int64(1762194514910), a.Millis)
}

func TestResolvedLastCommit(t *testing.T) {
	assert.Equal(t, LastCommit{State: LastCommitNone}, ResolvedLastCommit(42, false))
	assert.Equal(t, LastCommit{Millis: 42, State: LastCommitKnown}, ResolvedLastCommit(42, true))
	assert.False(t, LastCommit{}.IsResolved())
	assert.True(t, ResolvedLastCommit(0, false).IsResolved())
}

func TestResolvedCommitCount_ClampsNegative(t *testing.T) {
	assert.Equal(t, CommitCount{Known: true, Value: 0}, ResolvedCommitCount(-3))
	assert.Equal(t, CommitCount{Known: true, Value: 8}, ResolvedCommitCount(8))
}
