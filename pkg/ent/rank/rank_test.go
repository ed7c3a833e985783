package rank_test

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/kgraft/pkg/ent/rank"
	"github.com/gnames/kgraft/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBelow(t *testing.T) {
	tests := []struct {
		msg  string
		in   string
		out  string
		code gn.ErrorCode
	}{
		{"kingdom", "kingdom", "phylum", 0},
		{"phylum", "phylum", "class", 0},
		{"genus", "genus", "species", 0},
		{"species", "species", "subspecies", 0},
		{"terminal", "subspecies", "", errcode.RankExhaustedError},
		{"no rank", "no rank", "", errcode.UnknownRankError},
		{"empty", "", "", errcode.UnknownRankError},
	}

	for _, v := range tests {
		res, err := rank.Below(v.in)
		if v.code == 0 {
			require.NoError(t, err, v.msg)
			assert.Equal(t, v.out, res, v.msg)
			continue
		}
		require.Error(t, err, v.msg)
		var gnErr *gn.Error
		require.True(t, errors.As(err, &gnErr), v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
		assert.Empty(t, res, v.msg)
	}
}

func TestBelowEveryRank(t *testing.T) {
	for i, r := range rank.Hierarchy[:len(rank.Hierarchy)-1] {
		res, err := rank.Below(r)
		require.NoError(t, err)
		assert.Equal(t, rank.Hierarchy[i+1], res)
		assert.True(t, rank.IsAbove(r, res))
	}
}

func TestIndex(t *testing.T) {
	assert.Equal(t, 0, rank.Index("kingdom"))
	assert.Equal(t, 7, rank.Index("subspecies"))
	assert.Equal(t, -1, rank.Index("clade"))
	assert.True(t, rank.IsKnown("order"))
	assert.False(t, rank.IsKnown("superkingdom"))
}

func TestIsTerminal(t *testing.T) {
	assert.Equal(t, "subspecies", rank.Terminal)
	assert.True(t, rank.IsTerminal("subspecies"))
	assert.False(t, rank.IsTerminal("species"))
}

func TestIsAbove(t *testing.T) {
	assert.True(t, rank.IsAbove("phylum", "genus"))
	assert.False(t, rank.IsAbove("genus", "phylum"))
	assert.False(t, rank.IsAbove("genus", "genus"))
	assert.False(t, rank.IsAbove("no rank", "genus"))
}
