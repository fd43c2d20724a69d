package variant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPieceSet(t *testing.T) {
	var ps = PieceSetOf(Pawn, Queen, King)
	assert.True(t, ps.Has(Pawn))
	assert.True(t, ps.Has(King))
	assert.False(t, ps.Has(Knight))
	assert.False(t, ps.Has(NoPieceType))
	assert.Equal(t, 3, ps.Count())
	assert.Equal(t, Pawn, ps.Lsb())

	assert.Equal(t, NoPieceType, PieceSet(0).Lsb())
	assert.Equal(t, PieceSet(0), PieceSetOf(NoPieceType))
}

func TestPieceNamesRoundTrip(t *testing.T) {
	for pt := Pawn; pt < PieceTypeNB; pt++ {
		assert.Equal(t, pt, pieceTypeByName(pieceNames[pt]))
	}
	assert.Equal(t, NoPieceType, pieceTypeByName("gryphon"))
}

func TestVocabulariesKeepKingLast(t *testing.T) {
	// The index enumeration relies on King having the highest type index.
	for pt := Pawn; pt < PieceTypeNB; pt++ {
		assert.LessOrEqual(t, int(pt), int(King))
	}
}
