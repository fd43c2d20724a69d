package variant

import "math/bits"

// PieceType enumerates the fixed universe of piece types a variant may
// enable. King stays last so the index enumeration in Conclude can place it
// after every other type.
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	Fers
	Wazir
	Alfil
	Silver
	Gold
	Commoner
	Archbishop
	Chancellor
	Amazon
	ShogiPawn
	Lance
	ShogiKnight
	Horse
	Dragon
	Cannon
	Soldier
	Immobile
	CustomPiece1
	CustomPiece2
	CustomPiece3
	CustomPiece4
	King
	PieceTypeNB
)

// PieceSet is a bitset over PieceType, bit 1<<(pt-1).
type PieceSet uint64

func PieceSetOf(pts ...PieceType) PieceSet {
	var ps PieceSet
	for _, pt := range pts {
		if pt != NoPieceType {
			ps |= 1 << uint(pt-1)
		}
	}
	return ps
}

func (ps PieceSet) Has(pt PieceType) bool {
	return pt != NoPieceType && ps&PieceSetOf(pt) != 0
}

func (ps PieceSet) Count() int {
	return bits.OnesCount64(uint64(ps))
}

func (ps PieceSet) Lsb() PieceType {
	if ps == 0 {
		return NoPieceType
	}
	return PieceType(bits.TrailingZeros64(uint64(ps)) + 1)
}

// Known-simple vocabularies. A piece set confined to one of the two unions
// below lets move generation take a specialized path.
var (
	ChessPieces = PieceSetOf(Pawn, Knight, Bishop, Rook, Queen, King)

	CommonFairyPieces = PieceSetOf(Fers, Wazir, Alfil, Silver, Gold, Commoner,
		Archbishop, Chancellor, Amazon, Soldier, Immobile)

	ShogiPieces = PieceSetOf(ShogiPawn, Lance, ShogiKnight, Silver, Gold,
		Bishop, Rook, Horse, Dragon, King)

	CommonStepPieces = PieceSetOf(Fers, Wazir, Silver, Gold, Commoner,
		Soldier, Immobile)
)

// pieceNames maps a PieceType to its configuration-file key.
var pieceNames = [PieceTypeNB]string{
	Pawn:         "pawn",
	Knight:       "knight",
	Bishop:       "bishop",
	Rook:         "rook",
	Queen:        "queen",
	Fers:         "fers",
	Wazir:        "wazir",
	Alfil:        "alfil",
	Silver:       "silver",
	Gold:         "gold",
	Commoner:     "commoner",
	Archbishop:   "archbishop",
	Chancellor:   "chancellor",
	Amazon:       "amazon",
	ShogiPawn:    "shogiPawn",
	Lance:        "lance",
	ShogiKnight:  "shogiKnight",
	Horse:        "horse",
	Dragon:       "dragon",
	Cannon:       "cannon",
	Soldier:      "soldier",
	Immobile:     "immobile",
	CustomPiece1: "customPiece1",
	CustomPiece2: "customPiece2",
	CustomPiece3: "customPiece3",
	CustomPiece4: "customPiece4",
	King:         "king",
}

func (pt PieceType) String() string {
	if pt <= NoPieceType || pt >= PieceTypeNB {
		return "none"
	}
	return pieceNames[pt]
}

func pieceTypeByName(name string) PieceType {
	for pt := Pawn; pt < PieceTypeNB; pt++ {
		if pieceNames[pt] == name {
			return pt
		}
	}
	return NoPieceType
}
