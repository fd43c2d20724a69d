package variant

import (
	"github.com/akopachev/gryphon/pkg/common"
)

// Built-in variants. Each factory layers overrides on top of another one,
// starting from the plain chess base.

func chessVariantBase() *Variant {
	var v = New()
	v.PieceToCharTable = "PNBRQ................Kpnbrq................k"
	return v
}

// Standard chess.
// https://en.wikipedia.org/wiki/Chess
func chessVariant() *Variant {
	var v = chessVariantBase()
	v.NnueAlias = "nn-"
	return v
}

// Pseudo-variant only used for endgame initialization.
func fairyVariant() *Variant {
	var v = chessVariantBase()
	v.AddPiece(Silver, 's', "")
	v.AddPiece(Fers, 'f', "")
	return v
}

// Ataxx.
// https://en.wikipedia.org/wiki/Ataxx
func ataxxVariant() *Variant {
	var v = chessVariantBase()
	v.PieceToCharTable = "P.................p................."
	v.MaxRank = common.Rank7
	v.MaxFile = common.FileG
	v.ResetPieces()
	v.AddPiece(CustomPiece1, 'p', "mDmNmA")
	v.StartFen = "P5p/7/7/7/7/7/p5P w 0 1"
	v.PieceDrops = true
	v.DoubleStep = false
	v.Castling = false
	v.ImmobilityIllegal = false
	v.StalemateValue = -common.ValueMate
	v.StalematePieceCount = true
	v.PassOnStalemate = true
	v.EnclosingDrop = AtaxxEnclosing
	v.FlipEnclosedPieces = AtaxxEnclosing
	v.MaterialCounting = UnweightedMaterial
	v.NMoveRule = 0
	v.FreeDrops = true
	return v
}

// Flipersi.
// https://en.wikipedia.org/wiki/Reversi
func flipersiVariant() *Variant {
	var v = chessVariantBase()
	v.PieceToCharTable = "P.................p................."
	v.MaxRank = common.Rank8
	v.MaxFile = common.FileH
	v.ResetPieces()
	v.AddPiece(Immobile, 'p', "")
	v.StartFen = "8/8/8/8/8/8/8/8[PPPPPPPPPPPPPPPPPPPPPPPPPPPPPPPPpppppppppppppppppppppppppppppppp] w 0 1"
	v.PieceDrops = true
	v.DoubleStep = false
	v.Castling = false
	v.ImmobilityIllegal = false
	v.StalemateValue = -common.ValueMate
	v.StalematePieceCount = true
	v.PassOnStalemate = false
	v.EnclosingDrop = ReversiEnclosing
	v.EnclosingDropStart = common.MakeBitboard(
		common.SquareD4, common.SquareE4, common.SquareD5, common.SquareE5)
	v.FlipEnclosedPieces = ReversiEnclosing
	v.MaterialCounting = UnweightedMaterial
	return v
}

// Flipello.
// https://en.wikipedia.org/wiki/Reversi#Othello
func flipelloVariant() *Variant {
	var v = flipersiVariant()
	v.StartFen = "8/8/8/3pP3/3Pp3/8/8/8[PPPPPPPPPPPPPPPPPPPPPPPPPPPPPPPPpppppppppppppppppppppppppppppppp] w 0 1"
	v.PassOnStalemate = true
	return v
}

// Init registers all predefined variants.
func (s *Store) Init() {
	s.Add("chess", chessVariant())
	s.Add("normal", chessVariant())
	s.Add("fairy", fairyVariant()) // used for endgame code initialization
	s.Add("ataxx", ataxxVariant())
	s.Add("flipersi", flipersiVariant())
	s.Add("flipello", flipelloVariant())
}
