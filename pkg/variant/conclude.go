package variant

import (
	"github.com/akopachev/gryphon/pkg/common"
)

// Direction deltas in the 8-wide square layout.
const (
	DirEast      = 1
	DirNorth     = common.FileNB
	DirNorthEast = DirNorth + DirEast
	DirSouthEast = -DirNorth + DirEast
)

// Conclude populates the derived fields from the declared rules. It is pure
// and idempotent, and must tolerate descriptors with an out-of-range board
// extent: validation runs after this pass, not before.
//
// The piece/square index enumeration below is a bit-exact contract with
// pretrained evaluation networks. The visiting order (ascending type index,
// anchor piece last) and the offset arithmetic must not change; any
// reordering silently breaks compatibility with existing network files.
func (v *Variant) Conclude() *Variant {
	// Keep the double-step flag and its regions consistent, so the move
	// generator can test either one.
	if !v.DoubleStep {
		v.DoubleStepRegion[common.SideWhite] = 0
		v.DoubleStepRegion[common.SideBlack] = 0
	}
	if v.DoubleStepRegion[common.SideWhite] == 0 && v.DoubleStepRegion[common.SideBlack] == 0 {
		v.DoubleStep = false
	}

	var restrictedMobility = false
	for ps := v.PieceTypes; ps != 0 && !restrictedMobility; {
		var pt = ps.Lsb()
		ps &^= PieceSetOf(pt)
		if v.MobilityRegion[common.SideWhite][pt] != 0 || v.MobilityRegion[common.SideBlack][pt] != 0 {
			restrictedMobility = true
		}
	}
	v.FastAttacks = v.PieceTypes&^(ChessPieces|CommonFairyPieces) == 0 &&
		v.KingType == King &&
		!restrictedMobility &&
		!v.CambodianMoves &&
		v.DiagonalLines == 0
	v.FastAttacks2 = v.PieceTypes&^(ShogiPieces|CommonStepPieces) == 0 &&
		v.KingType == King &&
		!restrictedMobility &&
		!v.CambodianMoves &&
		v.DiagonalLines == 0

	// Select the anchor piece the evaluator's index scheme is rooted at.
	switch {
	case v.PieceTypes.Has(King):
		v.NnueKing = King
	case v.ExtinctionPieceCount == 0 && v.ExtinctionPieceTypes.Has(Commoner):
		v.NnueKing = Commoner
	default:
		v.NnueKing = NoPieceType
	}
	// The anchor must be count-invariant: a piece involved in promotion on
	// either side of the rule disqualifies itself.
	if v.NnueKing != NoPieceType {
		if (v.PromotionPawnTypes[common.SideWhite] | v.PromotionPawnTypes[common.SideBlack]).Has(v.NnueKing) ||
			(v.PromotionPieceTypes[common.SideWhite] | v.PromotionPieceTypes[common.SideBlack]).Has(v.NnueKing) {
			v.NnueKing = NoPieceType
		} else {
			for _, promoted := range v.PromotedPieceType {
				if promoted == v.NnueKing {
					v.NnueKing = NoPieceType
					break
				}
			}
		}
	}
	// And unique: exactly one instance per side in the starting position.
	if v.NnueKing != NoPieceType {
		var fenBoard = startFenBoard(v.StartFen)
		if countByte(fenBoard, v.PieceToChar[common.SideWhite][v.NnueKing]) != 1 ||
			countByte(fenBoard, v.PieceToChar[common.SideBlack][v.NnueKing]) != 1 {
			v.NnueKing = NoPieceType
		}
	}

	var nnueSquares = (v.MaxRank + 1) * (v.MaxFile + 1)
	v.NnueUsePockets = (v.PieceDrops && (v.CapturesToHand || (!v.MustDrop && v.PieceTypes.Count() != 1))) ||
		v.SeirawanGating
	var nnuePockets = 0
	if v.NnueUsePockets {
		nnuePockets = 2 * (v.MaxFile + 1)
	}
	var hasKing = 0
	if v.NnueKing != NoPieceType {
		hasKing = 1
	}
	var nnueNonDropPieceIndices = (2*v.PieceTypes.Count() - hasKing) * nnueSquares
	var nnuePieceIndices = nnueNonDropPieceIndices + 2*(v.PieceTypes.Count()-hasKing)*nnuePockets

	var i = 0
	for ps := v.PieceTypes; ps != 0; {
		// The anchor type takes the last index block; everything else is
		// visited in ascending type order.
		var pt PieceType
		if ps != PieceSetOf(v.NnueKing) {
			pt = (ps &^ PieceSetOf(v.NnueKing)).Lsb()
		} else {
			pt = ps.Lsb()
		}
		ps &^= PieceSetOf(pt)

		for side := common.SideWhite; side < common.SideNB; side++ {
			var them = side ^ 1
			var notKing = 1
			if pt == v.NnueKing {
				notKing = 0
			}
			v.PieceSquareIndex[side][side][pt] = 2 * i * nnueSquares
			v.PieceSquareIndex[side][them][pt] = (2*i + notKing) * nnueSquares
			v.PieceHandIndex[side][side][pt] = 2*i*nnuePockets + nnueNonDropPieceIndices
			v.PieceHandIndex[side][them][pt] = (2*i+1)*nnuePockets + nnueNonDropPieceIndices
		}
		i++
	}

	// Compact the anchor's legal squares onto a dense enumeration, e.g. the
	// nine palace squares of a xiangqi-style variant instead of the whole
	// board. Skipped for invalid board extents, which can reach this point
	// during configuration checking.
	var nnueKingSquare = 0
	if v.NnueKing != NoPieceType && nnueSquares <= common.SquareNB {
		for s := 0; s < nnueSquares; s++ {
			var bitboardSquare = s + s/(v.MaxFile+1)*(common.FileMax-v.MaxFile)
			var white = v.MobilityRegion[common.SideWhite][v.NnueKing]
			var black = v.MobilityRegion[common.SideBlack][v.NnueKing]
			if white == 0 || black == 0 ||
				white&common.SquareMask[bitboardSquare] != 0 ||
				black&common.SquareMask[common.RelativeSquare(common.SideBlack, bitboardSquare, v.MaxRank)] != 0 {
				v.KingSquareIndex[s] = nnueKingSquare * nnuePieceIndices
				nnueKingSquare++
			}
		}
	} else {
		v.KingSquareIndex[common.SquareA1] = nnueKingSquare * nnuePieceIndices
		nnueKingSquare++
	}
	v.NnueDimensions = nnueKingSquare * nnuePieceIndices

	// Upper bound of simultaneous pieces, from the starting placement.
	v.NnueMaxPieces = 0
	for i := 0; i < len(v.StartFen); i++ {
		if v.StartFen[i] == ' ' {
			break
		}
		if v.isPieceChar(v.StartFen[i]) {
			v.NnueMaxPieces++
		}
	}
	if v.TwoBoards {
		v.NnueMaxPieces *= 2
	}

	// The generic endgame tables only apply when no special win rule is in
	// effect and nothing changes the basic mechanics.
	v.EndgameEval = v.ExtinctionValue == common.ValueNone &&
		v.CheckmateValue == -common.ValueMate &&
		v.StalemateValue == common.ValueDraw &&
		v.MaterialCounting == NoMaterialCounting &&
		v.FlagRegion[common.SideWhite] == 0 && v.FlagRegion[common.SideBlack] == 0 &&
		!v.MustCapture &&
		!v.CheckCounting &&
		!v.MakpongRule &&
		v.ConnectN == 0 &&
		!v.BlastOnCapture &&
		v.PetrifyOnCaptureTypes == 0 &&
		!v.CapturesToHand &&
		!v.TwoBoards &&
		!restrictedMobility &&
		v.KingType == King

	v.ShogiStylePromotions = false
	for _, promoted := range v.PromotedPieceType {
		if promoted != NoPieceType {
			v.ShogiStylePromotions = true
			break
		}
	}

	var dirs = make([]int, 0, 4)
	if v.ConnectHorizontal {
		dirs = append(dirs, DirEast)
	}
	if v.ConnectVertical {
		dirs = append(dirs, DirNorth)
	}
	if v.ConnectDiagonal {
		dirs = append(dirs, DirNorthEast, DirSouthEast)
	}
	v.ConnectDirections = dirs

	return v
}

func startFenBoard(fen string) string {
	for i := 0; i < len(fen); i++ {
		if fen[i] == ' ' {
			return fen[:i]
		}
	}
	return fen
}

func countByte(s string, b byte) int {
	if b == 0 {
		return 0
	}
	var n = 0
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			n++
		}
	}
	return n
}
