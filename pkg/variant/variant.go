package variant

import (
	"unicode"

	"github.com/akopachev/gryphon/pkg/common"
)

// MaterialCounting selects a material-based adjudication rule.
type MaterialCounting int

const (
	NoMaterialCounting MaterialCounting = iota
	JanggiMaterial
	UnweightedMaterial
	WhiteDrawOdds
	BlackDrawOdds
)

// EnclosingRule selects a surround-capture style for drops and flips.
type EnclosingRule int

const (
	NoEnclosing EnclosingRule = iota
	ReversiEnclosing
	AtaxxEnclosing
)

const InitialFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Variant is the complete rule descriptor for one playable game.
//
// The Nnue*, FastAttacks*, EndgameEval, ShogiStylePromotions and
// ConnectDirections fields are derived: they are undefined until Conclude has
// run, and a concluded Variant is read-only for every consumer.
type Variant struct {
	// Board and pieces
	MaxFile             int
	MaxRank             int
	PieceTypes          PieceSet
	PieceToChar         [common.SideNB][PieceTypeNB]byte
	PieceToCharSynonyms string
	PieceMoves          [PieceTypeNB]string // Betza notation, custom movers only
	PieceToCharTable    string
	StartFen            string
	TwoBoards           bool
	NnueAlias           string

	// Movement rules
	KingType         PieceType
	Castling         bool
	DoubleStep       bool
	DoubleStepRegion [common.SideNB]uint64
	MobilityRegion   [common.SideNB][PieceTypeNB]uint64
	CambodianMoves   bool
	DiagonalLines    uint64

	// Drops
	PieceDrops     bool
	CapturesToHand bool
	MustDrop       bool
	FreeDrops      bool
	SeirawanGating bool

	// Enclosing captures
	EnclosingDrop      EnclosingRule
	EnclosingDropStart uint64
	FlipEnclosedPieces EnclosingRule

	// Promotion
	PromotionPawnTypes  [common.SideNB]PieceSet
	PromotionPieceTypes [common.SideNB]PieceSet
	PromotedPieceType   [PieceTypeNB]PieceType

	// Game-end rules
	CheckmateValue        common.Value
	StalemateValue        common.Value
	StalematePieceCount   bool
	PassOnStalemate       bool
	ImmobilityIllegal     bool
	ExtinctionValue       common.Value
	ExtinctionPieceTypes  PieceSet
	ExtinctionPieceCount  int
	MaterialCounting      MaterialCounting
	FlagRegion            [common.SideNB]uint64
	MustCapture           bool
	CheckCounting         bool
	MakpongRule           bool
	ConnectN              int
	ConnectHorizontal     bool
	ConnectVertical       bool
	ConnectDiagonal       bool
	BlastOnCapture        bool
	PetrifyOnCaptureTypes PieceSet
	NMoveRule             int

	// Derived fields, populated by Conclude only.
	FastAttacks          bool
	FastAttacks2         bool
	NnueKing             PieceType
	NnueUsePockets       bool
	PieceSquareIndex     [common.SideNB][common.SideNB][PieceTypeNB]int
	PieceHandIndex       [common.SideNB][common.SideNB][PieceTypeNB]int
	KingSquareIndex      [common.SquareNB]int
	NnueDimensions       int
	NnueMaxPieces        int
	EndgameEval          bool
	ShogiStylePromotions bool
	ConnectDirections    []int
}

// New returns the base descriptor every preset and every configured variant
// starts from: standard chess on an 8x8 board.
func New() *Variant {
	var v = &Variant{
		MaxFile:    common.FileMax,
		MaxRank:    common.RankMax,
		StartFen:   InitialFen,
		KingType:   King,
		Castling:   true,
		DoubleStep: true,
		DoubleStepRegion: [common.SideNB]uint64{
			common.Rank2Mask,
			common.Rank7Mask,
		},
		CheckmateValue:    -common.ValueMate,
		StalemateValue:    common.ValueDraw,
		ExtinctionValue:   common.ValueNone,
		NMoveRule:         50,
		ConnectHorizontal: true,
		ConnectVertical:   true,
		ConnectDiagonal:   true,
	}
	v.PromotionPawnTypes[common.SideWhite] = PieceSetOf(Pawn)
	v.PromotionPawnTypes[common.SideBlack] = PieceSetOf(Pawn)
	v.PromotionPieceTypes[common.SideWhite] = PieceSetOf(Knight, Bishop, Rook, Queen)
	v.PromotionPieceTypes[common.SideBlack] = PieceSetOf(Knight, Bishop, Rook, Queen)
	v.AddPiece(Pawn, 'p', "")
	v.AddPiece(Knight, 'n', "")
	v.AddPiece(Bishop, 'b', "")
	v.AddPiece(Rook, 'r', "")
	v.AddPiece(Queen, 'q', "")
	v.AddPiece(King, 'k', "")
	return v
}

// AddPiece enables pt with symbol c (stored uppercase for White, lowercase
// for Black) and an optional custom movement pattern.
func (v *Variant) AddPiece(pt PieceType, c byte, betza string) {
	v.PieceTypes |= PieceSetOf(pt)
	v.PieceToChar[common.SideWhite][pt] = byte(unicode.ToUpper(rune(c)))
	v.PieceToChar[common.SideBlack][pt] = byte(unicode.ToLower(rune(c)))
	v.PieceMoves[pt] = betza
}

func (v *Variant) RemovePiece(pt PieceType) {
	v.PieceTypes &^= PieceSetOf(pt)
	v.PieceToChar[common.SideWhite][pt] = 0
	v.PieceToChar[common.SideBlack][pt] = 0
	v.PieceMoves[pt] = ""
}

// ResetPieces disables every piece type, clearing the symbol tables.
func (v *Variant) ResetPieces() {
	for pt := Pawn; pt < PieceTypeNB; pt++ {
		v.RemovePiece(pt)
	}
}

// Clone returns a deep, independently mutable copy. The builder mutates the
// clone of a template without affecting the template itself.
func (v *Variant) Clone() *Variant {
	var c = *v
	if v.ConnectDirections != nil {
		c.ConnectDirections = append([]int(nil), v.ConnectDirections...)
	}
	return &c
}

// isPieceChar reports whether b is a recognized piece symbol for either
// side, including declared synonyms.
func (v *Variant) isPieceChar(b byte) bool {
	if b == 0 {
		return false
	}
	for side := common.SideWhite; side < common.SideNB; side++ {
		for pt := Pawn; pt < PieceTypeNB; pt++ {
			if v.PieceToChar[side][pt] == b {
				return true
			}
		}
	}
	for i := 0; i < len(v.PieceToCharSynonyms); i++ {
		if v.PieceToCharSynonyms[i] == b {
			return true
		}
	}
	return false
}
