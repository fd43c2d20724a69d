package variant

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/akopachev/gryphon/pkg/common"
)

// section is one parsed [name] or [name:template] block. Attributes keep
// last-write-wins semantics; keys remembers first-occurrence order so
// unknown-key reports stay deterministic.
type section struct {
	name     string
	template string
	attribs  map[string]string
	keys     []string
}

func newSection(header string) *section {
	var body = header[1:]
	if i := strings.IndexByte(body, ']'); i >= 0 {
		body = body[:i]
	}
	var sec = &section{attribs: make(map[string]string)}
	if i := strings.IndexByte(body, ':'); i >= 0 {
		sec.name = body[:i]
		sec.template = body[i+1:]
	} else {
		sec.name = body
	}
	return sec
}

func (sec *section) set(key, value string) {
	if _, seen := sec.attribs[key]; !seen {
		sec.keys = append(sec.keys, key)
	}
	sec.attribs[key] = value
}

// parseStream tokenizes the stream into sections and builds each one against
// the store. It returns the names it registered, so check mode can remove
// them again.
func parseStream(r io.Reader, s *Store, check bool, log *zap.SugaredLogger) []string {
	var added []string
	var scanner = bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var cur *section
	var flush = func() {
		if cur == nil {
			return
		}
		if name, ok := s.buildSection(cur, check, log); ok {
			added = append(added, name)
		}
		cur = nil
	}

	for scanner.Scan() {
		var line = strings.TrimSuffix(scanner.Text(), "\r")
		if strings.HasPrefix(line, "[") {
			flush()
			cur = newSection(line)
			continue
		}
		if cur == nil {
			// Prologue before the first section header.
			continue
		}
		var trimmed = strings.TrimLeft(line, " \t")
		if trimmed == "" || trimmed[0] == ';' || trimmed[0] == '#' {
			continue
		}
		var eq = strings.IndexByte(line, '=')
		if eq < 0 {
			if check {
				log.Warnf("invalid syntax: '%s'", line)
			}
			continue
		}
		var key = strings.TrimRight(line[:eq], " ")
		var value = strings.TrimLeft(line[eq+1:], " \t")
		if key == "" || value == "" {
			continue
		}
		cur.set(key, value)
	}
	flush()
	return added
}

// buildSection creates and registers one variant. Anomalies degrade to
// skipping the section: a duplicate name keeps the first registration, a
// missing template discards the section, an out-of-range board extent
// discards the built descriptor.
func (s *Store) buildSection(sec *section, check bool, log *zap.SugaredLogger) (string, bool) {
	if _, exists := s.variants[sec.name]; exists {
		log.Errorf("variant '%s' already exists", sec.name)
		return "", false
	}
	var v *Variant
	if sec.template != "" {
		var tmpl, ok = s.variants[sec.template]
		if !ok {
			log.Errorf("variant template '%s' does not exist", sec.template)
			return "", false
		}
		v = tmpl.Clone()
	} else {
		v = New()
	}
	if check {
		log.Infof("parsing variant: %s", sec.name)
	}

	applyAttributes(v, sec, check, log)

	if v.MaxFile > common.FileMax || v.MaxRank > common.RankMax {
		return "", false
	}
	s.Add(sec.name, v)
	return sec.name, true
}

// applyAttributes walks the setter table in its fixed order, so the result
// does not depend on the textual order of keys within the section.
func applyAttributes(v *Variant, sec *section, check bool, log *zap.SugaredLogger) {
	for _, attr := range attributeTable {
		var raw, ok = sec.attribs[attr.name]
		if !ok {
			continue
		}
		if err := attr.set(v, raw); err != nil && check {
			log.Warnf("invalid value '%s' for attribute '%s': %v", raw, attr.name, err)
		}
	}
	if check {
		for _, key := range sec.keys {
			if _, known := attributeIndex[key]; !known {
				log.Warnf("unknown attribute '%s'", key)
			}
		}
	}
}

type attribute struct {
	name string
	set  func(*Variant, string) error
}

var (
	attributeTable []attribute
	attributeIndex map[string]int
)

func init() {
	var add = func(name string, set func(*Variant, string) error) {
		attributeTable = append(attributeTable, attribute{name, set})
	}

	add("maxFile", func(v *Variant, s string) error {
		var n, err = parseExtent(s)
		if err != nil {
			return err
		}
		v.MaxFile = n
		return nil
	})
	add("maxRank", func(v *Variant, s string) error {
		var n, err = parseExtent(s)
		if err != nil {
			return err
		}
		v.MaxRank = n
		return nil
	})

	// One key per piece name: "pieceName = c", "pieceName = c:betza" or
	// "pieceName = -" to disable the piece.
	for pt := Pawn; pt < PieceTypeNB; pt++ {
		var pt = pt
		add(pieceNames[pt], func(v *Variant, s string) error {
			return setPiece(v, pt, s)
		})
	}

	add("pieceToCharTable", func(v *Variant, s string) error {
		v.PieceToCharTable = s
		return nil
	})
	add("pieceToCharSynonyms", func(v *Variant, s string) error {
		v.PieceToCharSynonyms = s
		return nil
	})
	add("startFen", func(v *Variant, s string) error {
		v.StartFen = s
		return nil
	})
	add("kingType", func(v *Variant, s string) error {
		var pt = pieceTypeByName(s)
		if pt == NoPieceType {
			return errors.Newf("unknown piece type %q", s)
		}
		v.KingType = pt
		return nil
	})

	addBool("castling", func(v *Variant) *bool { return &v.Castling })
	addBool("doubleStep", func(v *Variant) *bool { return &v.DoubleStep })
	addRegion("doubleStepRegionWhite", func(v *Variant) *uint64 { return &v.DoubleStepRegion[common.SideWhite] })
	addRegion("doubleStepRegionBlack", func(v *Variant) *uint64 { return &v.DoubleStepRegion[common.SideBlack] })

	// mobilityRegionWhitePawn, mobilityRegionBlackCustomPiece1, ...
	for side := common.SideWhite; side < common.SideNB; side++ {
		var side = side
		var sideName = [...]string{"White", "Black"}[side]
		for pt := Pawn; pt < PieceTypeNB; pt++ {
			var pt = pt
			addRegion("mobilityRegion"+sideName+upperFirst(pieceNames[pt]),
				func(v *Variant) *uint64 { return &v.MobilityRegion[side][pt] })
		}
	}

	addBool("cambodianMoves", func(v *Variant) *bool { return &v.CambodianMoves })
	addRegion("diagonalLines", func(v *Variant) *uint64 { return &v.DiagonalLines })

	addBool("pieceDrops", func(v *Variant) *bool { return &v.PieceDrops })
	addBool("capturesToHand", func(v *Variant) *bool { return &v.CapturesToHand })
	addBool("mustDrop", func(v *Variant) *bool { return &v.MustDrop })
	addBool("freeDrops", func(v *Variant) *bool { return &v.FreeDrops })
	addBool("seirawanGating", func(v *Variant) *bool { return &v.SeirawanGating })

	add("enclosingDrop", func(v *Variant, s string) error {
		return parseEnclosing(s, &v.EnclosingDrop)
	})
	addRegion("enclosingDropStart", func(v *Variant) *uint64 { return &v.EnclosingDropStart })
	add("flipEnclosedPieces", func(v *Variant, s string) error {
		return parseEnclosing(s, &v.FlipEnclosedPieces)
	})

	add("promotionPawnTypes", func(v *Variant, s string) error {
		var ps, err = parsePieceChars(v, s)
		if err != nil {
			return err
		}
		v.PromotionPawnTypes[common.SideWhite] = ps
		v.PromotionPawnTypes[common.SideBlack] = ps
		return nil
	})
	add("promotionPieceTypes", func(v *Variant, s string) error {
		var ps, err = parsePieceChars(v, s)
		if err != nil {
			return err
		}
		v.PromotionPieceTypes[common.SideWhite] = ps
		v.PromotionPieceTypes[common.SideBlack] = ps
		return nil
	})
	add("promotedPieceType", func(v *Variant, s string) error {
		return setPromotedPieceTypes(v, s)
	})

	add("checkmateValue", func(v *Variant, s string) error {
		return parseGameValue(s, &v.CheckmateValue)
	})
	add("stalemateValue", func(v *Variant, s string) error {
		return parseGameValue(s, &v.StalemateValue)
	})
	addBool("stalematePieceCount", func(v *Variant) *bool { return &v.StalematePieceCount })
	addBool("passOnStalemate", func(v *Variant) *bool { return &v.PassOnStalemate })
	addBool("immobilityIllegal", func(v *Variant) *bool { return &v.ImmobilityIllegal })

	add("extinctionValue", func(v *Variant, s string) error {
		return parseGameValue(s, &v.ExtinctionValue)
	})
	add("extinctionPieceTypes", func(v *Variant, s string) error {
		var ps, err = parsePieceChars(v, s)
		if err != nil {
			return err
		}
		v.ExtinctionPieceTypes = ps
		return nil
	})
	add("extinctionPieceCount", func(v *Variant, s string) error {
		var n, err = strconv.Atoi(s)
		if err != nil {
			return errors.Wrap(err, "extinctionPieceCount")
		}
		v.ExtinctionPieceCount = n
		return nil
	})

	add("materialCounting", func(v *Variant, s string) error {
		switch s {
		case "none":
			v.MaterialCounting = NoMaterialCounting
		case "janggi":
			v.MaterialCounting = JanggiMaterial
		case "unweighted":
			v.MaterialCounting = UnweightedMaterial
		case "whitedrawodds":
			v.MaterialCounting = WhiteDrawOdds
		case "blackdrawodds":
			v.MaterialCounting = BlackDrawOdds
		default:
			return errors.Newf("unknown material counting rule %q", s)
		}
		return nil
	})

	addRegion("flagRegionWhite", func(v *Variant) *uint64 { return &v.FlagRegion[common.SideWhite] })
	addRegion("flagRegionBlack", func(v *Variant) *uint64 { return &v.FlagRegion[common.SideBlack] })

	addBool("mustCapture", func(v *Variant) *bool { return &v.MustCapture })
	addBool("checkCounting", func(v *Variant) *bool { return &v.CheckCounting })
	addBool("makpongRule", func(v *Variant) *bool { return &v.MakpongRule })

	add("connectN", func(v *Variant, s string) error {
		var n, err = strconv.Atoi(s)
		if err != nil {
			return errors.Wrap(err, "connectN")
		}
		v.ConnectN = n
		return nil
	})
	addBool("connectHorizontal", func(v *Variant) *bool { return &v.ConnectHorizontal })
	addBool("connectVertical", func(v *Variant) *bool { return &v.ConnectVertical })
	addBool("connectDiagonal", func(v *Variant) *bool { return &v.ConnectDiagonal })

	addBool("blastOnCapture", func(v *Variant) *bool { return &v.BlastOnCapture })
	add("petrifyOnCaptureTypes", func(v *Variant, s string) error {
		var ps, err = parsePieceChars(v, s)
		if err != nil {
			return err
		}
		v.PetrifyOnCaptureTypes = ps
		return nil
	})

	add("nMoveRule", func(v *Variant, s string) error {
		var n, err = strconv.Atoi(s)
		if err != nil {
			return errors.Wrap(err, "nMoveRule")
		}
		v.NMoveRule = n
		return nil
	})
	addBool("twoBoards", func(v *Variant) *bool { return &v.TwoBoards })
	add("nnueAlias", func(v *Variant, s string) error {
		v.NnueAlias = s
		return nil
	})

	attributeIndex = make(map[string]int, len(attributeTable))
	for i, attr := range attributeTable {
		attributeIndex[attr.name] = i
	}
}

func addBool(name string, field func(*Variant) *bool) {
	attributeTable = append(attributeTable, attribute{name, func(v *Variant, s string) error {
		var b, err = strconv.ParseBool(s)
		if err != nil {
			return errors.Wrap(err, name)
		}
		*field(v) = b
		return nil
	}})
}

func addRegion(name string, field func(*Variant) *uint64) {
	attributeTable = append(attributeTable, attribute{name, func(v *Variant, s string) error {
		var b, err = parseRegion(s)
		if err != nil {
			return errors.Wrap(err, name)
		}
		*field(v) = b
		return nil
	}})
}

// parseExtent converts a file/rank count (as written in the configuration,
// "8" meaning eight files) to the 0-based index stored on the descriptor.
// Counts beyond the supported board are parsed without error; the builder
// rejects them after the derivation pass.
func parseExtent(s string) (int, error) {
	var n, err = strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrap(err, "board extent")
	}
	if n < 1 {
		return 0, errors.Newf("board extent %d out of range", n)
	}
	return n - 1, nil
}

// parseRegion reads a square list: "a2 b2", rank wildcards "*2", file
// wildcards "c*", "*" for the whole board, "-" for the empty region.
func parseRegion(s string) (uint64, error) {
	if s == "-" {
		return 0, nil
	}
	var b uint64
	for _, tok := range strings.Fields(s) {
		switch {
		case tok == "*":
			b = ^uint64(0)
		case len(tok) == 2 && tok[0] == '*':
			var rank = strings.Index("12345678", tok[1:2])
			if rank < 0 {
				return 0, errors.Newf("bad rank wildcard %q", tok)
			}
			b |= common.RankMask[rank]
		case len(tok) == 2 && tok[1] == '*':
			var file = strings.Index("abcdefgh", tok[0:1])
			if file < 0 {
				return 0, errors.Newf("bad file wildcard %q", tok)
			}
			b |= common.FileMask[file]
		default:
			var sq = common.ParseSquare(tok)
			if sq == common.SquareNone {
				return 0, errors.Newf("bad square %q", tok)
			}
			b |= common.SquareMask[sq]
		}
	}
	return b, nil
}

func parseGameValue(s string, out *common.Value) error {
	switch s {
	case "win":
		*out = common.ValueMate
	case "loss":
		*out = -common.ValueMate
	case "draw":
		*out = common.ValueDraw
	case "none":
		*out = common.ValueNone
	default:
		return errors.Newf("unknown game value %q", s)
	}
	return nil
}

func parseEnclosing(s string, out *EnclosingRule) error {
	switch s {
	case "none":
		*out = NoEnclosing
	case "reversi":
		*out = ReversiEnclosing
	case "ataxx":
		*out = AtaxxEnclosing
	default:
		return errors.Newf("unknown enclosing rule %q", s)
	}
	return nil
}

// parsePieceChars resolves a list of piece symbols ("nbrq") against the
// variant's current symbol table. Piece definitions are applied before any
// piece-set attribute, so symbols introduced in the same section resolve.
func parsePieceChars(v *Variant, s string) (PieceSet, error) {
	if s == "-" {
		return 0, nil
	}
	var ps PieceSet
	for i := 0; i < len(s); i++ {
		var c = s[i]
		if c == ' ' {
			continue
		}
		var found = false
		for pt := Pawn; pt < PieceTypeNB; pt++ {
			if v.PieceToChar[common.SideWhite][pt] == c || v.PieceToChar[common.SideBlack][pt] == c {
				ps |= PieceSetOf(pt)
				found = true
				break
			}
		}
		if !found {
			return 0, errors.Newf("no piece with symbol %q", string(c))
		}
	}
	return ps, nil
}

func setPiece(v *Variant, pt PieceType, s string) error {
	if s == "-" {
		v.RemovePiece(pt)
		return nil
	}
	var symbol, betza, _ = strings.Cut(s, ":")
	symbol = strings.TrimSpace(symbol)
	if len(symbol) != 1 {
		return errors.Newf("piece symbol must be a single character, got %q", symbol)
	}
	v.AddPiece(pt, symbol[0], betza)
	return nil
}

// setPromotedPieceTypes parses shogi-style promotion pairs by piece name,
// e.g. "shogiPawn:gold silver:gold".
func setPromotedPieceTypes(v *Variant, s string) error {
	if s == "-" {
		for pt := range v.PromotedPieceType {
			v.PromotedPieceType[pt] = NoPieceType
		}
		return nil
	}
	for _, pair := range strings.Fields(s) {
		var fromName, toName, ok = strings.Cut(pair, ":")
		if !ok {
			return errors.Newf("bad promotion pair %q", pair)
		}
		var from = pieceTypeByName(fromName)
		var to = pieceTypeByName(toName)
		if from == NoPieceType || to == NoPieceType {
			return errors.Newf("bad promotion pair %q", pair)
		}
		v.PromotedPieceType[from] = to
	}
	return nil
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
