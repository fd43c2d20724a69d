package eval

import (
	"path/filepath"
	"strings"

	"github.com/akopachev/gryphon/pkg/variant"
)

const (
	HiddenSize = 512
	OutputSize = 1
)

// Topology describes the input layer a network file must have been trained
// with for a given variant.
type Topology struct {
	Inputs  int
	Hidden  int
	Outputs int
}

func TopologyFor(v *variant.Variant) Topology {
	return Topology{
		Inputs:  v.NnueDimensions,
		Hidden:  HiddenSize,
		Outputs: OutputSize,
	}
}

// FeatureIndex returns the input-feature index of a piece on a board square,
// seen from perspective's side with its anchor piece on kingSq. The layout
// is fixed by Variant.Conclude; this function only adds the offsets up.
func FeatureIndex(v *variant.Variant, perspective, kingSq int, pieceSide int, pt variant.PieceType, sq int) int {
	return v.KingSquareIndex[kingSq] + v.PieceSquareIndex[perspective][pieceSide][pt] + sq
}

// HandFeatureIndex is FeatureIndex for a piece held in a pocket slot.
func HandFeatureIndex(v *variant.Variant, perspective, kingSq int, pieceSide int, pt variant.PieceType, slot int) int {
	return v.KingSquareIndex[kingSq] + v.PieceHandIndex[perspective][pieceSide][pt] + slot
}

// MatchesNetworkName reports whether a network file name looks like it was
// trained for the named variant: the base name starts with the variant's
// alias hint, is exactly the variant name plus an extension, or is the
// variant name followed by a dash and a version tag.
func MatchesNetworkName(v *variant.Variant, name, fileName string) bool {
	var base = filepath.Base(fileName)
	if v.NnueAlias != "" && strings.HasPrefix(base, v.NnueAlias) {
		return true
	}
	if strings.TrimSuffix(base, filepath.Ext(base)) == name {
		return true
	}
	return strings.HasPrefix(base, name+"-")
}
