package uci

import (
	"github.com/akopachev/gryphon/pkg/variant"
)

// Settings holds the values behind the standard option catalog.
type Settings struct {
	Threads     int
	Hash        int
	Ponder      bool
	EvalFile    string
	VariantPath string
	Variant     string
}

func NewSettings() Settings {
	return Settings{
		Threads: 1,
		Hash:    128,
		Variant: "chess",
	}
}

// EngineOptions declares the catalog a variant engine exposes to a GUI.
// UCI_Variant is populated from the store, so register variants first.
func EngineOptions(store *variant.Store, s *Settings) Catalog {
	return Catalog{
		&IntOption{Name: "Threads", Min: 1, Max: 128, Value: &s.Threads},
		&IntOption{Name: "Hash", Min: 1, Max: 1 << 16, Value: &s.Hash},
		&BoolOption{Name: "Ponder", Value: &s.Ponder},
		&StringOption{Name: "EvalFile", Value: &s.EvalFile},
		&StringOption{Name: "VariantPath", Value: &s.VariantPath},
		VariantOption(store, &s.Variant),
	}
}
