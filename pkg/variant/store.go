package variant

import (
	"io"
	"os"
	"sort"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Store is the name-keyed registry owning every concluded variant. The host
// populates it during startup (Init, then optionally LoadFile) and treats it
// as read-only afterwards; the store is not safe for concurrent mutation.
type Store struct {
	variants map[string]*Variant
}

func NewStore() *Store {
	return &Store{variants: make(map[string]*Variant)}
}

// Add concludes v and inserts it under name, taking ownership.
func (s *Store) Add(name string, v *Variant) {
	s.variants[name] = v.Conclude()
}

func (s *Store) Get(name string) (*Variant, bool) {
	var v, ok = s.variants[name]
	return v, ok
}

// GetKeys returns the registered names in sorted order, for enumeration by
// the option catalog.
func (s *Store) GetKeys() []string {
	var keys = make([]string, 0, len(s.variants))
	for name := range s.variants {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	return keys
}

// ClearAll releases every registered variant. Call once at shutdown or
// before a clean reload.
func (s *Store) ClearAll() {
	s.variants = make(map[string]*Variant)
}

// LoadFile reads a variant configuration file and registers its sections.
// Parse anomalies are logged and skipped; only an unreadable file is an
// error, and it leaves previously registered variants intact.
func (s *Store) LoadFile(path string, log *zap.SugaredLogger) error {
	return s.parseFile(path, false, log)
}

// CheckFile parses path in check mode: every section is logged, malformed
// lines and unknown keys are reported, and variants registered only to make
// template references resolvable are removed again at the end.
func (s *Store) CheckFile(path string, log *zap.SugaredLogger) error {
	return s.parseFile(path, true, log)
}

func (s *Store) parseFile(path string, check bool, log *zap.SugaredLogger) error {
	if path == "" || path == "<empty>" {
		return nil
	}
	var f, err = os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "unable to open variant configuration %q", path)
	}
	defer f.Close()
	s.Parse(f, check, log)
	return nil
}

// Parse reads an INI-like variant configuration stream; see ParseStream in
// parser.go for the format. In check mode, variants registered during the
// parse are removed afterwards, leaving the store as it was.
func (s *Store) Parse(r io.Reader, check bool, log *zap.SugaredLogger) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	var added = parseStream(r, s, check, log)
	if check {
		for _, name := range added {
			delete(s.variants, name)
		}
	}
}
