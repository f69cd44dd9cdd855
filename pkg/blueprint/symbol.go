package blueprint

// Symbol is a runtime-tagged value usable as a latch state or event. Symbols
// are minted by a Vocabulary, which assigns dense tags in declaration order
// and stamps every symbol with the domain's maximum tag.
type Symbol struct {
	name string
	tag  int
	max  int
}

// Name returns the declared name of the symbol.
func (s Symbol) Name() string { return s.name }

// Tag returns the dense tag assigned by the vocabulary.
func (s Symbol) Tag() int { return s.tag }

// MaxTag returns the highest tag in the symbol's vocabulary.
func (s Symbol) MaxTag() int { return s.max }

func (s Symbol) String() string { return s.name }

// Vocabulary indexes the symbols of one domain (states or events) by name.
type Vocabulary struct {
	byName  map[string]Symbol
	ordered []Symbol
}

// NewVocabulary mints a symbol per name, in order. Repeated names collapse
// onto the first occurrence.
func NewVocabulary(names ...string) *Vocabulary {
	v := &Vocabulary{byName: make(map[string]Symbol, len(names))}
	for _, name := range names {
		if _, ok := v.byName[name]; ok {
			continue
		}
		v.ordered = append(v.ordered, Symbol{name: name, tag: len(v.ordered)})
	}
	// Tags are final now; stamp every symbol with the domain maximum.
	max := len(v.ordered) - 1
	for i := range v.ordered {
		v.ordered[i].max = max
		v.byName[v.ordered[i].name] = v.ordered[i]
	}
	return v
}

// Lookup resolves a name to its symbol.
func (v *Vocabulary) Lookup(name string) (Symbol, bool) {
	s, ok := v.byName[name]
	return s, ok
}

// Symbols returns the symbols in declaration order.
func (v *Vocabulary) Symbols() []Symbol {
	out := make([]Symbol, len(v.ordered))
	copy(out, v.ordered)
	return out
}

// Names returns the declared names in order.
func (v *Vocabulary) Names() []string {
	names := make([]string, len(v.ordered))
	for i, s := range v.ordered {
		names[i] = s.name
	}
	return names
}

// Len returns the number of symbols, i.e. the table axis length.
func (v *Vocabulary) Len() int { return len(v.ordered) }
