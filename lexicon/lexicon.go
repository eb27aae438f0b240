// Package lexicon models Lexicon schema documents: JSON files that describe the records, RPC
// endpoints and data shapes of one namespaced identifier (NSID).
//
// Every schema node is a JSON object discriminated by its "type" field. Node is the closed union
// of all of them; ParamNode and BodySchema are the narrower unions allowed in RPC parameters and
// bodies. Cross-definition links are by name only (Ref, Union), never by pointer.
package lexicon

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"regexp"
	"sort"

	"github.com/ghodss/yaml"
)

// Version is the only Lexicon language version.
const Version = 1

// Lexicon is a schema document. A definition named "main" describes the primary type of the
// document; a document with no definitions is invalid.
type Lexicon struct {
	Lexicon     int    `json:"lexicon"`
	ID          string `json:"id"`
	Revision    *int32 `json:"revision,omitempty"`
	Description string `json:"description,omitempty"`
	// Defs maps each definition name to its schema.
	Defs map[string]Node `json:"defs"`
}

func New(id string) *Lexicon {
	return &Lexicon{
		Lexicon: Version,
		ID:      id,
		Defs:    make(map[string]Node),
	}
}

func (l *Lexicon) MarshalJSON() ([]byte, error) {
	type alias Lexicon
	tmp := *l
	if tmp.Defs == nil {
		tmp.Defs = map[string]Node{}
	}
	return json.Marshal((*alias)(&tmp))
}

func (l *Lexicon) UnmarshalJSON(data []byte) error {
	type alias Lexicon
	aux := struct {
		Defs map[string]json.RawMessage `json:"defs"`
		*alias
	}{alias: (*alias)(l)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	defs, err := decodeNodes(aux.Defs)
	if err != nil {
		return fmt.Errorf("defs: %w", err)
	}
	l.Defs = defs
	return nil
}

// DefNames returns the definition names in sorted order.
func (l *Lexicon) DefNames() []string {
	names := make([]string, 0, len(l.Defs))
	for name := range l.Defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var nsidPattern = regexp.MustCompile(`^[a-zA-Z]([a-zA-Z0-9-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?)+$`)

func IsValidNSID(id string) bool {
	return len(id) <= 317 && nsidPattern.MatchString(id)
}

func (l *Lexicon) Validate() error {
	if l.Lexicon != Version {
		return fmt.Errorf("unsupported lexicon version %d", l.Lexicon)
	}
	if !IsValidNSID(l.ID) {
		return fmt.Errorf("invalid lexicon id %q", l.ID)
	}
	if len(l.Defs) == 0 {
		return fmt.Errorf("lexicon %s has no definitions", l.ID)
	}
	for _, name := range l.DefNames() {
		if l.Defs[name] == nil {
			return fmt.Errorf("lexicon %s: definition %q is empty", l.ID, name)
		}
	}
	return nil
}

// Parse decodes and validates a document. YAML is accepted as well as JSON.
func Parse(data []byte) (*Lexicon, error) {
	var l Lexicon
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, err
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

func Load(path string) (*Lexicon, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("Cannot read file %q: %v", path, err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("Cannot load lexicon %q: %v", path, err)
	}
	return l, nil
}

func ToYAML(l *Lexicon) ([]byte, error) {
	return yaml.Marshal(l)
}
