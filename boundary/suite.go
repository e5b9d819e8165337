package boundary

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"conversion-oracle/internal/common"
	"conversion-oracle/primitive"
)

// Class groups cases by the policy they exercise and the expected result.
type Class int

const (
	_ Class = iota

	NeverTraps  // trapping conversion succeeds with Expected
	NeverFails  // checked conversion is Representable(Expected)
	AlwaysTraps // trapping conversion faults
	AlwaysFails // checked conversion is NotRepresentable
)

var classNames = map[Class]string{
	NeverTraps:  "NeverTraps",
	NeverFails:  "NeverFails",
	AlwaysTraps: "AlwaysTraps",
	AlwaysFails: "AlwaysFails",
}

func (c Class) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}

	return common.UnknownStr
}

func (c Class) MarshalText() ([]byte, error) {
	name, ok := classNames[c]
	if !ok {
		return nil, fmt.Errorf("cannot marshal class %d", int(c))
	}

	return []byte(name), nil
}

func (c *Class) UnmarshalText(text []byte) error {
	for class, name := range classNames {
		if name == string(text) {
			*c = class
			return nil
		}
	}

	return fmt.Errorf("unknown case class %q", text)
}

// Suite holds every boundary case for one target kind.
type Suite struct {
	Name        string             `yaml:"name"`
	Target      primitive.KindEnum `yaml:"target"`
	PointerBits int                `yaml:"pointer_bits"`
	Sections    []Section          `yaml:"sections"`
}

// Section holds the cases of one source kind. Min and Max bound the integers
// the source kind represents exactly.
type Section struct {
	Source primitive.KindEnum `yaml:"source"`
	Min    string             `yaml:"min"`
	Max    string             `yaml:"max"`
	Groups []Group            `yaml:"groups"`
}

type Group struct {
	Class Class  `yaml:"class"`
	Cases []Case `yaml:"cases"`
}

// Case is a source literal with the expected target literal. Truncated is the
// wrapped result of a truncating conversion of an out of range integer.
type Case struct {
	Source    string `yaml:"source"`
	Expected  string `yaml:"expected,omitempty"`
	Truncated string `yaml:"truncated,omitempty"`
}

// Group returns the group of the given class, or nil.
func (s *Section) Group(class Class) *Group {
	for i := range s.Groups {
		if s.Groups[i].Class == class {
			return &s.Groups[i]
		}
	}

	return nil
}

// Section returns the section of the given source kind, or nil.
func (s *Suite) Section(source primitive.KindEnum) *Section {
	for i := range s.Sections {
		if s.Sections[i].Source == source {
			return &s.Sections[i]
		}
	}

	return nil
}

// LoadFile loads and parses a YAML suite from the given path.
func LoadFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Suite.
func Parse(data []byte) (*Suite, error) {
	var s Suite

	err := yaml.Unmarshal(data, &s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse suite YAML: %w", err)
	}

	if !s.Target.IsInteger() {
		return nil, fmt.Errorf("suite %q: target %s is not an integer kind", s.Name, s.Target)
	}

	return &s, nil
}

// Marshal serializes a Suite to YAML.
func Marshal(s *Suite) ([]byte, error) {
	return yaml.Marshal(s)
}

// WriteFile writes a Suite to the given path.
func WriteFile(s *Suite, path string) error {
	data, err := Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal suite: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write suite file %s: %w", path, err)
	}

	return nil
}
