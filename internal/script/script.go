// Package script replays YAML-described operation sequences against an
// integer vector and checks the expectations attached to each step.
package script

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidScript is returned when a script cannot be parsed or a step is malformed.
var ErrInvalidScript = errors.New("invalid script")

// Supported operations.
const (
	OpPushBack = "push_back"
	OpPopBack  = "pop_back"
	OpInsert   = "insert"
	OpErase    = "erase"
	OpReserve  = "reserve"
	OpResize   = "resize"
	OpClear    = "clear"
	OpAt       = "at"
	OpSet      = "set"
)

// Error kinds accepted by Step.Error.
const (
	KindIndexOutOfRange   = "index_out_of_range"
	KindEmptyContainer    = "empty_container"
	KindInvalidPosition   = "invalid_position"
	KindAllocationFailure = "allocation_failure"
	KindOther             = "other"
)

// Script is a named sequence of steps.
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is one operation plus optional expectations on the vector afterwards.
// For "at", Value is the expected element; for the other ops it is the input.
type Step struct {
	Op       string `yaml:"op"`
	Pos      *int   `yaml:"pos,omitempty"`
	Value    *int   `yaml:"value,omitempty"`
	N        *int   `yaml:"n,omitempty"`
	Expect   *[]int `yaml:"expect,omitempty"`
	Size     *int   `yaml:"size,omitempty"`
	Capacity *int   `yaml:"capacity,omitempty"`
	Error    string `yaml:"error,omitempty"`
}

// Load parses a script from r and validates every step.
func Load(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: yaml decode: %v", ErrInvalidScript, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile parses the script stored at path. A missing name defaults to the path.
func LoadFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	return s, nil
}

// Validate checks that every step names a known operation with its required fields.
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("%w: no steps", ErrInvalidScript)
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return fmt.Errorf("%w: step %d (%s): %v", ErrInvalidScript, i, st.Op, err)
		}
	}
	return nil
}

func (st Step) validate() error {
	var needPos, needValue, needN bool
	switch st.Op {
	case OpPushBack:
		needValue = true
	case OpInsert, OpSet:
		needPos, needValue = true, true
	case OpErase, OpAt:
		needPos = true
	case OpReserve, OpResize:
		needN = true
	case OpPopBack, OpClear:
	case "":
		return errors.New("missing op")
	default:
		return fmt.Errorf("unknown op %q", st.Op)
	}

	switch {
	case needPos && st.Pos == nil:
		return errors.New("pos is required")
	case needValue && st.Value == nil:
		return errors.New("value is required")
	case needN && st.N == nil:
		return errors.New("n is required")
	}

	switch st.Error {
	case "", KindIndexOutOfRange, KindEmptyContainer, KindInvalidPosition, KindAllocationFailure, KindOther:
	default:
		return fmt.Errorf("unknown error kind %q", st.Error)
	}
	return nil
}
