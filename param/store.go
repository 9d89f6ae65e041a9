package param

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/simple-eq/dsp/eq"
)

var (
	// ErrUnknownParameter is returned for an ID or name that is not a control.
	ErrUnknownParameter = errors.New("param: unknown parameter")
	// ErrInvalidValue is returned for NaN or unparsable values.
	ErrInvalidValue = errors.New("param: invalid value")
)

// Store holds the seven controls. All methods are safe for concurrent use;
// Settings is lock-free and allocation-free for the audio thread.
type Store struct {
	params [NumIDs]*Parameter
}

// NewStore returns a store with every control at its default.
func NewStore() *Store {
	s := &Store{}
	for i, spec := range Layout() {
		s.params[i] = newParameter(spec)
	}

	return s
}

// Get returns the parameter for id, or nil.
func (s *Store) Get(id ID) *Parameter {
	if !id.Valid() {
		return nil
	}

	return s.params[id]
}

// Lookup finds a parameter by display name, ignoring case.
func (s *Store) Lookup(name string) (*Parameter, error) {
	name = strings.TrimSpace(name)
	for _, p := range s.params {
		if strings.EqualFold(p.Name(), name) {
			return p, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownParameter, name)
}

// Set stores a plain value for id.
func (s *Store) Set(id ID, v float64) error {
	p := s.Get(id)
	if p == nil {
		return fmt.Errorf("%w: %v", ErrUnknownParameter, id)
	}

	if math.IsNaN(v) {
		return fmt.Errorf("%w: %s is NaN", ErrInvalidValue, p.Name())
	}

	p.Set(v)

	return nil
}

// SetByName parses text with the control's parser and stores it.
func (s *Store) SetByName(name, text string) error {
	p, err := s.Lookup(name)
	if err != nil {
		return err
	}

	v, err := p.Parse(text)
	if err != nil {
		return fmt.Errorf("%w: %s=%q: %w", ErrInvalidValue, p.Name(), text, err)
	}

	return s.Set(p.ID(), v)
}

// Settings reads the current snapshot: seven independent atomic loads.
func (s *Store) Settings() eq.Settings {
	return eq.Settings{
		LowCutFreq:   s.params[LowCutFreq].Value(),
		LowCutSlope:  eq.Slope(math.Round(s.params[LowCutSlope].Value())),
		PeakFreq:     s.params[PeakFreq].Value(),
		PeakGainDB:   s.params[PeakGain].Value(),
		PeakQuality:  s.params[PeakQuality].Value(),
		HighCutFreq:  s.params[HighCutFreq].Value(),
		HighCutSlope: eq.Slope(math.Round(s.params[HighCutSlope].Value())),
	}
}

// Apply stores every field of settings. NaN fields are skipped.
func (s *Store) Apply(settings eq.Settings) {
	s.params[LowCutFreq].Set(settings.LowCutFreq)
	s.params[LowCutSlope].Set(float64(settings.LowCutSlope))
	s.params[PeakFreq].Set(settings.PeakFreq)
	s.params[PeakGain].Set(settings.PeakGainDB)
	s.params[PeakQuality].Set(settings.PeakQuality)
	s.params[HighCutFreq].Set(settings.HighCutFreq)
	s.params[HighCutSlope].Set(float64(settings.HighCutSlope))
}

// Reset restores all defaults.
func (s *Store) Reset() {
	for _, p := range s.params {
		p.Reset()
	}
}

// Params returns the parameters in ID order.
func (s *Store) Params() []*Parameter {
	out := make([]*Parameter, NumIDs)
	copy(out, s.params[:])

	return out
}

var _ eq.SettingsSource = (*Store)(nil)
