package curve

import (
	"errors"
	"image/color"
	"sort"

	"github.com/Q1rD/function-plotter/expr"
	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
)

// Store maps original expression text to installed curves. It is not safe for concurrent use.
type Store struct {
	logger   l.Wrapper
	curves   map[string]*Curve
	onChange func()
}

func NewStore(logger l.Wrapper) *Store {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	return &Store{
		logger: logger.WithFields(l.StringField(l.ClsKey, "curveStore")),
		curves: make(map[string]*Curve),
	}
}

// OnChange registers fn to run after every mutation that changed the store.
func (s *Store) OnChange(fn func()) {
	s.onChange = fn
}

// Add normalizes, compiles and probes text, then installs it under text (replacing any curve
// already there). On failure nothing changes; the diagnostic is logged and returned.
func (s *Store) Add(text string, c color.RGBA) error {
	normalized := expr.Normalize(text)

	compiled, err := expr.Compile(normalized)
	if err == nil {
		err = compiled.Probe()
	}

	if err != nil {
		s.logRejected(text, normalized, err)

		return err
	}

	s.curves[text] = &Curve{
		ID:       snowflake.ID(),
		Key:      text,
		Color:    c,
		Compiled: compiled,
	}

	s.logger.WithFields(l.StringField("expression", text), l.StringField("normalized", normalized)).
		Debug("curve installed")
	s.changed()

	return nil
}

// Update removes oldText and then adds newText. When newText is invalid the old curve stays removed.
func (s *Store) Update(oldText, newText string, c color.RGBA) error {
	s.Remove(oldText)

	return s.Add(newText, c)
}

func (s *Store) Remove(text string) {
	if _, ok := s.curves[text]; !ok {
		return
	}

	delete(s.curves, text)
	s.changed()
}

func (s *Store) Get(text string) (*Curve, error) {
	c, ok := s.curves[text]
	if !ok {
		return nil, commerr.ErrNotFound
	}

	return c, nil
}

func (s *Store) Len() int {
	return len(s.curves)
}

// Keys returns the installed keys in ascending order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.curves))
	for k := range s.curves {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// Curves returns the installed curves in key order.
func (s *Store) Curves() []*Curve {
	keys := s.Keys()

	out := make([]*Curve, 0, len(keys))
	for _, k := range keys {
		out = append(out, s.curves[k])
	}

	return out
}

func (s *Store) changed() {
	if s.onChange != nil {
		s.onChange()
	}
}

func (s *Store) logRejected(text, normalized string, err error) {
	logger := s.logger.WithFields(l.ErrorField(err), l.StringField("expression", text),
		l.StringField("normalized", normalized))

	var pe *expr.ParseError
	if errors.As(err, &pe) {
		logger = logger.WithFields(l.IntField("position", pe.Position), l.StringField("token", pe.Token))
	}

	logger.Warn("expression rejected")
}
