package config

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// StringList is a repeatable string flag.
type StringList []string

func (s *StringList) String() string { return strings.Join(*s, "; ") }

func (s *StringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// ParseView reads "xmin,xmax,ymin,ymax" into a View.
func ParseView(s string) (View, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return View{}, fmt.Errorf("%w: view %q needs xmin,xmax,ymin,ymax", ErrInvalid, s)
	}

	vs := make([]float64, 4)
	for i, p := range parts {
		f, err := cast.ToFloat64E(strings.TrimSpace(p))
		if err != nil {
			return View{}, fmt.Errorf("%w: view %q: %v", ErrInvalid, s, err)
		}
		vs[i] = f
	}

	return View{XMin: vs[0], XMax: vs[1], YMin: vs[2], YMax: vs[3]}, nil
}

// ApplyOverrides replaces the configured functions with exprs (when any) and the view with view
// (when set), then validates.
func (cfg *Config) ApplyOverrides(exprs []string, view string) error {
	if len(exprs) > 0 {
		cfg.Functions = cfg.Functions[:0]
		for _, e := range exprs {
			cfg.Functions = append(cfg.Functions, Function{Expr: e})
		}
	}

	if view != "" {
		v, err := ParseView(view)
		if err != nil {
			return err
		}
		cfg.View = v
	}

	return cfg.Validate()
}
