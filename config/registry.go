package config

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	domainerrors "poncoocr/domain/errors"
)

// Kind is the declared type of an option value.
type Kind int

const (
	// KindInt options hold an int.
	KindInt Kind = iota
	// KindFloat options hold a float64.
	KindFloat
	// KindString options hold a string.
	KindString
	// KindPath options hold a filesystem path as a string.
	KindPath
)

// String returns the kind name used in listings.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindPath:
		return "path"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Option is a named, typed and documented configuration value.
// A nil Default means the option has no default value.
type Option struct {
	Name    string      `json:"name"`
	Kind    Kind        `json:"-"`
	Default interface{} `json:"default"`
	Help    string      `json:"help"`

	// Expect is the filesystem kind of a KindPath option.
	Expect PathExpect `json:"-"`
}

// HasDefault reports whether the option declares a default value.
func (o Option) HasDefault() bool {
	return o.Default != nil
}

// PathExpect tells whether a path option points at a directory or a file.
type PathExpect int

const (
	// ExpectDir is the zero value: path options are directories unless stated otherwise.
	ExpectDir PathExpect = iota
	// ExpectFile marks a path option that names a file.
	ExpectFile
)

// Registry is a write-once table of options. It is populated during start-up
// and only read afterwards, so it is not guarded by a mutex.
type Registry struct {
	options map[string]Option
	order   []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		options: make(map[string]Option),
	}
}

// Register adds opt to the registry.
func (r *Registry) Register(opt Option) error {
	if opt.Name == "" {
		return domainerrors.NewConfigError("", errors.Wrap(domainerrors.ErrInvalidOption, "empty option name"))
	}
	if _, exists := r.options[opt.Name]; exists {
		return domainerrors.NewConfigError(opt.Name, domainerrors.ErrDuplicateOption)
	}
	if err := checkDefault(opt); err != nil {
		return domainerrors.NewConfigError(opt.Name, err)
	}

	r.options[opt.Name] = opt
	r.order = append(r.order, opt.Name)
	return nil
}

func checkDefault(opt Option) error {
	if opt.Default == nil {
		return nil
	}

	var ok bool
	switch opt.Kind {
	case KindInt:
		_, ok = opt.Default.(int)
	case KindFloat:
		_, ok = opt.Default.(float64)
	case KindString, KindPath:
		_, ok = opt.Default.(string)
	default:
		return errors.Wrapf(domainerrors.ErrInvalidOption, "unknown kind %s", opt.Kind)
	}
	if !ok {
		return errors.Wrapf(domainerrors.ErrInvalidOption,
			"default %v (%T) does not match kind %s", opt.Default, opt.Default, opt.Kind)
	}
	return nil
}

// Lookup returns the option registered under name.
func (r *Registry) Lookup(name string) (Option, bool) {
	opt, ok := r.options[name]
	return opt, ok
}

// Options returns the registered options in registration order.
func (r *Registry) Options() []Option {
	out := make([]Option, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.options[name])
	}
	return out
}

// Len returns the number of registered options.
func (r *Registry) Len() int {
	return len(r.order)
}

// Defaults returns the default of every option that has one.
func (r *Registry) Defaults() map[string]interface{} {
	out := make(map[string]interface{}, len(r.order))
	for _, name := range r.order {
		if opt := r.options[name]; opt.HasDefault() {
			out[name] = opt.Default
		}
	}
	return out
}

// BindFlags defines one flag per option on fs. Options without a default get
// the zero value as flag default; callers tell them apart with Flag.Changed.
func (r *Registry) BindFlags(fs *pflag.FlagSet) error {
	for _, opt := range r.Options() {
		if fs.Lookup(opt.Name) != nil {
			return domainerrors.NewConfigError(opt.Name, errors.Wrap(domainerrors.ErrDuplicateOption, "flag already defined"))
		}

		switch opt.Kind {
		case KindInt:
			def, _ := opt.Default.(int)
			fs.Int(opt.Name, def, opt.Help)
		case KindFloat:
			def, _ := opt.Default.(float64)
			fs.Float64(opt.Name, def, opt.Help)
		case KindString, KindPath:
			def, _ := opt.Default.(string)
			fs.String(opt.Name, def, opt.Help)
		}
	}
	return nil
}
