// Package tags maps tagged literal names to the functions interpreting them.
//
// A Registry is populated once, then frozen. A frozen registry is never
// modified again and can be shared by any number of goroutines without
// locking. The registry returned by Default is frozen at initialization.
package tags

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/chaisql/edn/types"
)

var (
	// ErrRegistryFrozen is returned when registering a tag on a frozen registry.
	ErrRegistryFrozen = errors.New("tag registry is frozen")

	// ErrTagAlreadyRegistered is returned when registering a tag twice.
	ErrTagAlreadyRegistered = errors.New("tag already registered")
)

// A Func transforms the value following a tag into the value the
// tagged literal stands for.
type Func func(v types.Value) (types.Value, error)

// Identity returns v unchanged. Unknown tags resolve to it.
func Identity(v types.Value) (types.Value, error) {
	return v, nil
}

// Registry associates tag names with decode functions.
// Register must not be called concurrently with any other method.
type Registry struct {
	fns    map[string]Func
	frozen bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		fns: make(map[string]Func),
	}
}

// Register associates fn with the tag name, written without the '#'.
func (r *Registry) Register(name string, fn Func) error {
	if r.frozen {
		return errors.Wrapf(ErrRegistryFrozen, "cannot register #%s", name)
	}
	if name == "" || fn == nil {
		return errors.New("tag name and function must be provided")
	}
	if _, ok := r.fns[name]; ok {
		return errors.Wrapf(ErrTagAlreadyRegistered, "#%s", name)
	}

	r.fns[name] = fn
	return nil
}

// Freeze prevents any further registration.
func (r *Registry) Freeze() {
	r.frozen = true
}

// Frozen reports whether the registry is frozen.
func (r *Registry) Frozen() bool {
	return r.frozen
}

// Resolve returns the function registered for the tag name.
// If there is none, it returns Identity and false: unknown tags
// are never an error, their value is passed through.
func (r *Registry) Resolve(name string) (Func, bool) {
	fn, ok := r.fns[name]
	if !ok {
		return Identity, false
	}
	return fn, true
}

// Names returns the registered tag names, sorted.
func (r *Registry) Names() []string {
	names := maps.Keys(r.fns)
	slices.Sort(names)
	return names
}

// Extend returns a new frozen registry holding the tags of base plus fns.
// base is left untouched.
func Extend(base *Registry, fns map[string]Func) (*Registry, error) {
	r := NewRegistry()
	if base != nil {
		maps.Copy(r.fns, base.fns)
	}

	for _, name := range sortedNames(fns) {
		if err := r.Register(name, fns[name]); err != nil {
			return nil, err
		}
	}

	r.Freeze()
	return r, nil
}

func sortedNames(fns map[string]Func) []string {
	names := maps.Keys(fns)
	slices.Sort(names)
	return names
}

var defaultRegistry *Registry

func init() {
	r := NewRegistry()
	for _, name := range sortedNames(builtins) {
		if err := r.Register(name, builtins[name]); err != nil {
			panic(err)
		}
	}
	r.Freeze()

	defaultRegistry = r
}

// Default returns the frozen registry holding the built-in tags:
// #inst, #uuid and #db/id.
func Default() *Registry {
	return defaultRegistry
}
