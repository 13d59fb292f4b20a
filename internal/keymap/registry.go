// Package keymap maps key presses to named commands per UI context,
// with user overrides layered on top of the defaults.
package keymap

// Binding associates a key with a command in a context. Context ""
// is not valid; "global" bindings apply when the active context has
// no binding for the key.
type Binding struct {
	Key     string
	Command string
	Context string
}

// Registry resolves keys to commands. Later registrations win, which
// is how overrides work: defaults register first.
type Registry struct {
	// context -> key -> command
	bindings map[string]map[string]string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{bindings: make(map[string]map[string]string)}
}

// RegisterBinding adds or replaces a binding.
func (r *Registry) RegisterBinding(b Binding) {
	if b.Context == "" || b.Key == "" || b.Command == "" {
		return
	}
	ctx, ok := r.bindings[b.Context]
	if !ok {
		ctx = make(map[string]string)
		r.bindings[b.Context] = ctx
	}
	ctx[b.Key] = b.Command
}

// Resolve returns the command bound to key in context, falling back to
// the global context. The second return reports whether a binding was
// found.
func (r *Registry) Resolve(context, key string) (string, bool) {
	if cmd, ok := r.bindings[context][key]; ok {
		return cmd, true
	}
	if context != "global" {
		if cmd, ok := r.bindings["global"][key]; ok {
			return cmd, true
		}
	}
	return "", false
}

// Bindings returns all bindings for a context in no particular order.
// Used by the footer to show available keys.
func (r *Registry) Bindings(context string) []Binding {
	var out []Binding
	for key, cmd := range r.bindings[context] {
		out = append(out, Binding{Key: key, Command: cmd, Context: context})
	}
	return out
}

// ApplyOverrides rebinds commands to user-chosen keys. Override keys
// are either "context.command" or a bare command name, which rebinds
// the command in every context that has it.
func (r *Registry) ApplyOverrides(overrides map[string]string) {
	for target, key := range overrides {
		if key == "" {
			continue
		}
		context, command := splitTarget(target)
		if context != "" {
			r.rebind(context, command, key)
			continue
		}
		for ctx := range r.bindings {
			r.rebind(ctx, command, key)
		}
	}
}

func splitTarget(target string) (context, command string) {
	for i := 0; i < len(target); i++ {
		if target[i] == '.' {
			return target[:i], target[i+1:]
		}
	}
	return "", target
}

func (r *Registry) rebind(context, command, key string) {
	ctx, ok := r.bindings[context]
	if !ok {
		return
	}
	for k, cmd := range ctx {
		if cmd == command {
			delete(ctx, k)
		}
	}
	ctx[key] = command
}
