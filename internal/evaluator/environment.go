package evaluator

import "sync"

func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Object)}
}

// Environment is the mutable variable binding table of one program run.
// Expression evaluation only reads it; assignment and input statements write.
type Environment struct {
	mu    sync.RWMutex
	store map[string]Object
}

func (e *Environment) Get(name string) (Object, bool) {
	e.mu.RLock()
	obj, ok := e.store[name]
	e.mu.RUnlock()
	return obj, ok
}

func (e *Environment) Set(name string, val Object) Object {
	e.mu.Lock()
	e.store[name] = val
	e.mu.Unlock()
	return val
}

func (e *Environment) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.store)
}

// GetStore returns a copy of the bindings.
func (e *Environment) GetStore() map[string]Object {
	e.mu.RLock()
	defer e.mu.RUnlock()
	copied := make(map[string]Object, len(e.store))
	for k, v := range e.store {
		copied[k] = v
	}
	return copied
}
