package view

import (
	"errors"
	"fmt"
)

// ErrUnknownAction is returned when dispatching an action nobody registered.
var ErrUnknownAction = errors.New("unknown action")

// Handler reacts to an event carrying the element's current value.
type Handler func(value string) error

// Registry maps action ids to handlers.
type Registry struct {
	handlers map[string]Handler
	order    []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register binds action to h, replacing any earlier binding.
func (r *Registry) Register(action string, h Handler) {
	if _, ok := r.handlers[action]; !ok {
		r.order = append(r.order, action)
	}
	r.handlers[action] = h
}

// Dispatch runs the handler bound to action.
func (r *Registry) Dispatch(action, value string) error {
	h, ok := r.handlers[action]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}
	return h(value)
}

// Has reports whether action is bound.
func (r *Registry) Has(action string) bool {
	_, ok := r.handlers[action]
	return ok
}

// Actions returns the registered action ids in registration order.
func (r *Registry) Actions() []string {
	return append([]string(nil), r.order...)
}
