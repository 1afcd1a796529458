// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/dispatcher.go
// Summary: Implements event dispatch between items, panes and the workspace.
// Usage: Items emit through their own dispatcher; panes and the workspace
// subscribe and unsubscribe as membership changes.

package texel

import "sync"

// EventType defines the type of an event.
type EventType int

const (
	// Item events
	EventItemUpdated EventType = iota
	EventItemCloseRequested
	// Pane events
	EventPaneActivate
	EventPaneFocused
	EventActiveItemChanged
	EventItemAdded
	EventItemRemoved
	EventPaneEmpty
	// Application events
	EventSettingsChanged
	EventWindowRemoved
)

func (t EventType) String() string {
	switch t {
	case EventItemUpdated:
		return "ItemUpdated"
	case EventItemCloseRequested:
		return "ItemCloseRequested"
	case EventPaneActivate:
		return "PaneActivate"
	case EventPaneFocused:
		return "PaneFocused"
	case EventActiveItemChanged:
		return "ActiveItemChanged"
	case EventItemAdded:
		return "ItemAdded"
	case EventItemRemoved:
		return "ItemRemoved"
	case EventPaneEmpty:
		return "PaneEmpty"
	case EventSettingsChanged:
		return "SettingsChanged"
	case EventWindowRemoved:
		return "WindowRemoved"
	}
	return "Unknown"
}

// Event represents a message passed through the system.
// It has a type and can carry an arbitrary data payload.
type Event struct {
	Type    EventType
	Payload interface{}
}

// Listener is an interface that any component can implement to receive events.
type Listener interface {
	// OnEvent is the callback method for receiving events.
	OnEvent(event Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Subscription cancels a registration made with EventDispatcher.Subscribe.
type Subscription struct {
	d  *EventDispatcher
	id uint64
}

// Unsubscribe removes the listener. Calling it twice is harmless.
func (s Subscription) Unsubscribe() {
	if s.d == nil {
		return
	}
	s.d.remove(s.id)
}

type registration struct {
	id       uint64
	listener Listener
}

// EventDispatcher manages a list of listeners and broadcasts events to them.
type EventDispatcher struct {
	mu        sync.RWMutex
	nextID    uint64
	listeners []registration
}

// NewEventDispatcher creates a new dispatcher.
func NewEventDispatcher() *EventDispatcher {
	return &EventDispatcher{
		listeners: make([]registration, 0),
	}
}

// Subscribe adds a new listener to receive events.
func (d *EventDispatcher) Subscribe(listener Listener) Subscription {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	d.listeners = append(d.listeners, registration{id: d.nextID, listener: listener})
	return Subscription{d: d, id: d.nextID}
}

func (d *EventDispatcher) remove(id uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, r := range d.listeners {
		if r.id == id {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			break
		}
	}
}

// Len returns the number of registered listeners.
func (d *EventDispatcher) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.listeners)
}

// Broadcast sends an event to all subscribed listeners. Listeners may
// subscribe or unsubscribe while being notified; the change applies to the
// next broadcast.
func (d *EventDispatcher) Broadcast(event Event) {
	d.mu.RLock()
	snapshot := make([]registration, len(d.listeners))
	copy(snapshot, d.listeners)
	d.mu.RUnlock()
	for _, r := range snapshot {
		r.listener.OnEvent(event)
	}
}
