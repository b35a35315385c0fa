/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package undo

import "sync"

// Action is a reversible edit. Revert applies the edit's opposite and returns
// the action that would reapply the original, so an undone action becomes the
// redo entry and a redone action becomes the undo entry again.
type Action interface {
	// Name is the user-facing label, e.g. "Move Shape".
	Name() string
	Revert() Action
}

// Config controls stack depth.
type Config struct {
	// MaxDepth limits the number of undo entries kept (0 means unlimited).
	// The oldest entries are dropped first.
	MaxDepth int
}

// Manager provides an in-memory undo/redo stack of actions.
// It is safe for concurrent use. Actions are reverted outside the lock, so a
// Revert may inspect the manager but must not Register.
type Manager struct {
	cfg  Config
	mu   sync.Mutex
	undo []Action
	redo []Action
}

func NewManager(cfg Config) *Manager {
	if cfg.MaxDepth < 0 {
		cfg.MaxDepth = 0
	}
	return &Manager{cfg: cfg}
}

// Register records a new action. Any new change invalidates the redo stack.
func (m *Manager) Register(a Action) {
	if a == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.undo = append(m.undo, a)
	m.redo = nil
	m.enforceCapsLocked()
}

// Undo reverts the most recent action and moves its inverse onto the redo stack.
// It returns the name of the undone action.
func (m *Manager) Undo() (string, bool) {
	a, ok := pop(&m.mu, &m.undo)
	if !ok {
		return "", false
	}
	inv := a.Revert()
	m.mu.Lock()
	if inv != nil {
		m.redo = append(m.redo, inv)
	}
	m.mu.Unlock()
	return a.Name(), true
}

// Redo reapplies the most recently undone action and moves its inverse back onto the undo stack.
func (m *Manager) Redo() (string, bool) {
	a, ok := pop(&m.mu, &m.redo)
	if !ok {
		return "", false
	}
	inv := a.Revert()
	m.mu.Lock()
	if inv != nil {
		m.undo = append(m.undo, inv)
		m.enforceCapsLocked()
	}
	m.mu.Unlock()
	return a.Name(), true
}

func pop(mu *sync.Mutex, stack *[]Action) (Action, bool) {
	mu.Lock()
	defer mu.Unlock()
	s := *stack
	if len(s) == 0 {
		return nil, false
	}
	a := s[len(s)-1]
	s[len(s)-1] = nil
	*stack = s[:len(s)-1]
	return a, true
}

func (m *Manager) CanUndo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.undo) > 0
}

func (m *Manager) CanRedo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.redo) > 0
}

// UndoName returns the label of the action Undo would revert, or "".
func (m *Manager) UndoName() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n := len(m.undo); n > 0 {
		return m.undo[n-1].Name()
	}
	return ""
}

// RedoName returns the label of the action Redo would reapply, or "".
func (m *Manager) RedoName() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if n := len(m.redo); n > 0 {
		return m.redo[n-1].Name()
	}
	return ""
}

// Clear drops both stacks to free memory.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.undo = nil
	m.redo = nil
}

// Stats returns current stack depths for diagnostics.
func (m *Manager) Stats() (undoDepth int, redoDepth int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.undo), len(m.redo)
}

func (m *Manager) enforceCapsLocked() {
	if m.cfg.MaxDepth > 0 && len(m.undo) > m.cfg.MaxDepth {
		// drop the oldest extras
		toDrop := len(m.undo) - m.cfg.MaxDepth
		m.undo = append([]Action{}, m.undo[toDrop:]...)
	}
}
