// Package selection tracks an optional cursor over a list whose length
// can change between calls.
package selection

// Model holds the selected index, or none
type Model struct {
	index int
	valid bool
}

// Selected returns the index and whether anything is selected
func (m *Model) Selected() (int, bool) {
	return m.index, m.valid
}

// Next moves down one row without wrapping. With nothing selected it
// selects the first row.
func (m *Model) Next(n int) {
	if n <= 0 {
		m.clear()
		return
	}
	if !m.valid {
		m.set(0)
		return
	}
	m.set(min(m.index+1, n-1))
}

// Prev moves up one row without wrapping. With nothing selected it
// selects the first row.
func (m *Model) Prev(n int) {
	if n <= 0 {
		m.clear()
		return
	}
	if !m.valid {
		m.set(0)
		return
	}
	m.set(min(max(m.index-1, 0), n-1))
}

// First selects row 0
func (m *Model) First(n int) {
	m.Reset(n)
}

// Last selects the final row
func (m *Model) Last(n int) {
	if n <= 0 {
		m.clear()
		return
	}
	m.set(n - 1)
}

// Reset selects row 0, or none for an empty list
func (m *Model) Reset(n int) {
	if n <= 0 {
		m.clear()
		return
	}
	m.set(0)
}

// Select selects row i of a list of length n, clamped into range
func (m *Model) Select(i, n int) {
	if n <= 0 {
		m.clear()
		return
	}
	m.set(min(max(i, 0), n-1))
}

// Clamp pulls the selection back inside a list of length n
func (m *Model) Clamp(n int) {
	if n <= 0 {
		m.clear()
		return
	}
	if m.valid && m.index > n-1 {
		m.set(n - 1)
	}
}

func (m *Model) set(i int) {
	m.index = i
	m.valid = true
}

func (m *Model) clear() {
	m.index = 0
	m.valid = false
}
