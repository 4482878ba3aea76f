package keymap

import "sort"

// Change describes a binding present on only one side of a diff.
type Change struct {
	// Keymap is the keymap name.
	Keymap string

	// Binding is the added or removed binding.
	Binding Binding

	// Added is true when the binding exists only in the second table.
	Added bool
}

// String formats the change like a unified diff line.
func (c Change) String() string {
	sign := "-"
	if c.Added {
		sign = "+"
	}
	return sign + " [" + c.Keymap + "] " + c.Binding.String()
}

// Diff compares two tables binding by binding. Bindings are compared as
// multisets per keymap name, so a binding that moved within a keymap is
// not reported. Keymaps missing on one side report all their bindings.
// Changes are ordered by keymap name, then removals before additions in
// declaration order.
func Diff(a, b *Table) []Change {
	names := make(map[string]bool)
	for _, km := range a.Keymaps() {
		names[km.Name] = true
	}
	for _, km := range b.Keymaps() {
		names[km.Name] = true
	}
	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	var changes []Change
	for _, name := range sorted {
		var left, right []Binding
		if km := a.Get(name); km != nil {
			left = km.Bindings
		}
		if km := b.Get(name); km != nil {
			right = km.Bindings
		}
		for _, bd := range subtract(left, right) {
			changes = append(changes, Change{Keymap: name, Binding: bd})
		}
		for _, bd := range subtract(right, left) {
			changes = append(changes, Change{Keymap: name, Binding: bd, Added: true})
		}
	}
	return changes
}

// subtract returns bindings of x not matched one-for-one in y.
func subtract(x, y []Binding) []Binding {
	used := make([]bool, len(y))
	var out []Binding
outer:
	for _, bx := range x {
		for j, by := range y {
			if !used[j] && bx.Equal(by) {
				used[j] = true
				continue outer
			}
		}
		out = append(out, bx)
	}
	return out
}
