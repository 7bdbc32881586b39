package domain

// Answers maps field names to answer strings, keeping insertion order.
type Answers struct {
	values map[string]string
	keys   []string
}

// NewAnswers returns an empty result set.
func NewAnswers() *Answers {
	return &Answers{values: make(map[string]string)}
}

// Set stores value under name. A new name is appended at the end.
func (a *Answers) Set(name, value string) {
	if _, ok := a.values[name]; !ok {
		a.keys = append(a.keys, name)
	}
	a.values[name] = value
}

// Get returns the value for name and whether it was present.
func (a *Answers) Get(name string) (string, bool) {
	v, ok := a.values[name]
	return v, ok
}

// Value returns the value for name, or "" when absent.
func (a *Answers) Value(name string) string {
	return a.values[name]
}

// Has reports whether name has an answer.
func (a *Answers) Has(name string) bool {
	_, ok := a.values[name]
	return ok
}

// Delete removes name from the set.
func (a *Answers) Delete(name string) {
	if _, ok := a.values[name]; !ok {
		return
	}
	delete(a.values, name)
	for i, k := range a.keys {
		if k == name {
			a.keys = append(a.keys[:i:i], a.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the names in insertion order.
func (a *Answers) Keys() []string {
	keys := make([]string, len(a.keys))
	copy(keys, a.keys)
	return keys
}

// Len returns the number of answers.
func (a *Answers) Len() int {
	return len(a.keys)
}

// Clone returns an independent copy.
func (a *Answers) Clone() *Answers {
	c := &Answers{
		values: make(map[string]string, len(a.values)),
		keys:   a.Keys(),
	}
	for k, v := range a.values {
		c.values[k] = v
	}
	return c
}

// Map returns the answers as a plain map.
func (a *Answers) Map() map[string]string {
	m := make(map[string]string, len(a.values))
	for k, v := range a.values {
		m[k] = v
	}
	return m
}
