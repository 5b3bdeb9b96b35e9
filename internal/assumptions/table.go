package assumptions

// Table is a named mapping of entity to value (device, network, resolution, action)
// that remembers the order its keys were declared in.
type Table struct {
	keys   []string
	values map[string]float64
}

// NewTable builds a Table holding keys in the given order with their values.
// Keys missing from values are stored as 0.
func NewTable(keys []string, values map[string]float64) Table {
	t := Table{}
	for _, k := range keys {
		t.Set(k, values[k])
	}
	return t
}

// Keys returns the keys in declaration order.
func (t *Table) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.keys) }

// Get returns the value for key and whether it is present.
func (t *Table) Get(key string) (float64, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Value returns the value for key, or 0 when absent.
func (t *Table) Value(key string) float64 {
	return t.values[key]
}

// ValueOr returns the value for key, or fallback when absent.
func (t *Table) ValueOr(key string, fallback float64) float64 {
	if v, ok := t.values[key]; ok {
		return v
	}
	return fallback
}

// Has reports whether key is present.
func (t *Table) Has(key string) bool {
	_, ok := t.values[key]
	return ok
}

// Set stores value under key, appending key to the order if it is new.
func (t *Table) Set(key string, value float64) {
	if t.values == nil {
		t.values = make(map[string]float64)
	}
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
}

// Sum adds every value in declaration order.
func (t *Table) Sum() float64 {
	var total float64
	for _, k := range t.keys {
		total += t.values[k]
	}
	return total
}

// Map returns a copy of the values as a plain map.
func (t *Table) Map() map[string]float64 {
	out := make(map[string]float64, len(t.values))
	for k, v := range t.values {
		out[k] = v
	}
	return out
}

// Clone returns a deep copy.
func (t *Table) Clone() Table {
	return NewTable(t.keys, t.values)
}
