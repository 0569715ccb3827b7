package display

import "reflect"

// Unregister removes the *Table registered for E so tests can register it again.
func Unregister[E Enum]() { defaultRegistry.remove(reflect.TypeFor[E]()) }
