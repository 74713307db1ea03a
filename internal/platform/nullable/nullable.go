// Package nullable distingue, en un PATCH, "campo no enviado" de "campo en null".
package nullable

import "encoding/json"

// Value: Set=false => no tocar; Set=true y V=nil => limpiar; Set=true y V!=nil => asignar.
type Value[T any] struct {
	Set bool
	V   *T
}

func Of[T any](v T) Value[T] {
	return Value[T]{Set: true, V: &v}
}

func Null[T any]() Value[T] {
	return Value[T]{Set: true}
}

// UnmarshalJSON solo se invoca si la clave está presente (incluido null).
func (n *Value[T]) UnmarshalJSON(b []byte) error {
	n.Set = true
	if string(b) == "null" {
		n.V = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	n.V = &v
	return nil
}

// Apply devuelve el valor resultante de aplicar el patch sobre current.
func (n Value[T]) Apply(current *T) *T {
	if !n.Set {
		return current
	}
	return n.V
}
