// Package bitfield packs and unpacks struct fields into integers using
// `bitfield` struct tags. Fields are laid out from bit 0 upward in
// declaration order, which makes a tagged struct a readable description of
// a hardware word.
package bitfield

import (
	"fmt"
	"reflect"
)

// Config determines settings for packing.
type Config struct {
	// NumBits fixes the maximum allowed bits for the integer representation.
	NumBits uint
}

type field struct {
	index  int
	name   string
	offset uint
	bits   uint
}

// layout returns the tagged fields of t with their bit offsets.
func layout(t reflect.Type) ([]field, uint, error) {
	var fields []field
	var offset uint

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("bitfield")
		if tag == "" {
			continue
		}

		var bits uint
		if _, err := fmt.Sscanf(tag, ",%d", &bits); err != nil {
			return nil, 0, fmt.Errorf("invalid bitfield tag %q on field %s", tag, f.Name)
		}
		if bits == 0 {
			continue
		}
		if bits > 64 {
			return nil, 0, fmt.Errorf("field %s is wider than 64 bits", f.Name)
		}

		fields = append(fields, field{index: i, name: f.Name, offset: offset, bits: bits})
		offset += bits
	}
	return fields, offset, nil
}

func structValue(x interface{}, op string) (reflect.Value, error) {
	v := reflect.ValueOf(x)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%s: expected struct, got %v", op, v.Kind())
	}
	return v, nil
}

func mask(bits uint) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << bits) - 1
}

// Pack packs annotated bit ranges of struct x into an integer.
// Only fields that have a "bitfield" tag are packed.
func Pack(x interface{}, c *Config) (packed uint64, err error) {
	if c == nil {
		c = &Config{NumBits: 64}
	}

	v, err := structValue(x, "Pack")
	if err != nil {
		return 0, err
	}

	fields, total, err := layout(v.Type())
	if err != nil {
		return 0, fmt.Errorf("Pack: %w", err)
	}
	if c.NumBits > 0 && total > c.NumBits {
		return 0, fmt.Errorf("Pack: total bits %d exceeds NumBits %d", total, c.NumBits)
	}

	for _, f := range fields {
		fv := v.Field(f.index)
		var bits uint64

		switch fv.Kind() {
		case reflect.Bool:
			if fv.Bool() {
				bits = 1
			}
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			bits = fv.Uint()
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			val := fv.Int()
			if val < 0 {
				return 0, fmt.Errorf("Pack: negative value %d for field %s", val, f.name)
			}
			bits = uint64(val)
		default:
			return 0, fmt.Errorf("Pack: unsupported field type %v for field %s", fv.Kind(), f.name)
		}

		if bits > mask(f.bits) {
			return 0, fmt.Errorf("Pack: value %d exceeds %d bits for field %s", bits, f.bits, f.name)
		}
		packed |= bits << f.offset
	}

	return packed, nil
}

// Unpack is the inverse of Pack: it fills the tagged fields of the struct
// pointed to by x from packed.
func Unpack(packed uint64, x interface{}) error {
	rv := reflect.ValueOf(x)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("Unpack: expected non-nil pointer, got %v", rv.Kind())
	}
	v, err := structValue(x, "Unpack")
	if err != nil {
		return err
	}

	fields, _, err := layout(v.Type())
	if err != nil {
		return fmt.Errorf("Unpack: %w", err)
	}

	for _, f := range fields {
		bits := (packed >> f.offset) & mask(f.bits)
		fv := v.Field(f.index)

		switch fv.Kind() {
		case reflect.Bool:
			fv.SetBool(bits != 0)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			fv.SetUint(bits)
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			fv.SetInt(int64(bits))
		default:
			return fmt.Errorf("Unpack: unsupported field type %v for field %s", fv.Kind(), f.name)
		}
	}
	return nil
}
