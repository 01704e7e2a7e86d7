package constraints

type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Integer interface{ Signed | Unsigned }

type Float interface{ ~float32 | ~float64 }

// Number is any type whose values can be ordered with the built-in < operator
// and represent a numeric quantity.
type Number interface{ Integer | Float }

// Character is an element of a text sequence, either a byte or a Unicode code point.
type Character interface{ ~byte | ~rune }
