package sorting

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// ValueFunc returns the value of column for one item
type ValueFunc[T any] func(item T, column string) (any, bool)

// Sort orders items in place by descs. Items equal on every key keep
// their relative order.
func Sort[T any](items []T, descs *Descriptions, value ValueFunc[T]) {
	if descs == nil || descs.Len() == 0 {
		return
	}
	keys := descs.All()
	sort.SliceStable(items, func(i, j int) bool {
		return compareItems(items[i], items[j], keys, value) < 0
	})
}

func compareItems[T any](a, b T, keys []Description, value ValueFunc[T]) int {
	for _, k := range keys {
		va, okA := value(a, k.Column)
		vb, okB := value(b, k.Column)
		if c := CompareValues(va, okA, vb, okB) * int(k.Direction); c != 0 {
			return c
		}
	}
	return 0
}

// CompareValues compares two cell values in ascending order.
// Missing values sort before present ones. Values of different kinds
// order by kind: numbers, bools, times, then everything else as text.
func CompareValues(a any, okA bool, b any, okB bool) int {
	okA = okA && a != nil
	okB = okB && b != nil
	switch {
	case !okA && !okB:
		return 0
	case !okA:
		return -1
	case !okB:
		return 1
	}

	ka, kb := kindOf(a), kindOf(b)
	if ka != kb {
		return compareOrdered(float64(ka), float64(kb))
	}

	switch ka {
	case kindNumber:
		fa, _ := toFloat(a)
		fb, _ := toFloat(b)
		return compareOrdered(fa, fb)
	case kindBool:
		return compareBool(a.(bool), b.(bool))
	case kindTime:
		return a.(time.Time).Compare(b.(time.Time))
	default:
		return strings.Compare(strings.ToLower(fmt.Sprint(a)), strings.ToLower(fmt.Sprint(b)))
	}
}

type valueKind int

const (
	kindNumber valueKind = iota
	kindBool
	kindTime
	kindText
)

func kindOf(v any) valueKind {
	if _, ok := toFloat(v); ok {
		return kindNumber
	}
	switch v.(type) {
	case bool:
		return kindBool
	case time.Time:
		return kindTime
	default:
		return kindText
	}
}

func compareOrdered(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
