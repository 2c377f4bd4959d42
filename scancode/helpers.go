package scancode

import "github.com/Alia5/scankey/keys"

// Press returns the make codes for ks in order. Keys without a scancode are skipped.
func Press(ks ...keys.Key) []byte {
	var out []byte
	for _, k := range ks {
		if b, ok := Encode(k, false); ok {
			out = append(out, b...)
		}
	}
	return out
}

// Release returns the break codes for ks in order.
func Release(ks ...keys.Key) []byte {
	var out []byte
	for _, k := range ks {
		if b, ok := Encode(k, true); ok {
			out = append(out, b...)
		}
	}
	return out
}

// Tap returns a press immediately followed by a release for each key.
//
// Example:
//
//	b := Tap(keys.KeyH, keys.KeyI) // 23 a3 17 97
func Tap(ks ...keys.Key) []byte {
	var out []byte
	for _, k := range ks {
		out = append(out, Press(k)...)
		out = append(out, Release(k)...)
	}
	return out
}

// Chord holds mods while tapping k, then releases mods in reverse order.
//
// Example:
//
//	b := Chord(keys.KeyC, keys.KeyLeftCtrl) // Ctrl+C
func Chord(k keys.Key, mods ...keys.Key) []byte {
	out := Press(mods...)
	out = append(out, Tap(k)...)
	for i := len(mods) - 1; i >= 0; i-- {
		out = append(out, Release(mods[i])...)
	}
	return out
}
