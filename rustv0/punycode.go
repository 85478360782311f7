package rustv0

import "strings"

// punycode.go decodes the RFC 3492 bootstring algorithm over ASCII
// input, used by the `u`-flagged identifier production (spec.md §4.4,
// §9) to recover the original Unicode name. See SPEC_FULL.md §6 for why
// this is hand-rolled rather than imported: the Go ecosystem's
// punycode-capable package, golang.org/x/net/idna, only decodes
// `xn--`-prefixed DNS labels through a validating Profile and does not
// expose a bare bootstring decode of an arbitrary payload.

const (
	punyBase        = 36
	punyTMin        = 1
	punyTMax        = 26
	punySkew        = 38
	punyDamp        = 700
	punyInitialBias = 72
	punyInitialN    = 128
)

// decodePunycode decodes a bootstring-encoded ASCII string (with no
// "xn--" prefix) into the Unicode string it represents.
func decodePunycode(input string) (string, bool) {
	n := punyInitialN
	i := 0
	bias := punyInitialBias

	var output []rune

	// Split off the basic code points preceding the last delimiter.
	basic := strings.LastIndexByte(input, '-')
	rest := input
	if basic >= 0 {
		for _, r := range input[:basic] {
			if r >= 0x80 {
				return "", false
			}
			output = append(output, r)
		}
		rest = input[basic+1:]
	}

	pos := 0
	for pos < len(rest) {
		oldi := i
		w := 1
		for k := punyBase; ; k += punyBase {
			if pos >= len(rest) {
				return "", false
			}
			digit, ok := punyDecodeDigit(rest[pos])
			if !ok {
				return "", false
			}
			pos++

			addend, overflow := checkedMulAddInt(digit, w)
			if overflow {
				return "", false
			}
			i += addend

			t := punyThreshold(k, bias)
			if digit < t {
				break
			}
			w *= punyBase - t
		}

		outLen := len(output) + 1
		bias = punyAdapt(i-oldi, outLen, oldi == 0)
		n += i / outLen
		i %= outLen
		if n > 0x10FFFF || (n >= 0xD800 && n <= 0xDFFF) {
			return "", false
		}

		output = append(output, 0)
		copy(output[i+1:], output[i:])
		output[i] = rune(n)
		i++
	}

	return string(output), true
}

// checkedMulAddInt computes w*digit and reports whether it overflows a
// plausible bound for identifier lengths; punycode's own spec defines
// overflow against a 32-bit counter, which int handles natively on any
// platform Go targets for input of this size.
func checkedMulAddInt(digit, w int) (int, bool) {
	const maxInt = int(^uint(0) >> 1)
	if w != 0 && digit > maxInt/w {
		return 0, true
	}
	return digit * w, false
}

func punyDecodeDigit(b byte) (int, bool) {
	switch {
	case b >= 'a' && b <= 'z':
		return int(b - 'a'), true
	case b >= 'A' && b <= 'Z':
		return int(b - 'A'), true
	case b >= '0' && b <= '9':
		return int(b-'0') + 26, true
	default:
		return 0, false
	}
}

func punyThreshold(k, bias int) int {
	switch {
	case k <= bias+punyTMin:
		return punyTMin
	case k >= bias+punyTMax:
		return punyTMax
	default:
		return k - bias
	}
}

func punyAdapt(delta, numPoints int, firstTime bool) int {
	if firstTime {
		delta /= punyDamp
	} else {
		delta /= 2
	}
	delta += delta / numPoints

	k := 0
	for delta > ((punyBase-punyTMin)*punyTMax)/2 {
		delta /= punyBase - punyTMin
		k += punyBase
	}
	return k + (punyBase-punyTMin+1)*delta/(delta+punySkew)
}
