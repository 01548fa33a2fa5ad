package chp

// g returns the exponent to which i is raised when the single-qubit Paulis
// (x1,z1) and (x2,z2) are multiplied.
func g(x1, z1, x2, z2 uint8) int {
	switch {
	case x1 == 0 && z1 == 0:
		return 0
	case x1 == 1 && z1 == 1:
		return int(z2) - int(x2)
	case x1 == 1: // z1 == 0
		return int(z2) * (2*int(x2) - 1)
	default: // x1 == 0, z1 == 1
		return int(x2) * (1 - 2*int(z2))
	}
}

// rowsum replaces generator h with the product src·h, tracking the phase.
//
// The checker 2r_h + 2r_src + Σ_j g(src_j, h_j) is reduced mod 4 (Euclidean);
// 0 yields r_h = 0, 2 yields r_h = 1. Any odd value means the two rows anticommute
// and the tableau is corrupt.
// Complexity: O(n).
func rowsum(h, src []uint8, n int) error {
	sum := 2*int(h[2*n]) + 2*int(src[2*n])
	for j := 0; j < n; j++ {
		sum += g(src[j], src[n+j], h[j], h[n+j])
	}
	switch ((sum % 4) + 4) % 4 {
	case 0:
		h[2*n] = 0
	case 2:
		h[2*n] = 1
	default:
		return ErrPhaseInvariant
	}
	for j := 0; j < 2*n; j++ {
		h[j] ^= src[j]
	}

	return nil
}
