package engine

// IsValidTokenTake reports whether requested is a legal token withdrawal from
// available. Exactly two shapes are legal under the official rules:
//
//   - three distinct basic colors, one token each, with at least one of each
//     available;
//   - two tokens of a single color, with at least four of that color
//     available.
//
// Gold may never be requested directly. requested is a partial bank (absent
// keys are zero); available must be canonical, with all six colors present
// and non-negative. The function is pure and is the single source of truth
// for take legality.
func IsValidTokenTake(requested, available TokenBank) bool {
	if requested == nil || available == nil {
		return false
	}
	for g, n := range requested {
		if !g.Valid() || n < 0 {
			return false
		}
	}
	for g := range available {
		if !g.Valid() {
			return false
		}
	}
	for _, g := range Gems {
		n, ok := available[g]
		if !ok || n < 0 {
			return false
		}
	}
	if requested[Gold] > 0 {
		return false
	}

	var selected []Gem
	total := 0
	for _, g := range BasicGems {
		if n := requested[g]; n > 0 {
			selected = append(selected, g)
			total += n
		}
	}
	if len(selected) == 0 || total > 3 {
		return false
	}

	switch len(selected) {
	case 3:
		// Three distinct colors, one each.
		for _, g := range selected {
			if requested[g] != 1 || available[g] < 1 {
				return false
			}
		}
		return true
	case 1:
		// Two of one color, only while the bank still holds four or more.
		return requested[selected[0]] == 2 && available[selected[0]] >= 4
	}
	return false
}
