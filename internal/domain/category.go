package domain

// DefaultGrandTotalLabel is the synthetic aggregate key holding the per-date
// and overall sums across all categories.
const DefaultGrandTotalLabel = "Total"

// CategorySet is the fixed set of recognized work categories plus the
// catch-all bucket that absorbs unrecognized tags. Classification against a
// set is total: every entry folds into exactly one bucket.
type CategorySet struct {
	Names    []string // bucket names in display order, catch-all included
	CatchAll string
}

// DefaultCategorySet mirrors the category list used by the original team
// deployment; the set is fully configurable.
func DefaultCategorySet() CategorySet {
	return CategorySet{
		Names:    []string{"테스트", "개발", "회의", "세미나", "기타"},
		CatchAll: "기타",
	}
}

// Contains reports whether name is one of the fixed bucket names.
func (s CategorySet) Contains(name string) bool {
	for _, n := range s.Names {
		if n == name {
			return true
		}
	}
	return false
}

// Fold maps a free-form comment tag onto a bucket of the set. Tags outside
// the fixed set fold into the catch-all.
func (s CategorySet) Fold(tag string) string {
	if s.Contains(tag) {
		return tag
	}
	return s.CatchAll
}

// All returns the bucket names in display order, guaranteeing the catch-all
// is present even if the configured list omitted it.
func (s CategorySet) All() []string {
	if s.Contains(s.CatchAll) {
		return s.Names
	}
	return append(append([]string(nil), s.Names...), s.CatchAll)
}
