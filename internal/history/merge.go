package history

import "sort"

// Merge produces the combined chronological view over both logs, newest
// first. Email entries written before the type discriminator existed get
// tagged here on the way out. Entries with equal timestamps keep their
// encounter order (emails before companies) via the stable sort.
func Merge(emails []*EmailEntry, companies []*CompanyEntry) []Record {
	out := make([]Record, 0, len(emails)+len(companies))
	for _, e := range emails {
		if e.Type == "" {
			e.Type = KindEmail
		}
		out = append(out, e)
	}
	for _, c := range companies {
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedTime().After(out[j].CreatedTime())
	})
	return out
}
