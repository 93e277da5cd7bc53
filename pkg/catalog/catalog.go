package catalog

// Candidate returns the candidate with the given id.
func (c *Catalog) Candidate(id string) (candidate Candidate, ok bool) {
	for _, cand := range c.Candidates {
		if cand.ID == id {
			candidate = cand
			ok = true
			return candidate, ok
		}
	}
	return candidate, ok
}

// IDs lists candidate ids in catalog order.
func (c *Catalog) IDs() (ids []string) {
	ids = make([]string, 0, len(c.Candidates))
	for _, cand := range c.Candidates {
		ids = append(ids, cand.ID)
	}
	return ids
}

// Weight returns the weight for an answer option. Absent options weigh 0.
func (c Candidate) Weight(optionID string) (weight int) {
	weight = c.Weights[optionID]
	return weight
}

// HasTag reports whether the variant carries tag.
func (v Variant) HasTag(tag string) (found bool) {
	for _, t := range v.Tags {
		if t == tag {
			found = true
			return found
		}
	}
	return found
}

// HasAnyTag reports whether the variant carries at least one of tags.
func (v Variant) HasAnyTag(tags []string) (found bool) {
	for _, tag := range tags {
		if v.HasTag(tag) {
			found = true
			return found
		}
	}
	return found
}
