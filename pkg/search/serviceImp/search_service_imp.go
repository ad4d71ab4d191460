package serviceImp

import (
	"strings"

	"agridev/entities"
	"agridev/pkg/errs"
	"agridev/pkg/search/repository"
	"agridev/pkg/search/service"
)

type searchSvc struct{ r repository.SearchRepository }

func New(r repository.SearchRepository) service.SearchService { return &searchSvc{r} }

type landPredicate func(entities.Land) bool

// SearchFarmers applies the free-text query at the farmer level, then the
// conjunction of active land predicates against each candidate's land list.
// All land predicates must hold on the SAME land row, which is why they are
// composed and applied once per land rather than pushed independently into
// the store query. Pagination runs after filtering.
func (s *searchSvc) SearchFarmers(c service.Criteria) (*service.Result, error) {
	if c.Page < 1 {
		c.Page = 1
	}
	if c.Limit < 1 {
		c.Limit = 10
	}

	farmers, err := s.r.AllFarmers()
	if err != nil {
		return nil, errs.Internal("Server error", err)
	}

	query := strings.ToLower(strings.TrimSpace(c.Query))
	preds := buildLandPredicates(c)

	matched := make([]entities.Farmer, 0)
	for _, f := range farmers {
		if query != "" && !matchesQuery(f, query) {
			continue
		}
		if len(preds) > 0 {
			lands := matchingLands(f.Lands, preds)
			if len(lands) == 0 {
				continue
			}
			f.Lands = lands
		}
		matched = append(matched, f)
	}

	total := len(matched)
	if total == 0 {
		return nil, errs.NotFound("No matching results found")
	}

	totalPages := (total + c.Limit - 1) / c.Limit
	skip := (c.Page - 1) * c.Limit
	if skip > total {
		skip = total
	}
	end := skip + c.Limit
	if end > total {
		end = total
	}

	return &service.Result{
		Farmers:      matched[skip:end],
		TotalFarmers: total,
		CurrentPage:  c.Page,
		TotalPages:   totalPages,
	}, nil
}

// matchesQuery ORs the free-text term across farmer number, name, exact
// phone membership, gender (substring of the gender value) and every
// location field.
func matchesQuery(f entities.Farmer, q string) bool {
	if strings.Contains(strings.ToLower(f.FarmerNumber), q) {
		return true
	}
	if strings.Contains(strings.ToLower(f.Names), q) {
		return true
	}
	for _, p := range f.Phones {
		if p == q {
			return true
		}
	}
	if strings.Contains(strings.ToLower(f.Gender), q) {
		return true
	}
	for _, loc := range f.Locations {
		for _, v := range []string{loc.Province, loc.District, loc.Sector, loc.Cell, loc.Village} {
			if v != "" && strings.Contains(strings.ToLower(v), q) {
				return true
			}
		}
	}
	return false
}

func buildLandPredicates(c service.Criteria) []landPredicate {
	var preds []landPredicate

	if valid := validEnumValues(c.Ownership, entities.ParseOwnership); len(valid) > 0 {
		preds = append(preds, func(l entities.Land) bool {
			_, ok := valid[l.Ownership]
			return ok
		})
	}

	if valid := validEnumValues(c.Nearby, entities.ParseNearby); len(valid) > 0 {
		preds = append(preds, func(l entities.Land) bool {
			for _, n := range l.Nearby {
				if _, ok := valid[n]; ok {
					return true
				}
			}
			return false
		})
	}

	if c.MinSize != nil {
		min := *c.MinSize
		preds = append(preds, func(l entities.Land) bool { return l.Size >= min })
	}
	if c.MaxSize != nil {
		max := *c.MaxSize
		preds = append(preds, func(l entities.Land) bool { return l.Size <= max })
	}

	if len(c.Crops) > 0 {
		wanted := make(map[string]struct{}, len(c.Crops))
		for _, crop := range c.Crops {
			if crop = strings.ToLower(strings.TrimSpace(crop)); crop != "" {
				wanted[crop] = struct{}{}
			}
		}
		if len(wanted) > 0 {
			preds = append(preds, func(l entities.Land) bool {
				for _, crop := range l.Crops {
					if _, ok := wanted[strings.ToLower(crop)]; ok {
						return true
					}
				}
				return false
			})
		}
	}

	return preds
}

// validEnumValues resolves raw values against an enum parser, silently
// dropping anything unrecognized.
func validEnumValues(raw []string, parse func(string) (string, bool)) map[string]struct{} {
	valid := make(map[string]struct{})
	for _, v := range raw {
		if canonical, ok := parse(v); ok {
			valid[canonical] = struct{}{}
		}
	}
	return valid
}

func matchingLands(lands []entities.Land, preds []landPredicate) []entities.Land {
	out := make([]entities.Land, 0, len(lands))
	for _, l := range lands {
		ok := true
		for _, p := range preds {
			if !p(l) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, l)
		}
	}
	return out
}
