package serviceImp

import (
	"time"

	"github.com/google/uuid"

	"agridev/entities"
	"agridev/pkg/errs"
	"agridev/pkg/farmer/repository"
	"agridev/pkg/farmer/service"
)

type farmerSvc struct{ r repository.FarmerRepository }

func New(r repository.FarmerRepository) service.FarmerService { return &farmerSvc{r} }

func (s *farmerSvc) Create(in service.CreateFarmerInput) (*entities.Farmer, error) {
	if in.Farmer == nil {
		return nil, errs.Invalid("Farmer data is missing")
	}
	if in.Farmer.Names == "" || len(in.Farmer.Phones) == 0 || in.Farmer.DOB == "" {
		return nil, errs.Invalid("Farmer names, phones and dob are required")
	}
	dob, err := parseDate(in.Farmer.DOB)
	if err != nil {
		return nil, err
	}

	agg := &repository.FarmerAggregate{
		Farmer: &entities.Farmer{
			Names:  in.Farmer.Names,
			Phones: in.Farmer.Phones,
			DOB:    dob,
			Gender: in.Farmer.Gender,
			QRCode: uuid.NewString(),
		},
	}

	if in.Location != nil {
		agg.Location = toLocation(*in.Location)
	}

	if in.Partner != nil {
		pdob, err := parseDate(in.Partner.DOB)
		if err != nil {
			return nil, err
		}
		agg.Partner = &entities.Partner{
			Name:   in.Partner.Name,
			Phones: in.Partner.Phones,
			DOB:    pdob,
			Gender: in.Partner.Gender,
		}
	}

	for _, c := range in.Children {
		cdob, err := parseDate(c.DOB)
		if err != nil {
			return nil, err
		}
		agg.Children = append(agg.Children, entities.Child{Name: c.Name, DOB: cdob, Gender: c.Gender})
	}

	for _, l := range in.Lands {
		ownership, ok := entities.ParseOwnership(l.Ownership)
		if !ok {
			return nil, errs.Invalid("Unknown land ownership: " + l.Ownership)
		}
		nearby := make([]string, 0, len(l.Nearby))
		for _, n := range l.Nearby {
			if canonical, ok := entities.ParseNearby(n); ok {
				nearby = append(nearby, canonical)
			}
		}
		agg.Lands = append(agg.Lands, repository.LandWithLocation{
			Land: entities.Land{
				Size:      l.Size,
				Ownership: ownership,
				Crops:     l.Crops,
				Nearby:    nearby,
			},
			Location: *toLocation(l.Location),
		})
	}

	if err := s.r.CreateAggregate(agg); err != nil {
		return nil, errs.Internal("Internal Server Error", err)
	}
	return agg.Farmer, nil
}

func (s *farmerSvc) List(page, limit int) (*service.FarmerPage, error) {
	if page < 1 || limit < 1 {
		return nil, errs.Invalid("Invalid page or limit values")
	}
	farmers, total, err := s.r.List(page, limit)
	if err != nil {
		return nil, errs.Internal("Error fetching farmers", err)
	}
	totalPages := (total + int64(limit) - 1) / int64(limit)
	return &service.FarmerPage{
		Data:       farmers,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func (s *farmerSvc) ByID(id uint) (*entities.Farmer, error) {
	f, err := s.r.ByID(id)
	if err != nil {
		return nil, errs.Internal("Error fetching farmer", err)
	}
	if f == nil {
		return nil, errs.NotFound("Farmer not found")
	}
	return f, nil
}

func (s *farmerSvc) Delete(id uint) error {
	f, err := s.r.ByID(id)
	if err != nil {
		return errs.Internal("Internal Server Error", err)
	}
	if f == nil {
		return errs.NotFound("Farmer not found")
	}
	if err := s.r.Delete(id); err != nil {
		return errs.Internal("Internal Server Error", err)
	}
	return nil
}

func (s *farmerSvc) ByQRCode(code string) (*entities.Farmer, error) {
	if code == "" {
		return nil, errs.Invalid("Missing qr code")
	}
	f, err := s.r.ByQRCode(code)
	if err != nil {
		return nil, errs.Internal("Internal Server Error", err)
	}
	if f == nil {
		return nil, errs.NotFound("Farmer not found")
	}
	return f, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, errs.Invalid("Invalid date: " + v)
	}
	return t, nil
}

func toLocation(in service.NewLocation) *entities.Location {
	return &entities.Location{
		Province:  in.Province,
		District:  in.District,
		Sector:    in.Sector,
		Cell:      in.Cell,
		Village:   in.Village,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
	}
}
