// Package export converts nested farmer/project graphs into flat row
// sequences for spreadsheet output, and writes them with excelize.
package export

import (
	"strings"
	"time"

	"agridev/entities"
)

type Column struct {
	Header string
	Width  float64
}

// Row is one spreadsheet row, positionally aligned with the column list.
type Row []any

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func joinList(vs []string) string { return strings.Join(vs, ", ") }

func FarmerColumns() []Column {
	return []Column{
		{"ID", 12}, {"Names", 25},
		{"Province", 20}, {"District", 20}, {"Sector", 20}, {"Cell", 15}, {"Village", 20},
		{"Phones", 25}, {"Date of Birth", 18}, {"Gender", 12},
		{"Partner Name", 25}, {"Partner Phones", 25}, {"Partner Date of Birth", 18}, {"Partner Gender", 15},
		{"Child Name", 30}, {"Child Date of Birth", 18}, {"Child Gender", 15},
		{"Land Size (m²)", 15}, {"Land Ownership", 15}, {"Land Crops", 30}, {"Land Nearby", 25},
		{"Land Latitude", 15}, {"Land Longitude", 15},
	}
}

// FlattenFarmers emits max(children, lands, 1) rows per farmer. Children and
// lands are paired by index only; the pairing carries no data relationship.
// Farmer and partner fields appear on the first row of each group and stay
// blank afterwards.
func FlattenFarmers(farmers []entities.Farmer) []Row {
	var rows []Row
	for _, f := range farmers {
		partnerName, partnerPhones, partnerDOB, partnerGender := "N/A", "N/A", "N/A", "N/A"
		if f.Partner != nil {
			partnerName = f.Partner.Name
			partnerPhones = joinList(f.Partner.Phones)
			partnerDOB = formatDate(f.Partner.DOB)
			partnerGender = f.Partner.Gender
		}

		var loc entities.Location
		if len(f.Locations) > 0 {
			loc = f.Locations[0]
		}

		maxRows := len(f.Children)
		if len(f.Lands) > maxRows {
			maxRows = len(f.Lands)
		}
		if maxRows < 1 {
			maxRows = 1
		}

		for i := 0; i < maxRows; i++ {
			var childName, childDOB, childGender string
			if i < len(f.Children) {
				childName = f.Children[i].Name
				childDOB = formatDate(f.Children[i].DOB)
				childGender = f.Children[i].Gender
			}

			var landSize, landLat, landLng any = "", "", ""
			var landOwnership, landCrops, landNearby string
			if i < len(f.Lands) {
				land := f.Lands[i]
				landSize = land.Size
				landOwnership = land.Ownership
				landCrops = joinList(land.Crops)
				landNearby = joinList(land.Nearby)
				if lat, lng, ok := landCoordinates(land); ok {
					landLat, landLng = lat, lng
				}
			}

			first := i == 0
			rows = append(rows, Row{
				firstOnly(first, f.FarmerNumber), firstOnly(first, f.Names),
				firstOnly(first, loc.Province), firstOnly(first, loc.District),
				firstOnly(first, loc.Sector), firstOnly(first, loc.Cell), firstOnly(first, loc.Village),
				firstOnly(first, joinList(f.Phones)), firstOnly(first, formatDate(f.DOB)), firstOnly(first, f.Gender),
				firstOnly(first, partnerName), firstOnly(first, partnerPhones),
				firstOnly(first, partnerDOB), firstOnly(first, partnerGender),
				childName, childDOB, childGender,
				landSize, landOwnership, landCrops, landNearby,
				landLat, landLng,
			})
		}
	}
	return rows
}

func firstOnly(first bool, v string) string {
	if first {
		return v
	}
	return ""
}

// landCoordinates pulls the first land location's coordinate pair, when set.
func landCoordinates(l entities.Land) (float64, float64, bool) {
	if len(l.Locations) == 0 {
		return 0, 0, false
	}
	loc := l.Locations[0].Location
	if loc.Latitude == nil || loc.Longitude == nil {
		return 0, 0, false
	}
	return *loc.Latitude, *loc.Longitude, true
}

func ProjectColumns() []Column {
	return []Column{
		{"Project ID", 20}, {"Title", 30}, {"Description", 30}, {"Owner", 25},
		{"Start Date", 15}, {"End Date", 15}, {"Objectives", 30}, {"Farmer Names", 30},
		{"Target Practice", 25},
		{"Activity Title", 25}, {"Activity Description", 30},
		{"Activity Start Date", 15}, {"Activity End Date", 15},
		{"Land Size", 15}, {"Land Location", 35},
	}
}

// FlattenProjects pairs each practice's activities and land assignments by
// index under the same maxRows rule. Project-level fields land on the first
// row of every practice group; the practice title repeats within its group.
func FlattenProjects(projects []entities.Project, farmerNames map[uint][]string) []Row {
	var rows []Row
	for _, p := range projects {
		names := joinList(farmerNames[p.ID])
		if names == "" {
			names = "N/A"
		}
		owner := ownerLabel(p.Owner)

		practices := p.TargetPractices
		if len(practices) == 0 {
			practices = []entities.TargetPractice{{}}
		}

		for _, practice := range practices {
			maxRows := len(practice.Activities)
			if len(practice.Lands) > maxRows {
				maxRows = len(practice.Lands)
			}
			if maxRows < 1 {
				maxRows = 1
			}

			for i := 0; i < maxRows; i++ {
				var actTitle, actDesc, actStart, actEnd string
				if i < len(practice.Activities) {
					a := practice.Activities[i]
					actTitle = a.Title
					actDesc = a.Description
					actStart = formatDate(a.StartDate)
					actEnd = formatDate(a.EndDate)
				}

				var landSize any = ""
				var landLocation string
				if i < len(practice.Lands) {
					land := practice.Lands[i].Land
					landSize = land.Size
					landLocation = landLocationLabel(land)
				}

				first := i == 0
				var projectID any = ""
				if first {
					projectID = p.ID
				}
				rows = append(rows, Row{
					projectID, firstOnly(first, p.Title), firstOnly(first, p.Description), firstOnly(first, owner),
					firstOnly(first, formatDate(p.StartDate)), firstOnly(first, formatDate(p.EndDate)),
					firstOnly(first, p.Objectives), firstOnly(first, names),
					practice.Title,
					actTitle, actDesc, actStart, actEnd,
					landSize, landLocation,
				})
			}
		}
	}
	return rows
}

func ownerLabel(u entities.User) string {
	if u.Name != "" {
		return u.Name
	}
	if u.Company != nil && u.Company.TIN != "" {
		return u.Company.TIN
	}
	if u.Email != "" {
		return u.Email
	}
	return "N/A"
}

func landLocationLabel(l entities.Land) string {
	if len(l.Locations) == 0 {
		return ""
	}
	loc := l.Locations[0].Location
	if loc.Province == "" {
		return ""
	}
	return strings.Join([]string{loc.Province, loc.District, loc.Sector, loc.Cell, loc.Village}, ", ")
}
