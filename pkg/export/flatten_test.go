package export

import (
	"testing"
	"time"

	"agridev/entities"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFlattenFarmersRowCountFollowsLargestList(t *testing.T) {
	farmers := []entities.Farmer{{
		FarmerNumber: "0007",
		Names:        "Mukamana Alice",
		Children: []entities.Child{
			{Name: "Aline", DOB: date(2015, 3, 1), Gender: "Female"},
			{Name: "Eric", DOB: date(2018, 7, 9), Gender: "Male"},
		},
		// no lands: two children still force two rows
	}}

	rows := FlattenFarmers(farmers)
	if len(rows) != 2 {
		t.Fatalf("want 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "0007" {
		t.Fatalf("farmer number missing on first row: %v", rows[0][0])
	}
	if rows[1][0] != "" || rows[1][1] != "" {
		t.Fatalf("farmer fields must be blank after row 0: %v", rows[1][:2])
	}
	if rows[1][14] != "Eric" {
		t.Fatalf("second child on second row, got %v", rows[1][14])
	}
	// land columns blank when the farmer has no parcels
	if rows[0][17] != "" || rows[0][18] != "" {
		t.Fatalf("land columns should be empty: %v %v", rows[0][17], rows[0][18])
	}
}

func TestFlattenFarmersEmitsOneRowForBareFarmer(t *testing.T) {
	rows := FlattenFarmers([]entities.Farmer{{FarmerNumber: "0001", Names: "Nkusi Jean"}})
	if len(rows) != 1 {
		t.Fatalf("want 1 row, got %d", len(rows))
	}
	if rows[0][10] != "N/A" {
		t.Fatalf("missing partner defaults to N/A, got %v", rows[0][10])
	}
	if got, want := len(rows[0]), len(FarmerColumns()); got != want {
		t.Fatalf("row width %d != column count %d", got, want)
	}
}

func TestFlattenFarmersPairsChildrenAndLandsByIndex(t *testing.T) {
	farmers := []entities.Farmer{{
		FarmerNumber: "0002",
		Names:        "Uwase Diane",
		DOB:          date(1988, 11, 20),
		Phones:       []string{"0788000001", "0788000002"},
		Children:     []entities.Child{{Name: "Aline"}},
		Lands: []entities.Land{
			{Size: 1200, Ownership: entities.OwnershipOwned, Crops: []string{"Maize", "Beans"}},
			{Size: 800, Ownership: entities.OwnershipRented},
		},
	}}

	rows := FlattenFarmers(farmers)
	if len(rows) != 2 {
		t.Fatalf("want 2 rows, got %d", len(rows))
	}
	if rows[0][7] != "0788000001, 0788000002" {
		t.Fatalf("phones join: %v", rows[0][7])
	}
	if rows[0][8] != "1988-11-20" {
		t.Fatalf("dob format: %v", rows[0][8])
	}
	if rows[0][19] != "Maize, Beans" {
		t.Fatalf("crops join: %v", rows[0][19])
	}
	// second row: land present, child slot exhausted
	if rows[1][14] != "" {
		t.Fatalf("child column should be empty on row 1: %v", rows[1][14])
	}
	if rows[1][17] != 800.0 {
		t.Fatalf("second land size: %v", rows[1][17])
	}
}

func TestFlattenFarmersCarriesLandCoordinates(t *testing.T) {
	lat, lng := -2.59, 29.74
	farmers := []entities.Farmer{{
		FarmerNumber: "0003",
		Names:        "Mukamana Alice",
		Lands: []entities.Land{{
			Size:      300,
			Ownership: entities.OwnershipOwned,
			Locations: []entities.LandLocation{{
				Location: entities.Location{Province: "South", Latitude: &lat, Longitude: &lng},
			}},
		}},
	}}

	rows := FlattenFarmers(farmers)
	if rows[0][21] != -2.59 || rows[0][22] != 29.74 {
		t.Fatalf("land coordinates: %v %v", rows[0][21], rows[0][22])
	}

	// blank when the land has no located coordinates
	rows = FlattenFarmers([]entities.Farmer{{
		Names: "Nkusi Jean",
		Lands: []entities.Land{{Size: 100, Ownership: entities.OwnershipRented}},
	}})
	if rows[0][21] != "" || rows[0][22] != "" {
		t.Fatalf("want blank coordinates: %v %v", rows[0][21], rows[0][22])
	}
}

func TestFlattenProjectsGroupsByPractice(t *testing.T) {
	projects := []entities.Project{{
		ID:        3,
		Title:     "Terracing 2026",
		Owner:     entities.User{Name: "Agro Ltd"},
		StartDate: date(2026, 1, 1),
		TargetPractices: []entities.TargetPractice{
			{
				Title: "Bench terracing",
				Activities: []entities.Activity{
					{Title: "Layout training"},
					{Title: "Digging"},
				},
			},
			{Title: "Mulching"},
		},
	}}

	rows := FlattenProjects(projects, map[uint][]string{3: {"Mukamana Alice"}})
	if len(rows) != 3 {
		t.Fatalf("want 3 rows (2 activities + 1 bare practice), got %d", len(rows))
	}
	if rows[0][0] != uint(3) || rows[0][7] != "Mukamana Alice" {
		t.Fatalf("project fields on first row: %v %v", rows[0][0], rows[0][7])
	}
	if rows[1][0] != "" || rows[1][1] != "" {
		t.Fatalf("project fields repeat past row 0: %v", rows[1][:2])
	}
	// practice title repeats within its own group
	if rows[0][8] != "Bench terracing" || rows[1][8] != "Bench terracing" {
		t.Fatalf("practice titles: %v %v", rows[0][8], rows[1][8])
	}
	// new practice group starts a fresh first row with project fields again
	if rows[2][8] != "Mulching" || rows[2][1] != "Terracing 2026" {
		t.Fatalf("second group: %v %v", rows[2][8], rows[2][1])
	}
}

func TestFlattenProjectsNoEnrollmentsShowsNA(t *testing.T) {
	rows := FlattenProjects([]entities.Project{{ID: 9, Title: "Empty"}}, nil)
	if len(rows) != 1 {
		t.Fatalf("want 1 row, got %d", len(rows))
	}
	if rows[0][7] != "N/A" {
		t.Fatalf("want N/A farmer names, got %v", rows[0][7])
	}
	if rows[0][3] != "N/A" {
		t.Fatalf("want N/A owner, got %v", rows[0][3])
	}
}
