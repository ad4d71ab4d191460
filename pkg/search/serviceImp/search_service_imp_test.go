package serviceImp

import (
	"fmt"
	"path/filepath"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"agridev/database"
	"agridev/entities"
	"agridev/pkg/errs"
	"agridev/pkg/search/repositoryImp"
	"agridev/pkg/search/service"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedFarmer(t *testing.T, db *gorm.DB, number, names, gender string, lands ...entities.Land) entities.Farmer {
	t.Helper()
	f := entities.Farmer{FarmerNumber: number, Names: names, Gender: gender, Phones: []string{"078" + number}}
	if err := db.Create(&f).Error; err != nil {
		t.Fatalf("seed farmer %s: %v", number, err)
	}
	for i := range lands {
		lands[i].FarmerID = f.ID
		if err := db.Create(&lands[i]).Error; err != nil {
			t.Fatalf("seed land: %v", err)
		}
	}
	return f
}

func f64(v float64) *float64 { return &v }

func TestSearchByFarmerNumber(t *testing.T) {
	db := newTestDB(t)
	seedFarmer(t, db, "0007", "Mukamana Alice", "Female")
	seedFarmer(t, db, "0008", "Nkusi Jean", "Male")
	svc := New(repositoryImp.New(db))

	res, err := svc.SearchFarmers(service.Criteria{Query: "0007"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if res.TotalFarmers != 1 || res.Farmers[0].Names != "Mukamana Alice" {
		t.Fatalf("want only 0007, got %+v", res.Farmers)
	}
}

func TestSearchPhoneMatchesExactOnly(t *testing.T) {
	db := newTestDB(t)
	seedFarmer(t, db, "0001", "Mukamana Alice", "Female")
	svc := New(repositoryImp.New(db))

	if _, err := svc.SearchFarmers(service.Criteria{Query: "0780001"}); err != nil {
		t.Fatalf("exact phone search: %v", err)
	}
	// a phone prefix matches neither phone nor any other field
	_, err := svc.SearchFarmers(service.Criteria{Query: "07800"})
	if errs.KindOf(err) != errs.KindNotFound {
		t.Fatalf("want not found for phone prefix, got %v", err)
	}
}

func TestSearchLandFiltersHoldOnSameLand(t *testing.T) {
	db := newTestDB(t)
	// One big rented parcel and one small owned parcel. An ownership=Owned,
	// minSize=1000 query must not match: no single land satisfies both.
	seedFarmer(t, db, "0001", "Uwase Diane", "Female",
		entities.Land{Size: 2000, Ownership: entities.OwnershipRented},
		entities.Land{Size: 500, Ownership: entities.OwnershipOwned},
	)
	// This one has a single parcel meeting both conditions.
	seedFarmer(t, db, "0002", "Nkusi Jean", "Male",
		entities.Land{Size: 1500, Ownership: entities.OwnershipOwned},
	)
	svc := New(repositoryImp.New(db))

	res, err := svc.SearchFarmers(service.Criteria{
		Ownership: []string{"owned"}, // case-insensitive enum resolution
		MinSize:   f64(1000),
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if res.TotalFarmers != 1 || res.Farmers[0].Names != "Nkusi Jean" {
		t.Fatalf("want only the farmer with a qualifying parcel, got %+v", res.Farmers)
	}
	if len(res.Farmers[0].Lands) != 1 {
		t.Fatalf("result should carry only the matching lands, got %d", len(res.Farmers[0].Lands))
	}
}

func TestSearchCropsMatchCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	seedFarmer(t, db, "0001", "Mukamana Alice", "Female",
		entities.Land{Size: 400, Ownership: entities.OwnershipOwned, Crops: []string{"Maize", "Beans"}})
	seedFarmer(t, db, "0002", "Nkusi Jean", "Male",
		entities.Land{Size: 400, Ownership: entities.OwnershipOwned, Crops: []string{"Cassava"}})
	svc := New(repositoryImp.New(db))

	res, err := svc.SearchFarmers(service.Criteria{Crops: []string{"maize"}})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if res.TotalFarmers != 1 || res.Farmers[0].Names != "Mukamana Alice" {
		t.Fatalf("crop filter: %+v", res.Farmers)
	}
}

func TestSearchNearbyMatchesAnyListedTag(t *testing.T) {
	db := newTestDB(t)
	seedFarmer(t, db, "0001", "Mukamana Alice", "Female",
		entities.Land{Size: 400, Ownership: entities.OwnershipOwned, Nearby: []string{entities.NearbyRiver, entities.NearbyRoad}})
	seedFarmer(t, db, "0002", "Nkusi Jean", "Male",
		entities.Land{Size: 400, Ownership: entities.OwnershipOwned, Nearby: []string{entities.NearbyLake}})
	svc := New(repositoryImp.New(db))

	res, err := svc.SearchFarmers(service.Criteria{Nearby: []string{"river"}})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if res.TotalFarmers != 1 || res.Farmers[0].Names != "Mukamana Alice" {
		t.Fatalf("nearby filter: %+v", res.Farmers)
	}
}

func TestSearchMaxSizeIsInclusive(t *testing.T) {
	db := newTestDB(t)
	seedFarmer(t, db, "0001", "Mukamana Alice", "Female",
		entities.Land{Size: 1000, Ownership: entities.OwnershipOwned})
	seedFarmer(t, db, "0002", "Nkusi Jean", "Male",
		entities.Land{Size: 1001, Ownership: entities.OwnershipOwned})
	svc := New(repositoryImp.New(db))

	res, err := svc.SearchFarmers(service.Criteria{MaxSize: f64(1000)})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	// the bound itself qualifies, anything above it does not
	if res.TotalFarmers != 1 || res.Farmers[0].Names != "Mukamana Alice" {
		t.Fatalf("max size filter: %+v", res.Farmers)
	}
}

func TestSearchUnknownEnumValueIsDropped(t *testing.T) {
	db := newTestDB(t)
	seedFarmer(t, db, "0001", "Mukamana Alice", "Female",
		entities.Land{Size: 100, Ownership: entities.OwnershipOwned})
	svc := New(repositoryImp.New(db))

	// "Leased" is not an ownership value; the filter deactivates and every
	// farmer remains eligible.
	res, err := svc.SearchFarmers(service.Criteria{Ownership: []string{"Leased"}})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if res.TotalFarmers != 1 {
		t.Fatalf("want 1 farmer, got %d", res.TotalFarmers)
	}
}

func TestSearchPagination(t *testing.T) {
	db := newTestDB(t)
	for i := 1; i <= 25; i++ {
		seedFarmer(t, db, fmt.Sprintf("%04d", i), fmt.Sprintf("Farmer %02d", i), "Male")
	}
	svc := New(repositoryImp.New(db))

	res, err := svc.SearchFarmers(service.Criteria{Page: 3, Limit: 10})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if res.TotalFarmers != 25 || res.TotalPages != 3 {
		t.Fatalf("want 25 total over 3 pages, got %d over %d", res.TotalFarmers, res.TotalPages)
	}
	if len(res.Farmers) != 5 {
		t.Fatalf("last page should hold 5 farmers, got %d", len(res.Farmers))
	}
	if res.CurrentPage != 3 {
		t.Fatalf("current page: %d", res.CurrentPage)
	}
}

func TestSearchNoResultsIsNotFound(t *testing.T) {
	db := newTestDB(t)
	seedFarmer(t, db, "0001", "Mukamana Alice", "Female")
	svc := New(repositoryImp.New(db))

	_, err := svc.SearchFarmers(service.Criteria{Query: "nomatch"})
	if errs.KindOf(err) != errs.KindNotFound {
		t.Fatalf("want not found, got %v", err)
	}
}
