package serviceImp

import (
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"agridev/database"
	"agridev/entities"
	"agridev/pkg/enrollment/repositoryImp"
	"agridev/pkg/enrollment/service"
	"agridev/pkg/errs"
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

type fixture struct {
	farmer   entities.Farmer
	project  entities.Project
	practice entities.TargetPractice
	land     entities.Land
}

func seed(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	var f fixture

	f.farmer = entities.Farmer{FarmerNumber: "0001", Names: "Mukamana Alice", Gender: "Female"}
	if err := db.Create(&f.farmer).Error; err != nil {
		t.Fatalf("seed farmer: %v", err)
	}
	f.land = entities.Land{FarmerID: f.farmer.ID, Size: 1200, Ownership: entities.OwnershipOwned}
	if err := db.Create(&f.land).Error; err != nil {
		t.Fatalf("seed land: %v", err)
	}

	owner := entities.User{Name: "Agro Ltd", Email: "agro@example.com", Type: entities.UserTypeCompany}
	if err := db.Create(&owner).Error; err != nil {
		t.Fatalf("seed owner: %v", err)
	}
	f.project = entities.Project{
		Title:     "Terracing 2026",
		OwnerID:   owner.ID,
		StartDate: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
	}
	if err := db.Create(&f.project).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}
	f.practice = entities.TargetPractice{ProjectID: f.project.ID, Title: "Bench terracing"}
	if err := db.Create(&f.practice).Error; err != nil {
		t.Fatalf("seed practice: %v", err)
	}
	return f
}

func TestEnrollCreatesEnrollmentAndJoins(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	svc := New(repositoryImp.New(db))

	e, err := svc.Enroll(f.farmer.ID, f.project.ID, []service.Assignment{
		{TargetPracticeID: f.practice.ID, LandIDs: []uint{f.land.ID}},
	})
	if err != nil {
		t.Fatalf("enroll: %v", err)
	}
	if e.ID == 0 {
		t.Fatal("enrollment not persisted")
	}

	var joins int64
	db.Model(&entities.TargetPracticeLand{}).Where("target_practice_id = ?", f.practice.ID).Count(&joins)
	if joins != 1 {
		t.Fatalf("want 1 practice-land join, got %d", joins)
	}
}

func TestEnrollTwiceIsConflict(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	svc := New(repositoryImp.New(db))

	if _, err := svc.Enroll(f.farmer.ID, f.project.ID, []service.Assignment{}); err != nil {
		t.Fatalf("first enroll: %v", err)
	}
	_, err := svc.Enroll(f.farmer.ID, f.project.ID, []service.Assignment{})
	if errs.KindOf(err) != errs.KindConflict {
		t.Fatalf("want conflict, got %v", err)
	}
}

func TestEnrollRejectsForeignLandWithoutWriting(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)

	other := entities.Farmer{FarmerNumber: "0002", Names: "Nkusi Jean"}
	if err := db.Create(&other).Error; err != nil {
		t.Fatalf("seed other farmer: %v", err)
	}
	foreign := entities.Land{FarmerID: other.ID, Size: 800, Ownership: entities.OwnershipRented}
	if err := db.Create(&foreign).Error; err != nil {
		t.Fatalf("seed foreign land: %v", err)
	}

	svc := New(repositoryImp.New(db))
	_, err := svc.Enroll(f.farmer.ID, f.project.ID, []service.Assignment{
		{TargetPracticeID: f.practice.ID, LandIDs: []uint{f.land.ID, foreign.ID}},
	})
	if errs.KindOf(err) != errs.KindInvalid {
		t.Fatalf("want invalid, got %v", err)
	}

	var enrollments, joins int64
	db.Model(&entities.ProjectEnrollment{}).Count(&enrollments)
	db.Model(&entities.TargetPracticeLand{}).Count(&joins)
	if enrollments != 0 || joins != 0 {
		t.Fatalf("partial write: %d enrollments, %d joins", enrollments, joins)
	}
}

func TestEnrollUnknownFarmerIsNotFound(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)
	svc := New(repositoryImp.New(db))

	_, err := svc.Enroll(9999, f.project.ID, []service.Assignment{})
	if errs.KindOf(err) != errs.KindNotFound {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestEnrollRejectsPracticeFromAnotherProject(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)

	stray := entities.TargetPractice{ProjectID: f.project.ID + 100, Title: "Mulching"}
	if err := db.Create(&stray).Error; err != nil {
		t.Fatalf("seed stray practice: %v", err)
	}

	svc := New(repositoryImp.New(db))
	_, err := svc.Enroll(f.farmer.ID, f.project.ID, []service.Assignment{
		{TargetPracticeID: stray.ID, LandIDs: []uint{f.land.ID}},
	})
	if errs.KindOf(err) != errs.KindInvalid {
		t.Fatalf("want invalid, got %v", err)
	}
}

func TestByPracticeListsProjectWideFarmersSorted(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db)

	second := entities.Farmer{FarmerNumber: "0002", Names: "Abayo Claude"}
	if err := db.Create(&second).Error; err != nil {
		t.Fatalf("seed second farmer: %v", err)
	}

	svc := New(repositoryImp.New(db))
	if _, err := svc.Enroll(f.farmer.ID, f.project.ID, []service.Assignment{
		{TargetPracticeID: f.practice.ID, LandIDs: []uint{f.land.ID}},
	}); err != nil {
		t.Fatalf("enroll first: %v", err)
	}
	// Enrolled with no land under this practice, still expected in the list.
	if _, err := svc.Enroll(second.ID, f.project.ID, []service.Assignment{}); err != nil {
		t.Fatalf("enroll second: %v", err)
	}

	out, err := svc.ByPractice(f.practice.ID)
	if err != nil {
		t.Fatalf("by practice: %v", err)
	}
	if len(out.Farmers) != 2 {
		t.Fatalf("want 2 farmers, got %d", len(out.Farmers))
	}
	if out.Farmers[0].Names != "Abayo Claude" {
		t.Fatalf("want name-sorted list, got %q first", out.Farmers[0].Names)
	}
	if out.ProjectTitle != f.project.Title {
		t.Fatalf("want project title %q, got %q", f.project.Title, out.ProjectTitle)
	}
}

func TestByPracticeUnknownIsNotFound(t *testing.T) {
	db := newTestDB(t)
	seed(t, db)
	svc := New(repositoryImp.New(db))

	_, err := svc.ByPractice(424242)
	if errs.KindOf(err) != errs.KindNotFound {
		t.Fatalf("want not found, got %v", err)
	}
}
