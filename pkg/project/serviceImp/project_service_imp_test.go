package serviceImp

import (
	"path/filepath"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"agridev/database"
	"agridev/entities"
	"agridev/pkg/errs"
	"agridev/pkg/project/repositoryImp"
	"agridev/pkg/project/service"
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

func seedCompanyUser(t *testing.T, db *gorm.DB, email string) entities.User {
	t.Helper()
	u := entities.User{Name: "Agro Ltd", Email: email, Type: entities.UserTypeCompany}
	if err := db.Create(&u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	c := entities.Company{UserID: u.ID, TIN: "123456789"}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("seed company: %v", err)
	}
	return u
}

func projectInput(ownerID uint) service.CreateProjectInput {
	return service.CreateProjectInput{
		Title:     "Terracing 2026",
		UserID:    ownerID,
		StartDate: "2026-01-01",
		EndDate:   "2026-12-31",
		TargetPractices: []service.NewPractice{
			{
				Title: "Bench terracing",
				Activities: []service.NewActivity{
					{Title: "Layout training", StartDate: "2026-02-01", EndDate: "2026-02-05"},
				},
			},
		},
	}
}

func TestCreateProjectWithPracticesAndActivities(t *testing.T) {
	db := newTestDB(t)
	owner := seedCompanyUser(t, db, "agro@example.com")
	svc := New(repositoryImp.New(db))

	p, err := svc.Create(projectInput(owner.ID))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.ByID(p.ID)
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if len(got.TargetPractices) != 1 {
		t.Fatalf("want 1 practice, got %d", len(got.TargetPractices))
	}
	if len(got.TargetPractices[0].Activities) != 1 {
		t.Fatalf("want 1 activity, got %d", len(got.TargetPractices[0].Activities))
	}
	if got.Owner.Name != "Agro Ltd" {
		t.Fatalf("owner not loaded: %+v", got.Owner)
	}
}

func TestCreateProjectRejectsNonCompanyOwner(t *testing.T) {
	db := newTestDB(t)
	plain := entities.User{Name: "Someone", Email: "user@example.com", Type: entities.UserTypePlain}
	if err := db.Create(&plain).Error; err != nil {
		t.Fatalf("seed plain user: %v", err)
	}
	svc := New(repositoryImp.New(db))

	_, err := svc.Create(projectInput(plain.ID))
	if errs.KindOf(err) != errs.KindForbidden {
		t.Fatalf("want forbidden, got %v", err)
	}
}

func TestSearchFiltersByTargetPractice(t *testing.T) {
	db := newTestDB(t)
	owner := seedCompanyUser(t, db, "agro@example.com")
	svc := New(repositoryImp.New(db))

	if _, err := svc.Create(projectInput(owner.ID)); err != nil {
		t.Fatalf("create first: %v", err)
	}
	other := projectInput(owner.ID)
	other.Title = "Soil health"
	other.TargetPractices = []service.NewPractice{{Title: "Composting"}}
	if _, err := svc.Create(other); err != nil {
		t.Fatalf("create second: %v", err)
	}

	res, err := svc.Search(service.SearchCriteria{TargetPractice: "terracing"})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if res.Total != 1 || res.Data[0].Title != "Terracing 2026" {
		t.Fatalf("practice filter: total=%d data=%+v", res.Total, res.Data)
	}

	res, err = svc.Search(service.SearchCriteria{Query: "soil"})
	if err != nil {
		t.Fatalf("search by query: %v", err)
	}
	if res.Total != 1 || res.Data[0].Title != "Soil health" {
		t.Fatalf("text filter: total=%d", res.Total)
	}
}

func TestCreateActivityRequiresExistingPractice(t *testing.T) {
	db := newTestDB(t)
	svc := New(repositoryImp.New(db))

	_, err := svc.CreateActivity(service.CreateActivityInput{
		Title:            "Digging",
		Description:      "Dig the terraces",
		StartDate:        "2026-03-01",
		EndDate:          "2026-03-10",
		TargetPracticeID: 42,
	})
	if errs.KindOf(err) != errs.KindNotFound {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestByOwnerEmptyIsNotFound(t *testing.T) {
	db := newTestDB(t)
	owner := seedCompanyUser(t, db, "agro@example.com")
	svc := New(repositoryImp.New(db))

	_, err := svc.ByOwner(owner.ID)
	if errs.KindOf(err) != errs.KindNotFound {
		t.Fatalf("want not found, got %v", err)
	}
}
