package serviceImp

import (
	"path/filepath"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"agridev/database"
	"agridev/entities"
	"agridev/pkg/attendance/repositoryImp"
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
	activity entities.Activity
}

// seed builds farmer, project, practice and activity. enrolled controls
// whether the farmer gets an enrollment row.
func seed(t *testing.T, db *gorm.DB, enrolled bool) fixture {
	t.Helper()
	var f fixture

	f.farmer = entities.Farmer{FarmerNumber: "0001", Names: "Mukamana Alice"}
	if err := db.Create(&f.farmer).Error; err != nil {
		t.Fatalf("seed farmer: %v", err)
	}
	f.project = entities.Project{Title: "Terracing 2026"}
	if err := db.Create(&f.project).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}
	practice := entities.TargetPractice{ProjectID: f.project.ID, Title: "Bench terracing"}
	if err := db.Create(&practice).Error; err != nil {
		t.Fatalf("seed practice: %v", err)
	}
	f.activity = entities.Activity{TargetPracticeID: practice.ID, Title: "Layout training"}
	if err := db.Create(&f.activity).Error; err != nil {
		t.Fatalf("seed activity: %v", err)
	}

	if enrolled {
		e := entities.ProjectEnrollment{FarmerID: f.farmer.ID, ProjectID: f.project.ID}
		if err := db.Create(&e).Error; err != nil {
			t.Fatalf("seed enrollment: %v", err)
		}
	}
	return f
}

func TestRegisterRecordsAttendance(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db, true)
	svc := New(repositoryImp.New(db))

	a, err := svc.Register(f.farmer.ID, f.activity.ID, "arrived late", []string{"p1.jpg"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if a.ID == 0 {
		t.Fatal("attendance not persisted")
	}
	if len(a.Photos) != 1 || a.Photos[0] != "p1.jpg" {
		t.Fatalf("photos not kept: %v", a.Photos)
	}
}

func TestRegisterRequiresEnrollment(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db, false)
	svc := New(repositoryImp.New(db))

	_, err := svc.Register(f.farmer.ID, f.activity.ID, "", nil)
	if errs.KindOf(err) != errs.KindForbidden {
		t.Fatalf("want forbidden, got %v", err)
	}
}

func TestRegisterTwiceIsConflict(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db, true)
	svc := New(repositoryImp.New(db))

	if _, err := svc.Register(f.farmer.ID, f.activity.ID, "", nil); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(f.farmer.ID, f.activity.ID, "", nil)
	if errs.KindOf(err) != errs.KindConflict {
		t.Fatalf("want conflict, got %v", err)
	}
}

func TestRegisterUnknownActivityIsNotFound(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db, true)
	svc := New(repositoryImp.New(db))

	_, err := svc.Register(f.farmer.ID, 9999, "", nil)
	if errs.KindOf(err) != errs.KindNotFound {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestByActivityDropsRevokedEnrollments(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db, true)
	svc := New(repositoryImp.New(db))

	if _, err := svc.Register(f.farmer.ID, f.activity.ID, "", nil); err != nil {
		t.Fatalf("register: %v", err)
	}

	out, err := svc.ByActivity(f.activity.ID)
	if err != nil {
		t.Fatalf("by activity: %v", err)
	}
	if len(out.Attendance) != 1 {
		t.Fatalf("want 1 record, got %d", len(out.Attendance))
	}
	if out.Project.Title != f.project.Title {
		t.Fatalf("want project title %q, got %q", f.project.Title, out.Project.Title)
	}

	// Revoke the enrollment; the record must disappear from the view.
	if err := db.Where("farmer_id = ?", f.farmer.ID).Delete(&entities.ProjectEnrollment{}).Error; err != nil {
		t.Fatalf("revoke: %v", err)
	}
	out, err = svc.ByActivity(f.activity.ID)
	if err != nil {
		t.Fatalf("by activity after revoke: %v", err)
	}
	if len(out.Attendance) != 0 {
		t.Fatalf("revoked farmer still listed: %d records", len(out.Attendance))
	}
}

func TestByFarmerNewestFirstWithContext(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db, true)

	second := entities.Activity{TargetPracticeID: f.activity.TargetPracticeID, Title: "Digging"}
	if err := db.Create(&second).Error; err != nil {
		t.Fatalf("seed second activity: %v", err)
	}

	old := entities.Attendance{
		FarmerID:   f.farmer.ID,
		ActivityID: f.activity.ID,
		CreatedAt:  time.Now().Add(-48 * time.Hour),
	}
	if err := db.Create(&old).Error; err != nil {
		t.Fatalf("seed old record: %v", err)
	}
	recent := entities.Attendance{FarmerID: f.farmer.ID, ActivityID: second.ID}
	if err := db.Create(&recent).Error; err != nil {
		t.Fatalf("seed recent record: %v", err)
	}

	svc := New(repositoryImp.New(db))
	records, err := svc.ByFarmer(f.farmer.ID)
	if err != nil {
		t.Fatalf("by farmer: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("want 2 records, got %d", len(records))
	}
	if records[0].ActivityID != second.ID || records[1].ActivityID != f.activity.ID {
		t.Fatalf("records not newest first: %d then %d", records[0].ActivityID, records[1].ActivityID)
	}
	if records[0].Activity.Title != "Digging" {
		t.Fatalf("activity not loaded: %+v", records[0].Activity)
	}
	tp := records[0].Activity.TargetPractice
	if tp == nil || tp.Project == nil || tp.Project.Title != f.project.Title {
		t.Fatalf("practice/project context not loaded: %+v", tp)
	}
}

func TestByFarmerEmptyIsNotFound(t *testing.T) {
	db := newTestDB(t)
	f := seed(t, db, true)
	svc := New(repositoryImp.New(db))

	_, err := svc.ByFarmer(f.farmer.ID)
	if errs.KindOf(err) != errs.KindNotFound {
		t.Fatalf("want not found, got %v", err)
	}
}
