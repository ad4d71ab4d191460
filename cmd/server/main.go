package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"agridev/config"
	"agridev/database"
	"agridev/pkg/upload"
	"agridev/router"

	authCtrlImp "agridev/pkg/auth/controllerImp"
	authRepoImp "agridev/pkg/auth/repositoryImp"
	authSvcImp "agridev/pkg/auth/serviceImp"

	farmerCtrlImp "agridev/pkg/farmer/controllerImp"
	farmerRepoImp "agridev/pkg/farmer/repositoryImp"
	farmerSvcImp "agridev/pkg/farmer/serviceImp"

	searchCtrlImp "agridev/pkg/search/controllerImp"
	searchRepoImp "agridev/pkg/search/repositoryImp"
	searchSvcImp "agridev/pkg/search/serviceImp"

	projectCtrlImp "agridev/pkg/project/controllerImp"
	projectRepoImp "agridev/pkg/project/repositoryImp"
	projectSvcImp "agridev/pkg/project/serviceImp"

	enrollCtrlImp "agridev/pkg/enrollment/controllerImp"
	enrollRepoImp "agridev/pkg/enrollment/repositoryImp"
	enrollSvcImp "agridev/pkg/enrollment/serviceImp"

	attendCtrlImp "agridev/pkg/attendance/controllerImp"
	attendRepoImp "agridev/pkg/attendance/repositoryImp"
	attendSvcImp "agridev/pkg/attendance/serviceImp"

	companyCtrlImp "agridev/pkg/company/controllerImp"
	companyRepoImp "agridev/pkg/company/repositoryImp"
	companySvcImp "agridev/pkg/company/serviceImp"

	volunteerCtrlImp "agridev/pkg/volunteer/controllerImp"
	volunteerRepoImp "agridev/pkg/volunteer/repositoryImp"
	volunteerSvcImp "agridev/pkg/volunteer/serviceImp"

	exportCtrlImp "agridev/pkg/export/controllerImp"
	exportRepoImp "agridev/pkg/export/repositoryImp"

	qrCtrlImp "agridev/pkg/qrcode/controllerImp"

	healthCtrlImp "agridev/pkg/health/controllerImp"
)

func main() {
	cfg := config.Load()

	if loc, err := time.LoadLocation(cfg.Timezone); err == nil {
		time.Local = loc
	} else {
		log.Printf("timezone %q not found, keeping system default", cfg.Timezone)
	}

	db := database.OpenSQLite(cfg.DBPath)

	store, err := upload.New(cfg.UploadDir)
	if err != nil {
		log.Fatalf("upload store: %v", err)
	}

	e := echo.New()
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Static("/uploads", cfg.UploadDir)

	authCtrl := authCtrlImp.NewAuthController(authSvcImp.New(authRepoImp.New(db), cfg.JWTSecret))

	farmerSvc := farmerSvcImp.New(farmerRepoImp.New(db))
	farmerCtrl := farmerCtrlImp.New(farmerSvc)
	searchCtrl := searchCtrlImp.New(searchSvcImp.New(searchRepoImp.New(db)))
	qrCtrl := qrCtrlImp.New(farmerSvc)

	projectCtrl := projectCtrlImp.New(projectSvcImp.New(projectRepoImp.New(db)))
	enrollCtrl := enrollCtrlImp.New(enrollSvcImp.New(enrollRepoImp.New(db)))
	attendCtrl := attendCtrlImp.New(attendSvcImp.New(attendRepoImp.New(db)), store)

	companyCtrl := companyCtrlImp.New(companySvcImp.New(companyRepoImp.New(db)), store)
	volunteerCtrl := volunteerCtrlImp.New(volunteerSvcImp.New(volunteerRepoImp.New(db), cfg.JWTSecret))

	exportCtrl := exportCtrlImp.New(exportRepoImp.New(db))
	healthCtrl := healthCtrlImp.NewHealthCtrl(db)

	r := router.New(
		e,
		db,
		cfg.JWTSecret,
		authCtrl,
		farmerCtrl,
		searchCtrl.SearchFarmers,
		projectCtrl,
		enrollCtrl,
		attendCtrl,
		companyCtrl,
		volunteerCtrl,
		exportCtrl,
		qrCtrl,
		healthCtrl,
	)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
