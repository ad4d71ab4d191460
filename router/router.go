package router

import (
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"agridev/entities"
	"agridev/pkg/middleware"
)

type farmerController interface {
	Create(echo.Context) error
	List(echo.Context) error
	Get(echo.Context) error
	Delete(echo.Context) error
}

type projectController interface {
	Create(echo.Context) error
	List(echo.Context) error
	Get(echo.Context) error
	Practices(echo.Context) error
	Activities(echo.Context) error
	CreateActivity(echo.Context) error
	Search(echo.Context) error
	Mine(echo.Context) error
}

type enrollmentController interface {
	Enroll(echo.Context) error
	ByPractice(echo.Context) error
	Stats(echo.Context) error
}

type attendanceController interface {
	Register(echo.Context) error
	ByActivity(echo.Context) error
	ByFarmer(echo.Context) error
}

type companyController interface {
	Create(echo.Context) error
	List(echo.Context) error
	Get(echo.Context) error
	Delete(echo.Context) error
}

type volunteerController interface {
	Create(echo.Context) error
	List(echo.Context) error
	Get(echo.Context) error
	Delete(echo.Context) error
}

type exportController interface {
	Farmers(echo.Context) error
	Projects(echo.Context) error
}

type qrController interface {
	Generate(echo.Context) error
	Resolve(echo.Context) error
}

func New(
	e *echo.Echo,
	db *gorm.DB,
	jwtSecret string,
	authCtrl interface {
		Register(echo.Context) error
		Login(echo.Context) error
		Profile(echo.Context) error
	},
	farmerCtrl farmerController,
	searchFarmers func(echo.Context) error,
	projectCtrl projectController,
	enrollCtrl enrollmentController,
	attendCtrl attendanceController,
	companyCtrl companyController,
	volunteerCtrl volunteerController,
	exportCtrl exportController,
	qrCtrl qrController,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	verify := middleware.Verify(db, jwtSecret)
	companyOnly := middleware.RequireType(entities.UserTypeCompany)
	volunteerOnly := middleware.RequireRole(entities.RoleVolunteer)

	e.GET("/health", healthCtrl.Health)

	auth := e.Group("/auth")
	auth.POST("/register", authCtrl.Register)
	auth.POST("/login", authCtrl.Login)
	auth.GET("/profile", authCtrl.Profile, verify)

	farmers := e.Group("/farmers")
	farmers.POST("", farmerCtrl.Create, verify)
	farmers.GET("", farmerCtrl.List)
	farmers.GET("/search", searchFarmers)
	farmers.GET("/filter", searchFarmers)
	farmers.GET("/export", exportCtrl.Farmers)
	farmers.GET("/scan/:qrCode", qrCtrl.Resolve)
	farmers.GET("/:farmerId", farmerCtrl.Get)
	farmers.DELETE("/:farmerId", farmerCtrl.Delete, verify)
	farmers.GET("/:farmerId/qrcode", qrCtrl.Generate)
	farmers.GET("/:farmerId/attendance", attendCtrl.ByFarmer)

	projects := e.Group("/projects")
	projects.POST("", projectCtrl.Create, verify, companyOnly)
	projects.GET("", projectCtrl.List)
	projects.GET("/search", projectCtrl.Search)
	projects.GET("/mine", projectCtrl.Mine, verify)
	projects.GET("/export", exportCtrl.Projects)
	projects.GET("/stats", enrollCtrl.Stats)
	projects.GET("/:projectId", projectCtrl.Get)
	projects.GET("/:projectId/target-practices", projectCtrl.Practices)

	practices := e.Group("/target-practices")
	practices.GET("/:practiceId/activities", projectCtrl.Activities)
	practices.GET("/:practiceId/enrollments", enrollCtrl.ByPractice)

	e.POST("/activities", projectCtrl.CreateActivity, verify, companyOnly)
	e.GET("/activities/:activityId/attendance", attendCtrl.ByActivity)

	e.POST("/enrollments", enrollCtrl.Enroll, verify)
	e.POST("/attendance", attendCtrl.Register, verify, volunteerOnly)

	companies := e.Group("/companies")
	companies.POST("", companyCtrl.Create)
	companies.GET("", companyCtrl.List)
	companies.GET("/:id", companyCtrl.Get)
	companies.DELETE("/:id", companyCtrl.Delete, verify)

	volunteers := e.Group("/volunteers")
	volunteers.POST("", volunteerCtrl.Create, verify)
	volunteers.GET("", volunteerCtrl.List)
	volunteers.GET("/:id", volunteerCtrl.Get)
	volunteers.DELETE("/:id", volunteerCtrl.Delete, verify)

	return e
}
