// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	schoolroute "schoolku_backend/internals/features/school/route"
	"schoolku_backend/internals/features/school/service"
	"schoolku_backend/internals/features/school/storage"
	"schoolku_backend/internals/identity"
	authmw "schoolku_backend/internals/middlewares/auth"
	"schoolku_backend/internals/revalidate"
)

// SetupRoutes wires the HTTP surface: one authenticated /api tree with an
// admin group (/api/a) and a teaching-staff group (/api/t), both guarded
// by the static route-access table on top of the per-group role checks.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	store := storage.NewGormStore(db)
	idp := identity.NewAccountService(db)
	reval := revalidate.NewRegistry()
	svc := service.NewSchoolService(store, idp, reval)

	accessTable := constants.NewRouteAccessTable()

	log.Println("[INFO] Setting up API groups...")
	api := app.Group("/api",
		authmw.AuthMiddleware(),
		authmw.RouteAccessGuard(accessTable),
	)

	admin := api.Group("/a",
		authmw.OnlyRoles("Forbidden: admin area", constants.AdminOnly...),
	)
	staff := api.Group("/t",
		authmw.OnlyRoles("Forbidden: teaching staff area", constants.StaffRoles...),
	)

	log.Println("[INFO] Mounting school routes...")
	schoolroute.SchoolAdminRoutes(admin, db, svc)
	schoolroute.SchoolTeacherRoutes(staff, db, svc)
}
