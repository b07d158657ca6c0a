package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vitalapp/vitalapp-api/internal/services"
)

// Handler bundles the account services behind the HTTP surface. Everything it
// needs is injected at startup.
type Handler struct {
	Admins   *services.AdminService
	Doctors  *services.DoctorService
	Patients *services.PatientService
	Auth     *services.LoginService
}

func NewHandler(
	admins *services.AdminService,
	doctors *services.DoctorService,
	patients *services.PatientService,
	auth *services.LoginService,
) *Handler {
	return &Handler{
		Admins:   admins,
		Doctors:  doctors,
		Patients: patients,
		Auth:     auth,
	}
}

// pathID reads the numeric :id parameter, replying 400 on garbage.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}
