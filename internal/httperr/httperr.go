package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

var businessStatus = map[string]struct {
	status  int
	message string
}{
	"invalid_date_or_time":   {http.StatusBadRequest, "Fecha u hora no válida."},
	"invalid_duration":       {http.StatusBadRequest, "Duración no válida."},
	"invalid_stylist":        {http.StatusBadRequest, "Peluquera no válida."},
	"outside_business_hours": {http.StatusBadRequest, "Fuera del horario del salón."},
	"invalid_schedule":       {http.StatusBadRequest, "Horario no válido."},
	"invalid_timezone":       {http.StatusBadRequest, "Zona horaria no válida."},
	"appointment_not_found":  {http.StatusNotFound, "Cita no encontrada."},
	"salon_not_found":        {http.StatusNotFound, "Salón no encontrado."},
	"stylist_exists":         {http.StatusConflict, "Ya existe una peluquera con esa clave."},
}

// Respond writes err as a JSON error. Known business codes keep their own
// status; anything else is reported as fallbackCode with a 500.
func Respond(c *gin.Context, err error, fallbackCode string) {
	if code, ok := BusinessCode(err); ok {
		if m, known := businessStatus[code]; known {
			Write(c, m.status, code, m.message)
			return
		}
		BadRequest(c, code, code)
		return
	}

	if IsExclusionConflict(err) {
		Conflict(c, "conflict", "El registro ya existe.")
		return
	}

	Internal(c, fallbackCode, "Error interno.")
}
