package person

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/turnero/turnero/internal/platform/db"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes wires both category resources. The caller supplies the
// two route groups; reads are expected to carry the signed-in guard and
// writes the administrator guard.
func (h *Handler) RegisterRoutes(read, write *echo.Group) {
	read.GET("/doctors", h.ListDoctors)
	read.GET("/doctors/:id", h.GetDoctor)
	read.GET("/doctors/code/:code", h.GetDoctorByCode)
	read.GET("/patients", h.ListPatients)
	read.GET("/patients/:id", h.GetPatient)

	write.POST("/doctors", h.CreateDoctor)
	write.PUT("/doctors/:id", h.UpdateDoctor)
	write.DELETE("/doctors/:id", h.DeleteDoctor)
	write.DELETE("/doctors/code/:code", h.DeleteDoctorByCode)
	write.POST("/patients", h.CreatePatient)
	write.PUT("/patients/:id", h.UpdatePatient)
	write.DELETE("/patients/:id", h.DeletePatient)
}

// personRequest is the write payload. Password is accepted on input but
// never echoed back in responses.
type personRequest struct {
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	NationalID string  `json:"national_id"`
	Username   *string `json:"username"`
	Password   *string `json:"password"`
}

func (r *personRequest) toPerson(kind Kind) *Person {
	return &Person{
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		NationalID: r.NationalID,
		Username:   r.Username,
		Password:   r.Password,
		Kind:       kind,
	}
}

func httpStatus(err error) error {
	switch {
	case errors.Is(err, db.ErrEntityNotFound), errors.Is(err, db.ErrNoDataFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case db.IsDataAccess(err):
		return echo.NewHTTPError(http.StatusInternalServerError, "data access failure")
	default:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

func (h *Handler) list(c echo.Context, kind Kind) error {
	ctx := c.Request().Context()
	var (
		items []*Person
		err   error
	)
	if name := c.QueryParam("name"); name != "" {
		items, err = h.svc.Search(ctx, kind, name)
	} else {
		items, err = h.svc.List(ctx, kind)
	}
	if err != nil {
		return httpStatus(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c echo.Context, kind Kind) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	p, err := h.svc.Get(c.Request().Context(), kind, id)
	if err != nil {
		return httpStatus(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) create(c echo.Context, kind Kind) error {
	var req personRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p := req.toPerson(kind)
	if err := h.svc.Save(c.Request().Context(), kind, p); err != nil {
		return httpStatus(err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *Handler) update(c echo.Context, kind Kind) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req personRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p := req.toPerson(kind)
	p.ID = &id
	if err := h.svc.Save(c.Request().Context(), kind, p); err != nil {
		return httpStatus(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) remove(c echo.Context, kind Kind) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), kind, id); err != nil {
		return httpStatus(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListDoctors(c echo.Context) error  { return h.list(c, KindDoctor) }
func (h *Handler) GetDoctor(c echo.Context) error    { return h.get(c, KindDoctor) }
func (h *Handler) CreateDoctor(c echo.Context) error { return h.create(c, KindDoctor) }
func (h *Handler) UpdateDoctor(c echo.Context) error { return h.update(c, KindDoctor) }
func (h *Handler) DeleteDoctor(c echo.Context) error { return h.remove(c, KindDoctor) }

func (h *Handler) ListPatients(c echo.Context) error  { return h.list(c, KindPatient) }
func (h *Handler) GetPatient(c echo.Context) error    { return h.get(c, KindPatient) }
func (h *Handler) CreatePatient(c echo.Context) error { return h.create(c, KindPatient) }
func (h *Handler) UpdatePatient(c echo.Context) error { return h.update(c, KindPatient) }
func (h *Handler) DeletePatient(c echo.Context) error { return h.remove(c, KindPatient) }

func (h *Handler) GetDoctorByCode(c echo.Context) error {
	p, err := h.svc.GetDoctorByCode(c.Request().Context(), c.Param("code"))
	if err != nil {
		return httpStatus(err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *Handler) DeleteDoctorByCode(c echo.Context) error {
	if err := h.svc.DeleteDoctorByCode(c.Request().Context(), c.Param("code")); err != nil {
		return httpStatus(err)
	}
	return c.NoContent(http.StatusNoContent)
}
