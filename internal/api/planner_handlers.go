package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alexanderramin/semestra/internal/domain"
)

func (a *API) handleBusySlotsList(w http.ResponseWriter, r *http.Request) {
	slots, err := a.slots.List(r.Context(), userID(r))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	out := make([]slotDTO, 0, len(slots))
	for _, s := range slots {
		out = append(out, toSlotDTO(s))
	}
	writeJSON(w, http.StatusOK, map[string]any{"busy_slots": out})
}

func (a *API) handleBusySlotsCreate(w http.ResponseWriter, r *http.Request) {
	var req slotRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	slot := &domain.BusySlot{
		UserID:    userID(r),
		DayOfWeek: req.DayOfWeek,
		StartHour: req.StartHour,
		EndHour:   req.EndHour,
		Title:     req.Title,
		SlotType:  req.SlotType,
	}
	if err := a.slots.Add(r.Context(), slot); err != nil {
		a.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSlotDTO(slot))
}

// handleBusySlotsBulk replaces the user's entire weekly grid in one call,
// the way the original onboarding screen saves it.
func (a *API) handleBusySlotsBulk(w http.ResponseWriter, r *http.Request) {
	var req struct {
		BusySlots []slotRequest `json:"busy_slots"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	slots := make([]domain.BusySlot, 0, len(req.BusySlots))
	for _, s := range req.BusySlots {
		slot := domain.BusySlot{
			DayOfWeek: s.DayOfWeek,
			StartHour: s.StartHour,
			EndHour:   s.EndHour,
			Title:     s.Title,
			SlotType:  s.SlotType,
		}
		if err := slot.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slots = append(slots, slot)
	}
	if err := a.slots.ReplaceAll(r.Context(), userID(r), slots); err != nil {
		a.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": len(slots)})
}

func (a *API) handleBusySlotsDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.slots.Delete(r.Context(), userID(r), chi.URLParam(r, "slotID")); err != nil {
		a.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (a *API) handleProfileGet(w http.ResponseWriter, r *http.Request) {
	profile, err := a.profiles.Get(r.Context(), userID(r))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileDTO(profile))
}

func (a *API) handleProfileBaseline(w http.ResponseWriter, r *http.Request) {
	var req profileDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	profile := &domain.Profile{
		UserID:               userID(r),
		Name:                 req.Name,
		University:           req.University,
		Major:                req.Major,
		Chronotype:           domain.Chronotype(req.Chronotype),
		WorkStyle:            domain.WorkStyle(req.WorkStyle),
		PreferredSessionMins: req.PreferredSessionMins,
		CalendarWriteEnabled: req.CalendarWriteEnabled,
	}
	if err := a.profiles.Save(r.Context(), profile); err != nil {
		a.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfileDTO(profile))
}

func (a *API) handleCoursesList(w http.ResponseWriter, r *http.Request) {
	courses, err := a.courses.List(r.Context(), userID(r))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	out := make([]courseDTO, 0, len(courses))
	for _, c := range courses {
		out = append(out, toCourseDTO(c))
	}
	writeJSON(w, http.StatusOK, map[string]any{"courses": out})
}

func (a *API) handleCoursesCreate(w http.ResponseWriter, r *http.Request) {
	var req courseDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	course := &domain.Course{
		UserID: userID(r),
		Name:   req.Name,
		Code:   req.Code,
		Color:  req.Color,
		Term:   req.Term,
	}
	if err := a.courses.Create(r.Context(), course); err != nil {
		a.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCourseDTO(course))
}

func (a *API) handleCoursesUpdate(w http.ResponseWriter, r *http.Request) {
	course, err := a.courses.GetByID(r.Context(), userID(r), chi.URLParam(r, "courseID"))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	var req courseDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Name != "" {
		course.Name = req.Name
	}
	if req.Code != "" {
		course.Code = req.Code
	}
	if req.Color != "" {
		course.Color = req.Color
	}
	if req.Term != "" {
		course.Term = req.Term
	}
	if err := a.courses.Update(r.Context(), course); err != nil {
		a.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCourseDTO(course))
}

func (a *API) handleCoursesDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.courses.Delete(r.Context(), userID(r), chi.URLParam(r, "courseID")); err != nil {
		a.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (a *API) handleScheduleRun(w http.ResponseWriter, r *http.Request) {
	result, err := a.schedule.Run(r.Context(), userID(r))
	if err != nil {
		a.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toScheduleRunDTO(result))
}
