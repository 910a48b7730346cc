package handlers

import (
	"net/http"
	"strconv"

	"glowstudio/models"
	"glowstudio/services/booking"
	"glowstudio/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking session flow and the ledger views.
// The client context comes from the X-Client-ID header; authentication of
// that identity happens outside this service.
type BookingHandler struct {
	Sessions booking.SessionService
	Ledger   booking.BookingLedger
	Logger   *zap.Logger
}

func NewBookingHandler(sessions booking.SessionService, ledger booking.BookingLedger, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Sessions: sessions, Ledger: ledger, Logger: logger}
}

func clientID(c *gin.Context) (string, bool) {
	id := c.GetHeader("X-Client-ID")
	if id == "" {
		utils.JSONError(c, http.StatusBadRequest, "missing client id", "X-Client-ID header is required")
		return "", false
	}
	return id, true
}

// respondBookingError maps the booking error taxonomy onto HTTP statuses.
func respondBookingError(c *gin.Context, err error) {
	switch {
	case booking.IsNotFound(err):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	case booking.IsPrecondition(err):
		utils.JSONError(c, http.StatusBadRequest, "booking step not allowed", err.Error())
	case booking.IsConflict(err):
		utils.JSONError(c, http.StatusConflict, "slot no longer available", err.Error())
	case booking.IsPersistence(err):
		utils.JSONError(c, http.StatusServiceUnavailable, "storage failure", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}

// StartBookingHandler begins a new draft for the given service.
func (h *BookingHandler) StartBookingHandler(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}
	var input struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	draft, err := h.Sessions.StartBooking(id, input.ServiceID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// SelectStaffHandler records the chosen staff member on the draft.
func (h *BookingHandler) SelectStaffHandler(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}
	var input struct {
		StaffID string `json:"staffId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	draft, err := h.Sessions.SelectStaff(id, input.StaffID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// SelectDateHandler records the date; any selected time is cleared.
func (h *BookingHandler) SelectDateHandler(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	draft, err := h.Sessions.SelectDate(id, input.Date)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// SelectTimeHandler records the slot start time.
func (h *BookingHandler) SelectTimeHandler(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}
	var input struct {
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	draft, err := h.Sessions.SelectTime(id, input.Time)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// SetCustomerInfoHandler records the contact fields on the draft.
func (h *BookingHandler) SetCustomerInfoHandler(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}
	var input struct {
		Name    string `json:"name" binding:"required"`
		Phone   string `json:"phone" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	draft, err := h.Sessions.SetCustomerInfo(id, input.Name, input.Phone, input.Comment)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// GetReadyHandler reports whether the draft has service, staff, date and time.
func (h *BookingHandler) GetReadyHandler(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"ready": h.Sessions.IsReady(id)})
}

// ConfirmHandler finalizes the draft. A 409 means the slot was taken between
// offer and confirm; the client should re-query slots and pick again.
func (h *BookingHandler) ConfirmHandler(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}
	confirmed, err := h.Sessions.Confirm(id)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	h.Logger.Info("booking confirmed",
		zap.String("bookingID", confirmed.ID),
		zap.String("staffID", confirmed.StaffID),
		zap.String("date", confirmed.Date),
		zap.String("time", confirmed.Time))
	c.JSON(http.StatusOK, gin.H{"booking": confirmed})
}

// ResetDraftHandler discards the active draft.
func (h *BookingHandler) ResetDraftHandler(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}
	if err := h.Sessions.ResetDraft(id); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}

// GetSlotsHandler computes available start times for ?staffId=&date=&duration=.
func (h *BookingHandler) GetSlotsHandler(c *gin.Context) {
	staffID := c.Query("staffId")
	date := c.Query("date")
	duration, err := strconv.Atoi(c.DefaultQuery("duration", "0"))
	if staffID == "" || date == "" || err != nil || duration <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid input",
			"staffId, date and a positive duration are required")
		return
	}

	slots, err := h.Sessions.AvailableSlots(staffID, date, duration)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// GetDatesHandler returns the date-picker strip for ?staffId=.
func (h *BookingHandler) GetDatesHandler(c *gin.Context) {
	staffID := c.Query("staffId")
	if staffID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "staffId is required")
		return
	}

	dates, err := h.Sessions.BookingDates(staffID)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dates": dates})
}

// GetUpcomingHandler lists the calling client's confirmed future bookings,
// soonest first.
func (h *BookingHandler) GetUpcomingHandler(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": filterByClient(h.Ledger.Upcoming(), id)})
}

// GetPastHandler lists the calling client's elapsed and cancelled bookings,
// latest first.
func (h *BookingHandler) GetPastHandler(c *gin.Context) {
	id, ok := clientID(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": filterByClient(h.Ledger.Past(), id)})
}

// filterByClient keeps only the bookings made by the given client. The ledger
// itself stays cross-client; occupancy derivation needs every booking.
func filterByClient(bookings []models.Booking, clientID string) []models.Booking {
	out := []models.Booking{}
	for _, b := range bookings {
		if b.ClientID == clientID {
			out = append(out, b)
		}
	}
	return out
}

// CancelBookingHandler cancels a confirmed booking by id.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	bookingID := c.Param("id")
	if err := h.Ledger.Cancel(bookingID); err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
