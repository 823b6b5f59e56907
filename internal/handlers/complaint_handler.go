package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hosteldesk/complaint-service/internal/models"
	"github.com/hosteldesk/complaint-service/internal/services"
	"github.com/hosteldesk/complaint-service/internal/utils"
)

const emptyHistoryMessage = "Looks like you haven't submitted any complaints yet."

type ComplaintHandler struct {
	BaseHandler
	service services.ComplaintService
	export  services.ExportService
}

func NewComplaintHandler(service services.ComplaintService, export services.ExportService, logger utils.Logger) *ComplaintHandler {
	return &ComplaintHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		export:      export,
	}
}

// Submit creates a complaint owned by the session identity and returns the
// confirmation page, which sends the client back to the main page after a
// short delay.
func (h *ComplaintHandler) Submit(c *gin.Context) {
	identity, _ := IdentityFromContext(c)

	var req services.CreateComplaintRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusInternalServerError, "An error occurred while submitting the complaint."+err.Error())
		return
	}

	h.LogRequest(c, "submitting complaint", "regno", identity.RegNo)

	if _, err := h.service.Submit(c.Request.Context(), identity, &req); err != nil {
		h.LogError(c, err, "complaint submit failed")
		c.String(http.StatusInternalServerError, "An error occurred while submitting the complaint."+err.Error())
		return
	}

	c.HTML(http.StatusOK, "confirmation", nil)
}

// StudentComplaints lists the caller's own complaints. The :regno route
// parameter is accepted for compatibility but the session identity is
// authoritative; a mismatch is logged and ignored.
func (h *ComplaintHandler) StudentComplaints(c *gin.Context) {
	identity, _ := IdentityFromContext(c)

	if param := c.Param("regno"); param != "" && models.NormalizeRegNo(param) != models.NormalizeRegNo(identity.RegNo) {
		h.LogRequest(c, "regno param ignored in favor of session identity",
			"param", param, "session_regno", identity.RegNo)
	}

	complaints, err := h.service.ListForStudent(c.Request.Context(), identity.RegNo)
	if err != nil {
		h.LogError(c, err, "student listing failed")
		c.String(http.StatusInternalServerError, "An error occurred while retrieving data.")
		return
	}

	view := historyView{CanDelete: true}
	if len(complaints) == 0 {
		view.Message = emptyHistoryMessage
	} else {
		for i := range complaints {
			view.Complaints = append(view.Complaints, toRow(&complaints[i], complaints[i].RegNo))
		}
	}

	c.HTML(http.StatusOK, "complaints_history", view)
}

// TechnicianComplaints lists every complaint joined with its student. The
// rendering contract, including the empty-state message, is shared with the
// student view.
func (h *ComplaintHandler) TechnicianComplaints(c *gin.Context) {
	rows, err := h.service.ListForTechnician(c.Request.Context())
	if err != nil {
		h.LogError(c, err, "technician listing failed")
		c.String(http.StatusInternalServerError, "An error occurred while retrieving data.")
		return
	}

	var view historyView
	if len(rows) == 0 {
		view.Message = emptyHistoryMessage
	} else {
		for i := range rows {
			view.Complaints = append(view.Complaints, toRow(&rows[i].Complaint, rows[i].StudentRegNo))
		}
	}

	c.HTML(http.StatusOK, "complaints_history", view)
}

// MarkSolved applies the Unsolved -> Solved transition and redirects back to
// the caller's listing. Zero rows affected is a 404.
func (h *ComplaintHandler) MarkSolved(c *gin.Context) {
	identity, _ := IdentityFromContext(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "Complaint not found or unauthorized.")
		return
	}

	if err := h.service.MarkSolved(c.Request.Context(), identity, id); err != nil {
		if errors.Is(err, services.ErrComplaintNotFound) {
			c.String(http.StatusNotFound, "Complaint not found or unauthorized.")
			return
		}
		h.LogError(c, err, "mark solved failed", "complaint_id", id)
		c.String(http.StatusInternalServerError, "An error occurred while updating the complaint status.")
		return
	}

	if identity.Role == models.RoleTechnician {
		c.Redirect(http.StatusFound, "/complaints/students")
		return
	}
	c.Redirect(http.StatusFound, "/studentComplaints/"+identity.RegNo)
}

// Delete removes the caller's own complaint. This is the only endpoint with
// a JSON success/error contract.
func (h *ComplaintHandler) Delete(c *gin.Context) {
	identity, _ := IdentityFromContext(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Complaint not found or unauthorized."})
		return
	}

	if err := h.service.Delete(c.Request.Context(), identity, id); err != nil {
		if errors.Is(err, services.ErrComplaintNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Complaint not found or unauthorized."})
			return
		}
		h.LogError(c, err, "delete failed", "complaint_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while deleting the complaint."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Complaint deleted successfully."})
}

// Export streams the technician XLSX report.
func (h *ComplaintHandler) Export(c *gin.Context) {
	file, err := h.export.ExportComplaints(c.Request.Context())
	if err != nil {
		h.LogError(c, err, "export failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to export complaints", Details: err.Error()})
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="complaints.xlsx"`)
	if err := file.Write(c.Writer); err != nil {
		h.LogError(c, err, "export write failed")
	}
}

func toRow(complaint *models.Complaint, regno string) complaintRow {
	return complaintRow{
		ID:          complaint.ID,
		RegNo:       regno,
		Email:       complaint.Email,
		Hostel:      complaint.Hostel,
		FloorNo:     complaint.FloorNo,
		RoomNo:      complaint.RoomNo,
		PhoneNo:     complaint.PhoneNo,
		Description: complaint.Description,
		CreatedAt:   complaint.FormatCreatedAt(),
		Status:      string(complaint.Status),
		Solved:      complaint.IsSolved(),
	}
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
