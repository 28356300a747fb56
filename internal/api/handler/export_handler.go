package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Jeyeeem21/RoomManagement/internal/service"
	"github.com/Jeyeeem21/RoomManagement/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves the timetable spreadsheet downloads.
type ExportHandler struct {
	exportSvc service.ExportService
}

func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// Faculty downloads one faculty member's weekly timetable.
// GET /api/v1/export/faculty?name=xxx
func (h *ExportHandler) Faculty(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		response.BadRequest(c, 14001, "name must not be empty")
		return
	}

	buf, filename, err := h.exportSvc.ExportFacultyTimetable(c.Request.Context(), name)
	if err != nil {
		response.InternalError(c)
		return
	}
	writeWorkbook(c, filename, buf.Bytes())
}

// Program downloads a program's per-section timetables.
// GET /api/v1/export/program?name=xxx
func (h *ExportHandler) Program(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		response.BadRequest(c, 14001, "name must not be empty")
		return
	}

	buf, filename, err := h.exportSvc.ExportProgramTimetable(c.Request.Context(), name)
	if err != nil {
		response.InternalError(c)
		return
	}
	writeWorkbook(c, filename, buf.Bytes())
}

func writeWorkbook(c *gin.Context, filename string, body []byte) {
	encoded := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encoded)
	c.Data(http.StatusOK, xlsxContentType, body)
}
