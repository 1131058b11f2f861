package traintracker

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/theoremus-urban-solutions/local-train-tracker/formatter"
)

// writeError answers with msg in the requested format
func writeError(c *gin.Context, status int, format, msg string) {
	switch format {
	case FormatText:
		c.String(status, msg)
	case FormatXML:
		c.Data(status, "application/xml", buildErrorXML(msg))
	default:
		c.JSON(status, formatter.ErrorResponse{Error: msg})
	}
}

func buildErrorXML(msg string) []byte {
	return []byte("<ErrorResponse><Error>" + formatter.EscapeXML(msg) + "</Error></ErrorResponse>")
}

// statusFor maps an error from a query to its HTTP status
func statusFor(err error) int {
	switch err.(type) {
	case *QueryError:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
