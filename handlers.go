package traintracker

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/theoremus-urban-solutions/local-train-tracker/chart"
	"github.com/theoremus-urban-solutions/local-train-tracker/dataset"
	"github.com/theoremus-urban-solutions/local-train-tracker/formatter"
)

func (a *App) handleStations(c *gin.Context) {
	c.JSON(http.StatusOK, formatter.WrapStationsResponse(a.Dataset.Stations()))
}

func (a *App) handleTrain(c *gin.Context) {
	format, err := normalizeFormat(c.Query("format"), FormatJSON, FormatText, FormatXML)
	if err != nil {
		writeError(c, http.StatusBadRequest, FormatJSON, err.Error())
		return
	}
	number, err := ensureTrainNumber(c.Param("number"))
	if err != nil {
		writeError(c, statusFor(err), format, err.Error())
		return
	}

	res, err := a.Train(number)
	if err != nil {
		if errors.Is(err, dataset.ErrTrainNotFound) {
			writeError(c, http.StatusNotFound, format, err.Error())
			return
		}
		log.Printf("train %s: %v", number, err)
		writeError(c, statusFor(err), format, err.Error())
		return
	}

	switch format {
	case FormatText:
		c.String(http.StatusOK, formatter.TrainSummary(res.Train))
	case FormatXML:
		c.Data(http.StatusOK, "application/xml", formatter.NewResponseBuilder().BuildTrainXML(res))
	default:
		a.writeJSON(c, res)
	}
}

func (a *App) handleRoute(c *gin.Context) {
	format, err := normalizeFormat(c.Query("format"), FormatJSON, FormatText, FormatXML, FormatPB)
	if err != nil {
		writeError(c, http.StatusBadRequest, FormatJSON, err.Error())
		return
	}
	from, to, err := ensureStations(c.Query("from"), c.Query("to"))
	if err != nil {
		writeError(c, statusFor(err), format, err.Error())
		return
	}

	if format == FormatPB {
		buf, err := a.RouteTripUpdates(from, to, time.Now())
		if err != nil {
			log.Printf("route %s -> %s: %v", from, to, err)
			writeError(c, http.StatusInternalServerError, FormatJSON, err.Error())
			return
		}
		c.Data(http.StatusOK, "application/x-protobuf", buf)
		return
	}

	res, err := a.Route(from, to)
	if err != nil {
		log.Printf("route %s -> %s: %v", from, to, err)
		writeError(c, statusFor(err), format, err.Error())
		return
	}

	switch format {
	case FormatText:
		if res.Count == 0 {
			c.String(http.StatusOK, formatter.NoTrainsMessage(from, to))
			return
		}
		c.String(http.StatusOK, formatter.RouteSummary(res.Trains))
	case FormatXML:
		c.Data(http.StatusOK, "application/xml", formatter.NewResponseBuilder().BuildRouteXML(res))
	default:
		a.writeJSON(c, res)
	}
}

func (a *App) handleRouteChart(c *gin.Context) {
	from, to, err := ensureStations(c.Query("from"), c.Query("to"))
	if err != nil {
		writeError(c, statusFor(err), FormatJSON, err.Error())
		return
	}

	img, err := a.RouteChart(from, to)
	if err != nil {
		if errors.Is(err, chart.ErrNoBars) {
			writeError(c, http.StatusNotFound, FormatJSON, formatter.NoTrainsMessage(from, to))
			return
		}
		log.Printf("chart %s -> %s: %v", from, to, err)
		writeError(c, http.StatusInternalServerError, FormatJSON, err.Error())
		return
	}
	c.Data(http.StatusOK, a.Renderer.ContentType(), img)
}

func (a *App) writeJSON(c *gin.Context, res any) {
	buf, err := formatter.NewResponseBuilder().BuildJSON(res)
	if err != nil {
		writeError(c, http.StatusInternalServerError, FormatJSON, err.Error())
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", buf)
}
