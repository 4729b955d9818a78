package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jeonseguard/community-api/internal/core/ports"
)

type FraudHandler struct {
	fraudService ports.FraudService
}

func NewFraudHandler(fraudService ports.FraudService) *FraudHandler {
	return &FraudHandler{fraudService: fraudService}
}

// Region handles GET /api/fraud/region: fraud cases for one neighborhood.
//
// @Summary      Fraud cases by region
// @Tags         fraud
// @Produce      json
// @Param        city          query     string  true  "City"
// @Param        district      query     string  true  "District"
// @Param        neighborhood  query     string  true  "Neighborhood"
// @Success      200           {array}   domain.FraudCase
// @Failure      400           {object}  map[string]string
// @Router       /api/fraud/region [get]
func (h *FraudHandler) Region(c echo.Context) error {
	city := c.QueryParam("city")
	district := c.QueryParam("district")
	neighborhood := c.QueryParam("neighborhood")
	if city == "" || district == "" || neighborhood == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "city, district and neighborhood are required")
	}

	cases, err := h.fraudService.CasesByRegion(c.Request().Context(), city, district, neighborhood)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cases)
}

// Stats handles GET /api/fraud/stats: yearly counts per district.
//
// @Summary      Yearly fraud statistics
// @Tags         fraud
// @Produce      json
// @Param        year  query     int  false  "Year (defaults to the current year)"
// @Success      200   {array}   domain.FraudStat
// @Router       /api/fraud/stats [get]
func (h *FraudHandler) Stats(c echo.Context) error {
	year, err := strconv.Atoi(c.QueryParam("year"))
	if err != nil || year <= 0 {
		year = time.Now().UTC().Year()
	}

	stats, err := h.fraudService.StatsByYear(c.Request().Context(), year)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
