// Package server exposes the purchase tracker over a small JSON HTTP API,
// for apps and scripts that prefer HTTP over the CLI.
package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mkrogh/kurv"
)

// Server holds the tracker behind the HTTP handlers.
type Server struct {
	tracker *kurv.Tracker
}

// New creates a server over a loaded tracker.
func New(tracker *kurv.Tracker) *Server {
	return &Server{tracker: tracker}
}

// Router builds the gin engine with every route mounted.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	records := r.Group("/records")
	{
		records.GET("", s.listRecords)
		records.POST("", s.createRecord)
		records.GET("/:id", s.getRecord)
		records.PUT("/:id", s.updateRecord)
		records.DELETE("/:id", s.deleteRecord)
	}

	r.GET("/compare/:product", s.compare)
	r.GET("/values/:field", s.values)
	r.GET("/summary", s.summary)

	return r
}

// listRecords applies the same filter and sort query parameters as the CLI
// list command.
func (s *Server) listRecords(c *gin.Context) {
	key := kurv.SortByDate
	if v := c.Query("sort"); v != "" {
		var err error
		key, err = kurv.ParseSortKey(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	unit := c.Query("unit")
	if unit != "" {
		if _, err := kurv.ParseUnit(unit); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	filter := kurv.Filter{
		Product: c.Query("product"),
		Store:   c.Query("store"),
		Unit:    kurv.Unit(unit),
	}
	c.JSON(http.StatusOK, s.tracker.List(filter, key))
}

func (s *Server) createRecord(c *gin.Context) {
	var body kurv.PurchaseRecord
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	record, err := s.tracker.Create(c.Request.Context(), body)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (s *Server) getRecord(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	record := s.tracker.Record(id)
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such purchase"})
		return
	}
	c.JSON(http.StatusOK, record)
}

func (s *Server) updateRecord(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if s.tracker.Record(id) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such purchase"})
		return
	}
	var body kurv.PurchaseRecord
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	body.ID = id
	if err := s.tracker.Update(c.Request.Context(), body); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, body)
}

func (s *Server) deleteRecord(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := s.tracker.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) compare(c *gin.Context) {
	comparisons, err := s.tracker.CompareByProduct(c.Param("product"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if comparisons == nil {
		comparisons = []kurv.PriceComparison{}
	}
	c.JSON(http.StatusOK, comparisons)
}

func (s *Server) values(c *gin.Context) {
	field, err := kurv.ParseField(c.Param("field"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	values := s.tracker.UniqueValuesOf(field)
	if values == nil {
		values = []string{}
	}
	c.JSON(http.StatusOK, values)
}

func (s *Server) summary(c *gin.Context) {
	records := s.tracker.Records()
	counts := make(map[string]int)
	for _, r := range records {
		counts[r.StoreName]++
	}
	c.JSON(http.StatusOK, gin.H{
		"total":    s.tracker.Total(),
		"currency": kurv.AnchorCurrency,
		"count":    len(records),
		"stores":   counts,
	})
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return 0, false
	}
	return id, true
}

// statusFor maps validation failures to 422 and everything else to 500.
func statusFor(err error) int {
	var unit kurv.UnsupportedUnitError
	var currency kurv.UnsupportedCurrencyError
	if errors.As(err, &unit) || errors.As(err, &currency) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
