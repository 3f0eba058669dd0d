// Package server exposes the chart of a set of cycles over http, with the
// focus driven by the client.
package server

import (
	"bytes"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/midbel/cycles"
	"github.com/midbel/cycles/internal/config"
	"github.com/midbel/cycles/internal/raster"
	"github.com/midbel/cycles/internal/render"
)

const maxWidth = 10000

type Server struct {
	cfg    config.Chart
	cycles cycles.Cycles
	log    *logrus.Entry

	mu    sync.Mutex
	focus cycles.Focus
}

func New(cfg config.Chart, cs cycles.Cycles, log *logrus.Entry) *Server {
	return &Server{
		cfg:    cfg,
		cycles: cs,
		log:    log,
	}
}

// Router registers the routes of the server on a new gin engine.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.logRequest())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/cycles", s.listCycles)
	r.GET("/chart.svg", s.chartSVG)
	r.GET("/chart.png", s.chartPNG)
	r.GET("/focus", s.getFocus)
	r.POST("/focus", s.moveFocus)
	r.DELETE("/focus", s.clearFocus)
	return r
}

type cycleView struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Arrival string    `json:"arrival"`
}

func (s *Server) listCycles(c *gin.Context) {
	list := make([]cycleView, 0, len(s.cycles))
	for _, cy := range s.cycles {
		list = append(list, cycleView{
			Start:   cy.Start,
			End:     cy.End,
			Arrival: cy.Arrival,
		})
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) chartSVG(c *gin.Context) {
	width, ok := s.width(c)
	if !ok {
		return
	}
	var (
		buf   bytes.Buffer
		focus = s.snapshot()
	)
	if err := render.SVG(&buf, s.cfg, s.cycles, width, &focus); err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, "image/svg+xml", buf.Bytes())
}

func (s *Server) chartPNG(c *gin.Context) {
	width, ok := s.width(c)
	if !ok {
		return
	}
	var (
		buf   bytes.Buffer
		focus = s.snapshot()
	)
	if err := raster.Write(&buf, "png", s.cfg, s.cycles, width, &focus); err != nil {
		s.fail(c, http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (s *Server) getFocus(c *gin.Context) {
	focus := s.snapshot()
	at, ok := focus.Current()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"focus": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"focus": at.UnixMilli()})
}

// moveFocus handles the pointer moving over the cycle starting at the
// milliseconds given by the at parameter.
func (s *Server) moveFocus(c *gin.Context) {
	ms, err := strconv.ParseInt(c.Query("at"), 10, 64)
	if err != nil {
		s.fail(c, http.StatusBadRequest, err)
		return
	}
	at := time.UnixMilli(ms).UTC()
	if _, ok := s.cycles.Find(at); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no cycle starting at the given time"})
		return
	}
	s.mu.Lock()
	changed := s.focus.Update(at)
	s.mu.Unlock()

	if changed {
		s.log.WithField("focus", at.Format(time.RFC3339)).Debug("focus moved")
	}
	c.JSON(http.StatusOK, gin.H{"focus": ms, "changed": changed})
}

func (s *Server) clearFocus(c *gin.Context) {
	s.mu.Lock()
	changed := s.focus.Clear()
	s.mu.Unlock()
	c.JSON(http.StatusOK, gin.H{"focus": nil, "changed": changed})
}

func (s *Server) snapshot() cycles.Focus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.focus
}

func (s *Server) width(c *gin.Context) (float64, bool) {
	str := c.Query("width")
	if str == "" {
		return s.cfg.Width, true
	}
	w, err := strconv.ParseFloat(str, 64)
	if err != nil || w <= 0 || w > maxWidth {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid width"})
		return 0, false
	}
	return w, true
}

func (s *Server) fail(c *gin.Context, code int, err error) {
	s.log.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
	c.JSON(code, gin.H{"error": err.Error()})
}

func (s *Server) logRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		c.Next()
		s.log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"elapsed": time.Since(now),
		}).Debug("request")
	}
}
