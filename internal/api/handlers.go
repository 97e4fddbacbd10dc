package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"city_pulse/internal/domain"
	"city_pulse/internal/service"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleCities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cities": s.cities.Cities()})
}

func (s *Server) runnerFor(c *gin.Context) (*service.Runner, bool) {
	pipeline := domain.Pipeline(c.Param("pipeline"))
	runner, ok := s.runners[pipeline]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown pipeline", "pipeline": string(pipeline)})
		return nil, false
	}
	return runner, true
}

func (s *Server) handleEnqueue(c *gin.Context) {
	runner, ok := s.runnerFor(c)
	if !ok {
		return
	}

	queue, err := runner.Enqueue(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusAccepted, queueStatus(queue))
}

func (s *Server) handleStatus(c *gin.Context) {
	runner, ok := s.runnerFor(c)
	if !ok {
		return
	}

	queue, err := runner.Status(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, queueStatus(queue))
}

func (s *Server) handleCancel(c *gin.Context) {
	runner, ok := s.runnerFor(c)
	if !ok {
		return
	}

	if err := runner.Cancel(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

func (s *Server) handlePublicationRun(c *gin.Context) {
	report, err := s.publication.Run(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "report": report})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (s *Server) handleSeed(c *gin.Context) {
	slug := c.Param("slug")

	var city *domain.City
	for _, candidate := range s.cities.Cities() {
		if candidate.Slug == slug {
			city = &candidate
			break
		}
	}
	if city == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown city", "slug": slug})
		return
	}

	months := 6
	if raw := c.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "months must be a positive integer"})
			return
		}
		months = parsed
	}

	report, err := s.discovery.Seed(c.Request.Context(), *city, months)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"city":     slug,
		"months":   months,
		"fetched":  report.Fetched,
		"inserted": report.Inserted,
		"errors":   report.Errors,
	})
}

func (s *Server) handleDryRunStart(c *gin.Context) {
	queue, total := s.reports.Start()
	c.JSON(http.StatusOK, gin.H{"queue": queue, "total": total})
}

func (s *Server) handleDryRunStep(c *gin.Context) {
	var req struct {
		Queue []string `json:"queue"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must carry the remaining queue"})
		return
	}

	batch, err := s.reports.Step(c.Request.Context(), req.Queue)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, batch)
}

func (s *Server) handleDryRunExport(c *gin.Context) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="contact-sync-dry-run.csv"`)
	if err := s.reports.WriteCSV(c.Writer); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	}
}

func (s *Server) handleListsReconcile(c *gin.Context) {
	mapping, err := s.contactSync.ReconcileLists(c.Request.Context(), s.cities.Cities())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "lists": mapping})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lists": mapping})
}

func queueStatus(queue *domain.Queue) gin.H {
	if queue == nil {
		return gin.H{"active": false}
	}
	return gin.H{
		"active":    true,
		"pipeline":  queue.Pipeline,
		"total":     queue.TotalCount,
		"remaining": len(queue.Items),
		"progress":  queue.Progress(),
	}
}
