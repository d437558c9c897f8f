package controllers

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"farmsoc-api/config"
	"farmsoc-api/models"
)

type EventController struct{}

const eventColumns = `e.id, e.farmer_id, e.title, e.description, e.date, e.time, e.location, e.image,
	e.attendees, e.is_free, e.price, e.is_published, e.created_at`

func scanEvent(row interface{ Scan(dest ...any) error }, e *models.Event) error {
	return row.Scan(
		&e.ID, &e.FarmerID, &e.Title, &e.Description, &e.Date, &e.Time, &e.Location, &e.Image,
		&e.Attendees, &e.IsFree, &e.Price, &e.IsPublished, &e.CreatedAt,
	)
}

// @Summary Get events
// @Description Get published events with organizer info
// @Tags Events
// @Produce json
// @Success 200 {object} models.Response
// @Router /events [get]
func (ctrl *EventController) GetEvents(c *gin.Context) {
	rows, err := config.DB.Query(context.Background(),
		`SELECT `+eventColumns+`, f.id, f.name, f.avatar
		 FROM events e
		 JOIN farmers f ON f.id = e.farmer_id
		 WHERE e.is_published = true
		 ORDER BY e.date`)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve events"})
		return
	}
	defer rows.Close()

	events := []models.EventWithOrganizer{}
	for rows.Next() {
		var e models.EventWithOrganizer
		err := rows.Scan(
			&e.ID, &e.FarmerID, &e.Title, &e.Description, &e.Date, &e.Time, &e.Location, &e.Image,
			&e.Attendees, &e.IsFree, &e.Price, &e.IsPublished, &e.CreatedAt,
			&e.Organizer.ID, &e.Organizer.Name, &e.Organizer.Avatar,
		)
		if err != nil {
			log.Println("Event scan error:", err)
			continue
		}
		events = append(events, e)
	}

	c.JSON(200, gin.H{"success": true, "message": "Events retrieved successfully", "data": events})
}

// @Summary Get my events
// @Description Get the signed-in farmer's events, drafts included
// @Tags Events
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /farmer/events [get]
func (ctrl *EventController) GetFarmerEvents(c *gin.Context) {
	farmerID := c.GetString("user_id")

	rows, err := config.DB.Query(context.Background(),
		`SELECT `+eventColumns+` FROM events e WHERE e.farmer_id = $1 ORDER BY e.created_at DESC`,
		farmerID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to retrieve events"})
		return
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var e models.Event
		if err := scanEvent(rows, &e); err != nil {
			log.Println("Event scan error:", err)
			continue
		}
		events = append(events, e)
	}

	c.JSON(200, gin.H{"success": true, "message": "Events retrieved successfully", "data": events})
}

// @Summary Create event
// @Description Create a draft event (farmer only). Free events must not carry a price
// @Tags Events
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body models.CreateEventRequest true "Event data"
// @Success 201 {object} models.Response
// @Router /events [post]
func (ctrl *EventController) CreateEvent(c *gin.Context) {
	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "error": err.Error()})
		return
	}

	if req.IsFree {
		req.Price = nil
	} else if req.Price == nil {
		c.JSON(400, gin.H{"success": false, "message": "Paid events require a price"})
		return
	}

	event := models.Event{
		ID:          uuid.NewString(),
		FarmerID:    c.GetString("user_id"),
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Image:       req.Image,
		IsFree:      req.IsFree,
		Price:       req.Price,
		CreatedAt:   time.Now(),
	}

	_, err := config.DB.Exec(context.Background(),
		`INSERT INTO events (id, farmer_id, title, description, date, time, location, image, attendees, is_free, price, is_published, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 0, $9, $10, false, $11)`,
		event.ID, event.FarmerID, event.Title, event.Description, event.Date, event.Time,
		event.Location, event.Image, event.IsFree, event.Price, event.CreatedAt)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create event"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Event created successfully", "data": event})
}

// @Summary Publish event
// @Description Make a draft event visible to consumers
// @Tags Events
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /events/{id}/publish [patch]
func (ctrl *EventController) PublishEvent(c *gin.Context) {
	farmerID := c.GetString("user_id")

	tag, err := config.DB.Exec(context.Background(),
		`UPDATE events SET is_published = true WHERE id = $1 AND farmer_id = $2`,
		c.Param("id"), farmerID)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to publish event"})
		return
	}
	if tag.RowsAffected() == 0 {
		c.JSON(404, gin.H{"success": false, "message": "Event not found"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Event published"})
}
