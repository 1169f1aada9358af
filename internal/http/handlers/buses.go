package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"busbooking/internal/domain/models"
	"busbooking/internal/repositories"

	"github.com/gin-gonic/gin"
)

type busPayload struct {
	Name          string `json:"name" binding:"required"`
	Number        string `json:"number"`
	RouteFrom     string `json:"route_from"`
	RouteTo       string `json:"route_to"`
	DepartureDate string `json:"departure_date"`
	DepartureTime string `json:"departure_time"`
	PricePerSeat  int64  `json:"price_per_seat"`
	SeatCount     int    `json:"seat_count"`
}

func (p busPayload) toModel() models.Bus {
	return models.Bus{
		Name:          p.Name,
		Number:        p.Number,
		RouteFrom:     p.RouteFrom,
		RouteTo:       p.RouteTo,
		DepartureDate: p.DepartureDate,
		DepartureTime: p.DepartureTime,
		PricePerSeat:  p.PricePerSeat,
	}
}

// GET /api/buses
func GetBuses(c *gin.Context) {
	buses, err := repositories.BusRepository{}.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list buses", err)
		return
	}
	c.JSON(http.StatusOK, buses)
}

// GET /api/buses/:id
func GetBusByID(c *gin.Context) {
	id, ok := IDParamOrError(c, "id")
	if !ok {
		return
	}
	bus, err := repositories.BusRepository{}.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondError(c, http.StatusNotFound, "bus not found", nil)
			return
		}
		RespondError(c, http.StatusInternalServerError, "failed to load bus", err)
		return
	}
	c.JSON(http.StatusOK, bus)
}

// POST /api/buses
func CreateBus(c *gin.Context) {
	var req busPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	repo := repositories.BusRepository{}
	id, err := repo.Create(req.toModel(), req.SeatCount)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create bus", err)
		return
	}
	bus, err := repo.GetByID(id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load created bus", err)
		return
	}
	c.JSON(http.StatusCreated, bus)
}

// PUT /api/buses/:id
func UpdateBus(c *gin.Context) {
	id, ok := IDParamOrError(c, "id")
	if !ok {
		return
	}
	var req busPayload
	if !BindJSONOrError(c, &req) {
		return
	}
	repo := repositories.BusRepository{}
	if err := repo.Update(id, req.toModel()); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondError(c, http.StatusNotFound, "bus not found", nil)
			return
		}
		RespondError(c, http.StatusInternalServerError, "failed to update bus", err)
		return
	}
	bus, err := repo.GetByID(id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load updated bus", err)
		return
	}
	c.JSON(http.StatusOK, bus)
}

// DELETE /api/buses/:id
func DeleteBus(c *gin.Context) {
	id, ok := IDParamOrError(c, "id")
	if !ok {
		return
	}
	if err := (repositories.BusRepository{}).Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondError(c, http.StatusNotFound, "bus not found", nil)
			return
		}
		RespondError(c, http.StatusInternalServerError, "failed to delete bus", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/buses/:id/seats
func GetBusSeats(c *gin.Context) {
	id, ok := IDParamOrError(c, "id")
	if !ok {
		return
	}
	seats, err := repositories.SeatRepository{}.ListByBus(id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to list seats", err)
		return
	}
	c.JSON(http.StatusOK, seats)
}
