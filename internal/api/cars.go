package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yuewang-420/oraclecms-car-stock-api-demo/internal/inventory"
)

// carNotFoundMessage is the single message for every not-found outcome.
// A car owned by another dealer reports the same message as a car that
// does not exist, so ownership never leaks.
const carNotFoundMessage = "car not found"

// ─── Request Types ─────────────────────────────────────────────────

type addCarRequest struct {
	Make       string `json:"Make"`
	Model      string `json:"Model"`
	Year       int    `json:"Year"`
	StockLevel int    `json:"StockLevel"`
}

type deleteCarRequest struct {
	ID int64 `json:"Id"`
}

type updateStockRequest struct {
	ID            int64 `json:"Id"`
	NewStockLevel int   `json:"NewStockLevel"`
}

type searchCarsRequest struct {
	Make  string `json:"Make"`
	Model string `json:"Model"`
}

// ─── Handlers ──────────────────────────────────────────────────────

// handleListCars returns all cars owned by the authenticated dealer.
// An empty inventory returns an empty array, not an error.
func (s *Server) handleListCars(w http.ResponseWriter, r *http.Request) {
	dealerID, ok := dealerIDFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, authErrorMessage)
		return
	}

	cars, err := s.inventory.ListByDealer(r.Context(), dealerID)
	if err != nil {
		s.logger.Error("list cars failed", "error", err, "dealer_id", dealerID)
		writeInternalError(w, "failed to list cars")
		return
	}

	writeJSON(w, http.StatusOK, cars)
}

// handleAddCar validates and inserts a car owned by the authenticated dealer.
func (s *Server) handleAddCar(w http.ResponseWriter, r *http.Request) {
	dealerID, ok := dealerIDFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, authErrorMessage)
		return
	}

	var req addCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if fieldErrs := inventory.ValidateNewCar(req.Make, req.Model, req.Year, req.StockLevel); fieldErrs != nil {
		writeValidationError(w, fieldErrs)
		return
	}

	car := &inventory.Car{
		Make:       req.Make,
		Model:      req.Model,
		Year:       req.Year,
		StockLevel: req.StockLevel,
		DealerID:   dealerID,
	}

	if err := s.inventory.Add(r.Context(), car); err != nil {
		s.logger.Error("add car failed", "error", err, "dealer_id", dealerID)
		writeInternalError(w, "failed to add car")
		return
	}

	s.logger.Info("car added", "car_id", car.ID, "dealer_id", dealerID)
	writeJSON(w, http.StatusOK, messageResponse{Message: "car added"})
}

// handleDeleteCar removes a car owned by the authenticated dealer.
func (s *Server) handleDeleteCar(w http.ResponseWriter, r *http.Request) {
	dealerID, ok := dealerIDFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, authErrorMessage)
		return
	}

	var req deleteCarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if err := s.inventory.Delete(r.Context(), req.ID, dealerID); err != nil {
		if errors.Is(err, inventory.ErrCarNotFound) {
			writeNotFound(w, carNotFoundMessage)
			return
		}
		s.logger.Error("delete car failed", "error", err, "dealer_id", dealerID)
		writeInternalError(w, "failed to delete car")
		return
	}

	s.logger.Info("car deleted", "car_id", req.ID, "dealer_id", dealerID)
	writeJSON(w, http.StatusOK, messageResponse{Message: "car deleted"})
}

// handleUpdateStock changes the stock level of a car owned by the
// authenticated dealer.
func (s *Server) handleUpdateStock(w http.ResponseWriter, r *http.Request) {
	dealerID, ok := dealerIDFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, authErrorMessage)
		return
	}

	var req updateStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if req.NewStockLevel < 0 {
		writeValidationError(w, []inventory.FieldError{
			{Field: "NewStockLevel", Message: "must not be negative"},
		})
		return
	}

	if err := s.inventory.UpdateStock(r.Context(), req.ID, dealerID, req.NewStockLevel); err != nil {
		if errors.Is(err, inventory.ErrCarNotFound) {
			writeNotFound(w, carNotFoundMessage)
			return
		}
		s.logger.Error("update stock failed", "error", err, "dealer_id", dealerID)
		writeInternalError(w, "failed to update stock level")
		return
	}

	s.logger.Info("stock level updated", "car_id", req.ID, "dealer_id", dealerID, "stock_level", req.NewStockLevel)
	writeJSON(w, http.StatusOK, messageResponse{Message: "stock level updated"})
}

// handleSearchCars returns the authenticated dealer's cars matching the
// optional make/model filters. Empty filters are ignored; no matches
// returns an empty array.
func (s *Server) handleSearchCars(w http.ResponseWriter, r *http.Request) {
	dealerID, ok := dealerIDFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, authErrorMessage)
		return
	}

	var req searchCarsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	cars, err := s.inventory.Search(r.Context(), dealerID, inventory.SearchFilter{
		Make:  req.Make,
		Model: req.Model,
	})
	if err != nil {
		s.logger.Error("search cars failed", "error", err, "dealer_id", dealerID)
		writeInternalError(w, "failed to search cars")
		return
	}

	writeJSON(w, http.StatusOK, cars)
}
