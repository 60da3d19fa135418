package rest

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/fortuna/boreas/internal/service"
	"github.com/fortuna/boreas/internal/store"
	"github.com/fortuna/boreas/internal/store/repository"
	"github.com/gorilla/mux"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	db            *store.Database
	gameService   *service.GameService
	playerService *service.PlayerService
	teamRepo      *repository.TeamRepository
}

// NewHandler creates a new handler
func NewHandler(db *store.Database) *Handler {
	return &Handler{
		db:            db,
		gameService:   service.NewGameService(db),
		playerService: service.NewPlayerService(db),
		teamRepo:      repository.NewTeamRepository(db),
	}
}

// HealthCheck handles health check requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	code := http.StatusOK
	if err := h.db.HealthCheck(); err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	respondJSON(w, code, map[string]string{
		"status":  status,
		"service": "boreas",
	})
}

// GetGamesByDate returns all games on a specific date
func (h *Handler) GetGamesByDate(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		dateStr = time.Now().Format("2006-01-02")
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
		return
	}

	games, err := h.gameService.GetGamesByDate(r.Context(), date)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch games", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"games": games,
		"count": len(games),
	})
}

// GetGame returns a specific game by id
func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathInt(r, "gameID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid game id", err)
		return
	}

	game, err := h.gameService.GetGame(r.Context(), gameID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Game not found", err)
		return
	}

	respondJSON(w, http.StatusOK, game)
}

// GetGameEvents returns a game's play-by-play events, optionally
// filtered by ?type=
func (h *Handler) GetGameEvents(w http.ResponseWriter, r *http.Request) {
	gameID, err := pathInt(r, "gameID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid game id", err)
		return
	}

	eventType := r.URL.Query().Get("type")

	events, err := h.gameService.GetGameEvents(r.Context(), gameID, eventType)
	if err != nil {
		respondError(w, http.StatusNotFound, "Events not found", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"events": events,
		"count":  len(events),
	})
}

// GetPlayer returns a specific player by id
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID, err := pathInt(r, "playerID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid player id", err)
		return
	}

	player, err := h.playerService.GetPlayer(r.Context(), playerID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Player not found", err)
		return
	}

	respondJSON(w, http.StatusOK, player)
}

// SearchPlayers returns players matching ?q=
func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		respondError(w, http.StatusBadRequest, "Missing query parameter q", nil)
		return
	}

	limit := 25
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 100 {
			limit = l
		}
	}

	players, err := h.playerService.SearchPlayers(r.Context(), query, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to search players", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"players": players,
		"count":   len(players),
	})
}

// GetTeams returns all known teams
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamRepo.GetAll(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to fetch teams", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"teams": teams,
		"count": len(teams),
	})
}

// GetTeam returns a specific team by id
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := pathInt(r, "teamID")
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid team id", err)
		return
	}

	team, err := h.teamRepo.GetByID(r.Context(), teamID)
	if err != nil {
		respondError(w, http.StatusNotFound, "Team not found", err)
		return
	}

	respondJSON(w, http.StatusOK, team)
}

func pathInt(r *http.Request, name string) (int, error) {
	vars := mux.Vars(r)
	return strconv.Atoi(vars[name])
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}

	if err != nil {
		response["details"] = err.Error()
	}

	json.NewEncoder(w).Encode(response)
}
