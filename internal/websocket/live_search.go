package websocket

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/repository"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/service"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/livesearch"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/pkg/logger"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		// CORS is enforced at the router level
		return true
	},
}

// LiveSearchHandler runs one debounced search session per connection. The
// client streams filter snapshots as it types; the server pushes loading and
// result updates back, never letting a stale response overwrite a newer one.
type LiveSearchHandler struct {
	cafeService service.CafeService
}

func NewLiveSearchHandler(cafeService service.CafeService) *LiveSearchHandler {
	return &LiveSearchHandler{
		cafeService: cafeService,
	}
}

func (h *LiveSearchHandler) Handle(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("WebSocket upgrade failed", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	defer conn.Close()

	// Updates arrive from timer goroutines; gorilla allows one writer at a time
	var writeMu sync.Mutex
	send := func(update livesearch.Update) {
		writeMu.Lock()
		defer writeMu.Unlock()
		if err := conn.WriteJSON(update); err != nil {
			logger.Debug("Live search write failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	session := livesearch.NewSession(c.Request.Context(), livesearch.ListingDelay, h.fetch, send)
	defer session.Close()

	for {
		var req livesearch.Request
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("Live search connection closed unexpectedly", map[string]interface{}{
					"error": err.Error(),
				})
			}
			return
		}
		session.Submit(req)
	}
}

// fetch runs one filter snapshot against the cafe listing
func (h *LiveSearchHandler) fetch(ctx context.Context, req livesearch.Request) (interface{}, error) {
	filter := repository.CafeFilter{
		Search: req.Query,
		Price:  repository.PriceBucket(req.Price),
		SortBy: repository.CafeSort(req.Sort),
		Limit:  service.CityPageSize,
	}

	for _, name := range req.Amenities {
		switch name {
		case "wifi":
			filter.Amenities.Wifi = true
		case "ac":
			filter.Amenities.AC = true
		case "parking":
			filter.Amenities.Parking = true
		case "socket", "outlets":
			filter.Amenities.Socket = true
		case "generator":
			filter.Amenities.Generator = true
		}
	}

	cafes, total, err := h.cafeService.SearchCafes(filter)
	if err != nil {
		return nil, err
	}

	return gin.H{
		"data":  cafes,
		"total": total,
	}, nil
}
