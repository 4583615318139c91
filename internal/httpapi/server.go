// Package httpapi exposes the store over HTTP for the browser client.
// It is a thin translation layer: the same operations and error taxonomy as
// the CLI, mapped to JSON bodies and status codes.
package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/hutch/internal/inventory"
	"github.com/mesh-intelligence/hutch/internal/sqlite"
	"github.com/mesh-intelligence/hutch/pkg/types"
)

// Server handles the HTTP surface over one store.
type Server struct {
	store  *sqlite.Store
	logger *zap.Logger
}

// New wires the gin engine with all routes and middlewares.
func New(store *sqlite.Store, logger *zap.Logger) (*Server, *gin.Engine) {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{store: store, logger: logger}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/items", s.getItems)
	r.GET("/locations", s.getLocations)
	r.POST("/items", s.createItem)
	r.POST("/items/:id", s.updateItem)
	r.GET("/locations/:id/next-item-bin", s.nextItemBin)

	return s, r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)))
	}
}

// itemJSON is the wire shape of an item. The id key is object_id, which is
// what the browser client expects.
type itemJSON struct {
	ObjectID   string `json:"object_id"`
	LocationID string `json:"location_id"`
	Location   string `json:"location"`
	BinNo      int    `json:"bin_no"`
	Name       string `json:"name"`
	Size       string `json:"size"`
}

func toItemJSON(i types.Item) itemJSON {
	return itemJSON{
		ObjectID:   i.ItemID,
		LocationID: i.Location.LocationID,
		Location:   i.Location.Name,
		BinNo:      i.BinNo,
		Name:       i.Name,
		Size:       string(i.Size),
	}
}

func (s *Server) getItems(c *gin.Context) {
	var (
		items []types.Item
		err   error
	)
	if q := c.Query("q"); q != "" {
		items, err = s.store.ItemsMatching(q)
	} else {
		items, err = s.store.Items()
	}
	if err != nil {
		s.fail(c, err)
		return
	}

	out := make([]itemJSON, 0, len(items))
	for _, item := range items {
		out = append(out, toItemJSON(item))
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) getLocations(c *gin.Context) {
	locs, err := s.store.Locations()
	if err != nil {
		s.fail(c, err)
		return
	}
	if locs == nil {
		locs = []types.Location{}
	}
	c.JSON(http.StatusOK, locs)
}

type itemCreateRequest struct {
	LocationID string `json:"location_id" binding:"required"`
	BinNo      int    `json:"bin_no" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Size       string `json:"size" binding:"required"`
}

func (s *Server) createItem(c *gin.Context) {
	var req itemCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	size, err := types.ParseSize(req.Size)
	if err != nil {
		s.fail(c, err)
		return
	}

	item, err := s.store.AddItem(req.LocationID, req.BinNo, req.Name, size)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"object_id": item.ItemID})
}

type itemUpdateRequest struct {
	LocationID *string `json:"location_id"`
	BinNo      *int    `json:"bin_no"`
	Name       *string `json:"name"`
	Size       *string `json:"size"`
}

func (s *Server) updateItem(c *gin.Context) {
	var req itemUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := types.ItemPatch{
		LocationID: req.LocationID,
		BinNo:      req.BinNo,
		Name:       req.Name,
	}
	if req.Size != nil {
		size, err := types.ParseSize(*req.Size)
		if err != nil {
			s.fail(c, err)
			return
		}
		patch.Size = &size
	}

	if err := s.store.UpdateItem(c.Param("id"), patch); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{})
}

func (s *Server) nextItemBin(c *gin.Context) {
	loc, err := s.store.LocationByID(c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}

	bin, err := inventory.NextBin(s.store, loc)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bin_no": bin})
}

// fail translates the domain error taxonomy to a status code.
func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, types.ErrLocationNotFound),
		errors.Is(err, types.ErrUnknownLocation),
		errors.Is(err, types.ErrItemNotFound):
		status = http.StatusNotFound
	case errors.Is(err, types.ErrDuplicateLocation),
		errors.Is(err, types.ErrAmbiguousLocation):
		status = http.StatusConflict
	case errors.Is(err, types.ErrBinOutOfRange),
		errors.Is(err, types.ErrLocationHasNoBins),
		errors.Is(err, types.ErrInvalidName),
		errors.Is(err, types.ErrInvalidSize),
		errors.Is(err, types.ErrInvalidBinNumber):
		status = http.StatusBadRequest
	}

	if status == http.StatusInternalServerError && s.logger != nil {
		s.logger.Error("request failed", zap.Error(err))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
