package handlers

import (
	"net/http"
	"time"

	"github.com/StillwaterStudio/stillwater-go/internal/application/services"
	"github.com/StillwaterStudio/stillwater-go/internal/infrastructure/observability/logging"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	previewWriteWait = 10 * time.Second
	previewPongWait  = 60 * time.Second
)

var previewUpgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		// CORS already gates the REST surface; the editor connects from the
		// same origins.
		return true
	},
}

// PreviewSocketHandlers streams live preview renders to the editor. Each
// inbound frame is a document plus optional settings; the reply is the
// compiled fragment for it.
type PreviewSocketHandlers struct {
	pageService *services.PageService
	logger      *logging.ChanneledLogger
}

// NewPreviewSocketHandlers creates preview socket handlers.
func NewPreviewSocketHandlers(pageService *services.PageService, logger *logging.ChanneledLogger) *PreviewSocketHandlers {
	return &PreviewSocketHandlers{
		pageService: pageService,
		logger:      logger,
	}
}

// Stream upgrades the connection and renders every document frame the editor
// sends until the client disconnects.
func (h *PreviewSocketHandlers) Stream(c *gin.Context) {
	conn, err := previewUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.LogError(logging.ChannelRender, "preview_upgrade", err)
		return
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(previewPongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(previewPongWait))
		return nil
	})

	h.logger.Render().Debug("Preview socket connected", "remote", conn.RemoteAddr().String())

	for {
		var req PreviewRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Render().Warn("Preview socket closed unexpectedly", "error", err.Error())
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(previewPongWait))

		result := h.pageService.PreviewFragment(req.Doc, req.Settings)

		conn.SetWriteDeadline(time.Now().Add(previewWriteWait))
		if err := conn.WriteJSON(result); err != nil {
			h.logger.Render().Warn("Preview socket write failed", "error", err.Error())
			return
		}
	}
}
