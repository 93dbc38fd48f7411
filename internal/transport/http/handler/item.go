package handler

import (
	"github.com/gin-gonic/gin"

	"reviewhub/internal/app"
	"reviewhub/internal/logging"
	"reviewhub/internal/transport/http/response"
)

type ItemHandler struct {
	itemService *app.ItemService
	log         logging.Logger
}

func NewItemHandler(itemService *app.ItemService, log logging.Logger) *ItemHandler {
	return &ItemHandler{itemService: itemService, log: log}
}

func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.itemService.List(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err, "list items failed")
		return
	}
	response.OK(c, items)
}

func (h *ItemHandler) Get(c *gin.Context) {
	item, err := h.itemService.Get(c.Request.Context(), c.Param("itemId"))
	if err != nil {
		writeError(c, h.log, err, "fetch item failed")
		return
	}
	response.OK(c, item)
}
