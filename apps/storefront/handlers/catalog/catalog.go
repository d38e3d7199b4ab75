package catalog

import (
	"net/http"

	"capstore/internal/catalog"
	"capstore/internal/responses"
	"capstore/internal/structs"
	"capstore/pkg/reply"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var (
	Module = fx.Provide(New)
)

type (
	Handler interface {
		GetList(c *gin.Context)
	}
	Params struct {
		fx.In
		Catalog catalog.Service
	}

	handler struct {
		catalog catalog.Service
	}
)

func New(p Params) Handler {
	return &handler{catalog: p.Catalog}
}

func (h *handler) GetList(c *gin.Context) {
	var response structs.Response
	defer reply.Json(c.Writer, http.StatusOK, &response)

	response = responses.Success
	response.Payload = h.catalog.List()
}
