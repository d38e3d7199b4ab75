package responses

import (
	"net/http"

	"capstore/internal/structs"
)

const (
	SuccessCode     = http.StatusOK
	BadRequestCode  = http.StatusBadRequest
	NotFoundCode    = http.StatusNotFound
	InternalErrCode = http.StatusInternalServerError
)

var (
	Success     = structs.Response{Status: SuccessCode, Message: "success"}
	BadRequest  = structs.Response{Status: BadRequestCode, Message: "bad request"}
	NotFound    = structs.Response{Status: NotFoundCode, Message: "not found"}
	NoSession   = structs.Response{Status: NotFoundCode, Message: "session not found"}
	InternalErr = structs.Response{Status: InternalErrCode, Message: "internal error"}
)
