package api

import "github.com/foundernet/ecosystem-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: "invalid signature",
		1001: "invalid authorization format",
		1002: "difference between the request time and the current time is too large",
		1003: "invalid token",

		1006: "invalid value of client version",
		1007: "API for this client version has been discontinued",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "this account has been registered or has been taken",
		1101: "account not found",
		1104: "unknown account location",

		1200: store.ErrRequestNotExist.Error(),
		1201: store.ErrMultipleRequestMade.Error(),
		1202: store.ErrRequestClosed.Error(),
		1203: store.ErrSelfResponse.Error(),
		1204: store.ErrDuplicateResponse.Error(),
		1205: store.ErrResponseNotExist.Error(),
		1206: store.ErrNotRequestOwner.Error(),

		1300: store.ErrNeedNotExist.Error(),

		1400: store.ErrConnectionExists.Error(),
		1401: store.ErrConnectionNotExist.Error(),
		1402: store.ErrSelfConnection.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidSignature           = errorJSON(1000)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorRequestTimeTooSkewed       = errorJSON(1002)
	errorInvalidToken               = errorJSON(1003)
	errorInvalidClientVersion       = errorJSON(1006)
	errorUnsupportedClientVersion   = errorJSON(1007)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken           = errorJSON(1100)
	errorAccountNotFound        = errorJSON(1101)
	errorUnknownAccountLocation = errorJSON(1104)

	errorRequestNotExist     = errorJSON(1200)
	errorMultipleRequestMade = errorJSON(1201)
	errorRequestClosed       = errorJSON(1202)
	errorSelfResponse        = errorJSON(1203)
	errorDuplicateResponse   = errorJSON(1204)
	errorResponseNotExist    = errorJSON(1205)
	errorNotRequestOwner     = errorJSON(1206)

	errorNeedNotExist = errorJSON(1300)

	errorConnectionExists   = errorJSON(1400)
	errorConnectionNotExist = errorJSON(1401)
	errorSelfConnection     = errorJSON(1402)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
