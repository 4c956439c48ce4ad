package transport

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/muhammadheryan/student-api/constant"
	"github.com/muhammadheryan/student-api/utils/errors"
	"github.com/muhammadheryan/student-api/utils/logger"
	"go.uber.org/zap"
)

// Response is the envelope of every reply.
type Response struct {
	StatusCode int         `json:"statusCode"`
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Errors     []string    `json:"errors,omitempty"`
	Data       interface{} `json:"data"`
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("[writeJSON] err encode", zap.String("error", err.Error()))
	}
}

func writeSuccess(w http.ResponseWriter, status int, message string, data interface{}) {
	writeJSON(w, status, Response{
		StatusCode: status,
		Success:    true,
		Message:    message,
		Data:       data,
	})
}

// writeError renders err as an error envelope. Anything that is not a
// CustomError is reported as a generic internal error.
func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		logger.Error("[writeError] unexpected error", zap.String("error", err.Error()))
		ce = errors.SetCustomError(constant.ErrInternal)
	}

	details := ce.Details()
	if len(details) == 0 {
		details = []string{ce.Error()}
	}

	status := ce.ErrorHTTPCode()
	if status == 0 {
		status = http.StatusInternalServerError
	}

	writeJSON(w, status, Response{
		StatusCode: status,
		Success:    false,
		Message:    ce.Error(),
		Errors:     details,
		Data:       nil,
	})
}
